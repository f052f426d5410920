package form

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingParent is returned when a repeated group is filled in but the
// component owning it does not exist.
var ErrMissingParent = errors.New("owning component is missing")

// EnumResolutionError reports choice text that matches no literal.
type EnumResolutionError struct {
	Text    string
	Allowed []string
}

func (e *EnumResolutionError) Error() string {
	return fmt.Sprintf("%q is not one of %s", e.Text, strings.Join(e.Allowed, ", "))
}

// FieldError locates a failure on the form. Err is a *units.ParseError,
// *units.UnitMismatchError or *EnumResolutionError.
type FieldError struct {
	Group    string
	Title    string
	Instance int
	Attr     string
	Label    string
	Err      error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %d, %s: %v", e.Title, e.Instance+1, e.Label, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// GroupError reports a failure that concerns a whole group.
type GroupError struct {
	Group string
	Title string
	Err   error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Title, e.Err)
}

func (e *GroupError) Unwrap() error { return e.Err }

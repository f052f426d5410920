package form

import "fmt"

// Warning is a cardinality mismatch: a group shows more instances than could
// be committed. It never blocks the collection pass.
type Warning struct {
	Group     string
	Title     string
	Instances int
	Usable    int
}

// Dropped returns how many trailing instances were not committed.
func (w Warning) Dropped() int {
	return w.Instances - w.Usable
}

// DialogTitle returns the title of the dialog that shows the warning.
func (w Warning) DialogTitle() string {
	return w.Title + " Update Warning"
}

// Message returns the user-facing text of the warning.
func (w Warning) Message() string {
	noun := "instances"
	if w.Dropped() == 1 {
		noun = "instance"
	}
	return fmt.Sprintf("%s: %d of %d %s are incomplete and were dropped. Only the first %d were applied.",
		w.Title, w.Dropped(), w.Instances, noun, w.Usable)
}

package project

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/piwi3910/AirframeDesk/internal/model"
)

// SessionVersion is bumped whenever the session layout changes. Sessions of
// another version are ignored on restore.
const SessionVersion = 1

var (
	// ErrSessionVersion is returned when a stored session has another version.
	ErrSessionVersion = errors.New("session version mismatch")
	// ErrEmptySession is returned when a stored session holds no aircraft.
	ErrEmptySession = errors.New("session holds no aircraft")
)

// Session is the committed aircraft of the last run, kept so that the editor
// reopens where it was closed. Uncommitted form content is not part of it.
type Session struct {
	Version  int             `json:"version"`
	SavedAt  time.Time       `json:"saved_at"`
	FilePath string          `json:"file_path,omitempty"`
	Aircraft *model.Aircraft `json:"aircraft"`
}

// DefaultSessionPath returns ~/.airframedesk/session.msgpack.zst.
func DefaultSessionPath() string {
	return ConfigFile("session.msgpack.zst")
}

// NewSession captures a copy of the committed aircraft.
func NewSession(filePath string, ac *model.Aircraft) Session {
	return Session{
		Version:  SessionVersion,
		SavedAt:  time.Now().UTC(),
		FilePath: filePath,
		Aircraft: ac.Clone(),
	}
}

// StoreSession writes s to path as zstd-compressed msgpack.
func StoreSession(path string, s Session) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(file)
	zw, err := zstd.NewWriter(bw)
	if err != nil {
		return err
	}
	enc := msgpack.NewEncoder(zw)
	enc.SetCustomStructTag("json")
	if err = enc.Encode(s); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err = zw.Close(); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// RestoreSession reads a session written by StoreSession.
func RestoreSession(path string) (Session, error) {
	file, err := os.Open(path)
	if err != nil {
		return Session{}, err
	}
	defer file.Close()

	zr, err := zstd.NewReader(bufio.NewReader(file))
	if err != nil {
		return Session{}, err
	}
	defer zr.Close()

	dec := msgpack.NewDecoder(zr)
	dec.SetCustomStructTag("json")
	var s Session
	if err := dec.Decode(&s); err != nil {
		return Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	if s.Version != SessionVersion {
		return Session{}, fmt.Errorf("%w: got %d, want %d", ErrSessionVersion, s.Version, SessionVersion)
	}
	if s.Aircraft == nil {
		return Session{}, ErrEmptySession
	}
	return s, nil
}

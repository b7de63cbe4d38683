package sitepipe

import "fmt"

// MissingOptionError reports a required option that was not supplied.
// Stages check their options before touching the filesystem, so a
// MissingOptionError guarantees no I/O took place.
type MissingOptionError struct {
	Fn     string // stage function, e.g. "BuildStyles"
	Option string // missing field, e.g. "Input"
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("sitepipe: %s: missing required option %q", e.Fn, e.Option)
}

func missing(fn, option string) error {
	return &MissingOptionError{Fn: fn, Option: option}
}

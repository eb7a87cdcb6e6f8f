package corofutures

import (
	"errors"
	"fmt"
)

// SpawnMetaError exposes correlation metadata for a task failure: which
// spawn call site produced the task, and the byte size of the frame the
// task was allocated (DefaultFrameSize for Spawn and SpawnWithStack; the
// nested frame size for a task started by CallableTask.Await or
// AwaitWithFrame). It lets a consumer reading a
// failed Future recover *which* of many in-flight spawns produced it,
// something the original's stdout thread-id printing (out of scope here)
// could not do across executors.
type SpawnMetaError interface {
	error
	Unwrap() error
	Label() (string, bool)
	StackSize() int
}

type spawnTaggedError struct {
	err       error
	label     string
	stackSize int
}

func newSpawnTaggedError(err error, label string, stackSize int) error {
	if err == nil {
		return nil
	}
	return &spawnTaggedError{err: err, label: label, stackSize: stackSize}
}

func (e *spawnTaggedError) Error() string { return e.err.Error() }
func (e *spawnTaggedError) Unwrap() error { return e.err }

func (e *spawnTaggedError) Label() (string, bool) {
	if e.label == "" {
		return "", false
	}
	return e.label, true
}

func (e *spawnTaggedError) StackSize() int { return e.stackSize }

func (e *spawnTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "spawn(label=%q,stackSize=%d): %+v", e.label, e.stackSize, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractSpawnLabel returns the spawn label recorded in err, if any.
func ExtractSpawnLabel(err error) (string, bool) {
	var sme SpawnMetaError
	if errors.As(err, &sme) {
		return sme.Label()
	}
	return "", false
}

// Package prescription implements the Schedule-H gate: a small state
// machine that demands an upload-or-skip decision before a sale containing
// Schedule-H medicines proceeds. It sets a compliance flag only; the
// transaction is recorded whichever branch is taken.
package prescription

import (
	"fmt"

	"medistore/m/domain"
)

type State string

const (
	StateIdle     State = "idle"
	StateAwaiting State = "awaiting_prescription_decision"
	StateUploaded State = "uploaded"
	StateSkipped  State = "skipped"
)

// MaxFileSize is the prescription upload limit (5 MiB).
const MaxFileSize = 5 * 1024 * 1024

// StateError reports a gate transition invoked out of sequence.
type StateError struct {
	State  State
	Action string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while gate is %s", e.Action, e.State)
}

// File describes an uploaded prescription. Only metadata matters to the
// gate; storing the bytes is someone else's concern.
type File struct {
	Name        string
	ContentType string
	Size        int64
}

var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"application/pdf": true,
}

// Gate tracks the prescription decision for one transaction.
type Gate struct {
	state State
}

func NewGate() *Gate {
	return &Gate{state: StateIdle}
}

func (g *Gate) State() State {
	return g.state
}

// Required reports whether a transaction needs a prescription decision: a
// sell with at least one Schedule-H line.
func Required(txType string, schedules []string) bool {
	if txType != domain.TypeSell {
		return false
	}
	for _, s := range schedules {
		if s == domain.ScheduleH {
			return true
		}
	}
	return false
}

// Trigger arms the gate. Triggering an already-armed gate is an error.
func (g *Gate) Trigger() error {
	if g.state != StateIdle {
		return &StateError{State: g.state, Action: "trigger"}
	}
	g.state = StateAwaiting
	return nil
}

// Upload accepts a prescription file and resolves the gate. The file must
// be a JPEG, PNG or PDF of at most MaxFileSize bytes.
func (g *Gate) Upload(f File) error {
	if g.state != StateAwaiting {
		return &StateError{State: g.state, Action: "upload"}
	}
	if !allowedTypes[f.ContentType] {
		return fmt.Errorf("prescription must be a JPG, PNG or PDF file, got %q", f.ContentType)
	}
	if f.Size > MaxFileSize {
		return fmt.Errorf("prescription file size must be at most 5MB")
	}
	g.state = StateUploaded
	return nil
}

// Skip resolves the gate without a prescription. Always allowed while a
// decision is pending.
func (g *Gate) Skip() error {
	if g.state != StateAwaiting {
		return &StateError{State: g.state, Action: "skip"}
	}
	g.state = StateSkipped
	return nil
}

// Skipped reports the resolved decision: true when the prescription was
// skipped, false when it was uploaded.
func (g *Gate) Skipped() (bool, error) {
	switch g.state {
	case StateSkipped:
		return true, nil
	case StateUploaded:
		return false, nil
	default:
		return false, &StateError{State: g.state, Action: "resolve"}
	}
}

// Reset returns a resolved gate to idle so it can guard another
// transaction.
func (g *Gate) Reset() error {
	if g.state == StateAwaiting {
		return &StateError{State: g.state, Action: "reset"}
	}
	g.state = StateIdle
	return nil
}

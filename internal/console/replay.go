package console

import (
	"fmt"

	"github.com/finkrer/calc/internal/calcstate"
	"github.com/finkrer/calc/internal/storage"
)

// ReplayConsole wraps a RawConsole and a shared SessionState so that
// read-line first drains previously-logged answers and write-line first
// skips previously-emitted output lines, durably logging every newly
// observed read or write before returning it to the caller (spec.md 4.3).
//
// ReplayConsole saves the state after every live read and write; the
// interpreter loop writes storage itself only through ClearCommand after
// each command and ClearStorage on exit.
type ReplayConsole struct {
	raw     RawConsole
	state   *calcstate.SessionState
	backend storage.Backend
}

// New builds a ReplayConsole over raw, mediating every interaction through
// state and persisting snapshots to backend.
func New(raw RawConsole, state *calcstate.SessionState, backend storage.Backend) *ReplayConsole {
	return &ReplayConsole{raw: raw, state: state, backend: backend}
}

// ReadLine implements spec.md 4.3's read-line contract: replay first,
// then a live read that is logged and saved before it's returned.
func (w *ReplayConsole) ReadLine() (string, error) {
	if len(w.state.LoadedQueries) > 0 {
		line := w.state.LoadedQueries[0]
		w.state.LoadedQueries = w.state.LoadedQueries[1:]
		return line, nil
	}

	line, err := w.raw.ReadLine()
	if err != nil {
		return "", err
	}

	w.state.QueriesSoFar = append(w.state.QueriesSoFar, line)
	if err := w.state.Save(w.backend); err != nil {
		return "", fmt.Errorf("console: persisting read: %w", err)
	}

	return line, nil
}

// WriteLine implements spec.md 4.3's write-line contract: skip first,
// then a live write that is logged and saved before the caller continues.
func (w *ReplayConsole) WriteLine(s string) error {
	if w.state.LinesToSkip > 0 {
		w.state.LinesToSkip--
		return nil
	}

	if err := w.raw.WriteLine(s); err != nil {
		return err
	}

	w.state.LinesSoFar++
	if err := w.state.Save(w.backend); err != nil {
		return fmt.Errorf("console: persisting write: %w", err)
	}

	return nil
}

// IsInteractive reports whether the wrapped raw console is a live terminal,
// delegating to it if it implements Interactive. Purely cosmetic: it never
// gates replay correctness, only whether help's banner gets an extra blank
// line for on-screen readability (see interp.Loop.help).
func (w *ReplayConsole) IsInteractive() bool {
	if ic, ok := w.raw.(Interactive); ok {
		return ic.IsInteractive()
	}
	return false
}

var _ RawConsole = (*ReplayConsole)(nil)
var _ Interactive = (*ReplayConsole)(nil)

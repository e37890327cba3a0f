// Package interp implements the top-level command dispatcher (spec.md
// 4.4): the interactive add/median/rand/help/exit command set, built on
// top of the durable replay-mediated console.
package interp

import (
	"errors"
	"strings"

	"github.com/finkrer/calc/internal/calcstate"
	"github.com/finkrer/calc/internal/storage"
)

// Console is the capability the interpreter loop reads commands from and
// writes output to. Both *console.ReplayConsole and test doubles satisfy it.
type Console interface {
	ReadLine() (string, error)
	WriteLine(s string) error
}

// unknownCommandMessage is the fixed literal response to any command line
// that doesn't match the dispatch table (spec.md 4.4, scenario F).
const unknownCommandMessage = "Такой команды нет, используйте help для списка команд"

// Loop is the interpreter's top-level dispatcher over the fixed command
// set. It holds the session's state and persists it through backend via
// the wrapped console and via ClearCommand/ClearStorage directly.
type Loop struct {
	console Console
	state   *calcstate.SessionState
	backend storage.Backend
}

// NewLoop constructs a Loop. state is expected to already be the result of
// calcstate.LoadOrDefault against backend, and console expected to be a
// replay-mediated wrapper sharing the same state and backend.
func NewLoop(console Console, state *calcstate.SessionState, backend storage.Backend) *Loop {
	return &Loop{console: console, state: state, backend: backend}
}

// Run executes the bootstrap and main loop (spec.md 4.4) until `exit` is
// dispatched or a fatal error (MalformedNumber, StorageIOError,
// ConsoleIOError) propagates.
func (l *Loop) Run() error {
	l.bootstrap()

	for {
		line, err := l.console.ReadLine()
		if err != nil {
			return err
		}
		cmd := strings.TrimSpace(line)

		switch cmd {
		case "exit":
			return calcstate.ClearStorage(l.backend)
		case "add":
			err = l.add()
		case "median":
			err = l.median()
		case "rand":
			err = l.rand()
		case "help":
			err = l.help()
		default:
			err = l.console.WriteLine(unknownCommandMessage)
		}
		if err != nil {
			return err
		}

		// Establishes invariant I3: the next command starts with an empty
		// replay window.
		if err := l.state.ClearCommand(l.backend); err != nil {
			return err
		}
	}
}

// bootstrap seeds last_random_number on a session that has never run rand.
func (l *Loop) bootstrap() {
	if l.state.LastRandomNumber == nil {
		seed := calcstate.FreshSeed
		l.state.LastRandomNumber = &seed
	}
}

// ErrMalformedNumber is the sentinel spec.md 7 calls MalformedNumber: a
// ReadNumber parse failure is fatal and propagates out of the interpreter,
// leaving whatever partial snapshot was already saved in storage - this is
// the deliberately preserved sharp edge documented in spec.md 9.
var ErrMalformedNumber = errors.New("interp: malformed number")

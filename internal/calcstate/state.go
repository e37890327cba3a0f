package calcstate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finkrer/calc/internal/storage"
)

// FreshSeed is the value last_random_number is initialized to the first
// time a session ever needs it (spec.md 4.4 bootstrap, scenario D).
const FreshSeed int64 = 420

// SessionState is the sole persisted object (spec.md 3): the durable
// snapshot of a single interpreter session's progress.
type SessionState struct {
	// Tag is a diagnostic session identifier, minted once at fresh-session
	// bootstrap. It plays no role in any replay invariant; it exists only
	// so logs and the `calc session` inspection subcommand can name a run.
	Tag string

	// LoadedQueries is the ordered queue of input lines recorded during the
	// in-flight command before the crash; the source of replay answers on
	// restart. Drained from the front by the replay-mediated console.
	LoadedQueries []string

	// QueriesSoFar is the ordered queue of input lines accumulated during
	// the current command in this run. Becomes LoadedQueries on next load.
	QueriesSoFar []string

	// LinesToSkip is the count of output lines the wrapper must silently
	// discard before resuming real output.
	LinesToSkip uint32

	// LinesSoFar is the count of output lines emitted during the current
	// command in this run.
	LinesSoFar uint32

	// LastRandomNumber is the Park-Miller LCG state. nil until first used.
	LastRandomNumber *int64
}

// New returns a fresh SessionState: empty queues, zero counters, absent
// LastRandomNumber, and a freshly minted diagnostic tag.
func New() *SessionState {
	return &SessionState{
		Tag:           uuid.NewString(),
		LoadedQueries: []string{},
		QueriesSoFar:  []string{},
	}
}

// LoadOrDefault reads the blob from backend. An empty or undecodable blob
// yields a fresh session (spec.md 4.2). Otherwise, the decoded state's
// QueriesSoFar becomes the new LoadedQueries, the decoded LinesSoFar becomes
// the new LinesToSkip, and QueriesSoFar/LinesSoFar are reset to mirror them -
// the load transform that makes mid-command resumption transparent.
func LoadOrDefault(backend storage.Backend) (*SessionState, error) {
	blob, err := backend.Read()
	if err != nil {
		return nil, fmt.Errorf("calcstate: reading storage blob: %w", err)
	}

	if len(blob) == 0 {
		return New(), nil
	}

	decoded, err := Decode(blob)
	if err != nil {
		if errors.Is(err, ErrCorruptState) {
			slog.Warn("discarding corrupt storage blob, starting fresh session", "error", err)
			return New(), nil
		}
		return nil, fmt.Errorf("calcstate: decoding storage blob: %w", err)
	}

	loaded := decoded.QueriesSoFar
	if loaded == nil {
		loaded = []string{}
	}
	soFar := append([]string(nil), loaded...)

	return &SessionState{
		Tag:              decoded.Tag,
		LoadedQueries:    loaded,
		QueriesSoFar:     soFar,
		LinesToSkip:      decoded.LinesSoFar,
		LinesSoFar:       decoded.LinesSoFar,
		LastRandomNumber: decoded.LastRandomNumber,
	}, nil
}

// Save encodes s and overwrites the blob.
func (s *SessionState) Save(backend storage.Backend) error {
	if err := backend.Write(Encode(s)); err != nil {
		return fmt.Errorf("calcstate: saving storage blob: %w", err)
	}
	return nil
}

// ClearCommand resets the per-command replay window (LoadedQueries,
// QueriesSoFar, LinesToSkip, LinesSoFar) to empty/zero, preserves
// LastRandomNumber, and saves - establishing invariant I3.
func (s *SessionState) ClearCommand(backend storage.Backend) error {
	s.LoadedQueries = []string{}
	s.QueriesSoFar = []string{}
	s.LinesToSkip = 0
	s.LinesSoFar = 0
	return s.Save(backend)
}

// ClearStorage overwrites the blob with zero bytes (spec.md I4, the clean
// `exit` fresh-session marker). It does not mutate s in memory.
func ClearStorage(backend storage.Backend) error {
	if err := backend.Write(nil); err != nil {
		return fmt.Errorf("calcstate: clearing storage blob: %w", err)
	}
	return nil
}

package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finkrer/calc/internal/calcstate"
	"github.com/finkrer/calc/internal/storage"
)

func TestRunSessionInspect_FreshBlobReportsEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.state")
	storagePathFlag = path
	defer func() { storagePathFlag = "" }()

	var out bytes.Buffer
	sessionCmd.SetOut(&out)
	require.NoError(t, runSessionInspect(sessionCmd, nil))

	require.Contains(t, out.String(), "loaded_queries:     0 pending replay line(s)")
	require.Contains(t, out.String(), "last_random_number: (absent)")
}

func TestRunSessionInspect_ReportsMidCommandSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.state")
	b, err := storage.NewFileBackend(path)
	require.NoError(t, err)
	s := &calcstate.SessionState{Tag: "run-1", QueriesSoFar: []string{"add", "2"}}
	require.NoError(t, s.Save(b))
	require.NoError(t, b.Close())

	storagePathFlag = path
	defer func() { storagePathFlag = "" }()

	var out bytes.Buffer
	sessionCmd.SetOut(&out)
	require.NoError(t, runSessionInspect(sessionCmd, nil))
	require.Contains(t, out.String(), "tag:                run-1")
	require.Contains(t, out.String(), "loaded_queries:     2 pending replay line(s)")
}

func TestRunReset_WithYesFlagClearsBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.state")
	b, err := storage.NewFileBackend(path)
	require.NoError(t, err)
	s := &calcstate.SessionState{QueriesSoFar: []string{"add", "2"}}
	require.NoError(t, s.Save(b))
	require.NoError(t, b.Close())

	storagePathFlag = path
	resetYes = true
	defer func() { storagePathFlag = ""; resetYes = false }()

	var out bytes.Buffer
	resetCmd.SetOut(&out)
	require.NoError(t, runReset(resetCmd, nil))

	b2, err := storage.NewFileBackend(path)
	require.NoError(t, err)
	defer b2.Close()
	blob, err := b2.Read()
	require.NoError(t, err)
	require.Empty(t, blob)
}

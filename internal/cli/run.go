package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finkrer/calc/internal/calcconfig"
	"github.com/finkrer/calc/internal/calcstate"
	"github.com/finkrer/calc/internal/console"
	"github.com/finkrer/calc/internal/interp"
	"github.com/finkrer/calc/internal/storage"
)

// openBackend resolves the storage blob path (flag overrides config
// overrides the default location) and opens a locked FileBackend on it.
func openBackend() (storage.Backend, error) {
	path := storagePathFlag
	if path == "" {
		cfg, err := calcconfig.Load()
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		path, err = cfg.ResolveBlobPath()
		if err != nil {
			return nil, fmt.Errorf("resolving storage path: %w", err)
		}
	}

	backend, err := storage.NewFileBackend(path)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}
	return backend, nil
}

// runSession is the root command's default action: load-or-default the
// session, wrap stdio in the replay-mediated console, and run the
// interpreter loop until exit or a fatal error.
func runSession(cmd *cobra.Command, args []string) error {
	backend, err := openBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	state, err := calcstate.LoadOrDefault(backend)
	if err != nil {
		return err
	}

	raw := console.NewStdConsole(os.Stdin, os.Stdout)
	wrapped := console.New(raw, state, backend)
	loop := interp.NewLoop(wrapped, state, backend)

	return loop.Run()
}

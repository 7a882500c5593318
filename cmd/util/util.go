package util

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/davput/davput/pkg/config"
	"github.com/davput/davput/pkg/dav"
	"github.com/davput/davput/pkg/errors"
)

// HandleFatalError prints the user-facing form of err and exits. Only use
// it for errors that make the whole command pointless; per-item failures
// should print a diagnostic and let the batch continue.
func HandleFatalError(err error) {
	fmt.Fprintln(os.Stderr, errors.GetPrintableMessage(err))
	os.Exit(1)
}

// HandlePanic is deferred in main to keep panics readable.
func HandlePanic() {
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "panic: %v\n\n%s", r, debug.Stack())
		os.Exit(1)
	}
}

// NewClient builds a WebDAV client from the command's --host and --port
// flags, falling back to the user config for whichever is unset.
func NewClient(cmd *cobra.Command) (*dav.Client, error) {
	userConfig, err := config.ParseUser()
	if err != nil {
		return nil, errors.WithContext(err, "parse user config")
	}

	host, err := cmd.Flags().GetString("host")
	if err != nil {
		return nil, errors.WithContext(err, "get host flag")
	}
	if host == "" {
		host = userConfig.Host
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return nil, errors.WithContext(err, "get port flag")
	}
	if port == 0 {
		port = userConfig.Port
	}

	return dav.New(host, port), nil
}

package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	getCmd "github.com/davput/davput/cmd/get"
	lsCmd "github.com/davput/davput/cmd/ls"
	mkdirCmd "github.com/davput/davput/cmd/mkdir"
	putCmd "github.com/davput/davput/cmd/put"
	rmCmd "github.com/davput/davput/cmd/rm"
	"github.com/davput/davput/cmd/util"
)

// verboseLogKey is the environment variable used to enable verbose logging.
// When it's set to `true`, Debug events are logged, rather than just Info
// and above.
const verboseLogKey = "DAVPUT_LOG_VERBOSE"

// Execute runs the main CLI process.
func Execute() {
	if os.Getenv(verboseLogKey) == "true" {
		log.SetLevel(log.DebugLevel)
	}

	rootCmd := &cobra.Command{
		Use:          "davput",
		Short:        "Copy files and directory trees to and from a WebDAV server",
		SilenceUsage: true,

		// The call to rootCmd.Execute prints the error, so we silence errors
		// here to avoid double printing.
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(
		"host", "", "WebDAV server hostname (default from ~/.davput.yaml)")
	rootCmd.PersistentFlags().Int(
		"port", 0, "WebDAV server port (default from ~/.davput.yaml)")

	rootCmd.AddCommand(
		getCmd.New(),
		lsCmd.New(),
		mkdirCmd.New(),
		putCmd.New(),
		rmCmd.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		util.HandleFatalError(err)
	}
}

package rm

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davput/davput/cmd/util"
	"github.com/davput/davput/pkg/dav"
	"github.com/davput/davput/pkg/paths"
)

// New creates a new `rm` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "rm remote_path...",
		Short: "Remove remote files or directories",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, err := util.NewClient(cmd)
			if err != nil {
				util.HandleFatalError(err)
			}

			for _, remotePath := range args {
				if removeOne(client, remotePath) {
					fmt.Printf("removed %s\n", remotePath)
				} else {
					fmt.Fprintf(os.Stderr, "cannot remove %s\n", remotePath)
				}
			}
		},
	}
}

func removeOne(client *dav.Client, remotePath string) bool {
	components, err := paths.ParseRemote(remotePath)
	if err != nil {
		return false
	}
	return client.Delete(components)
}

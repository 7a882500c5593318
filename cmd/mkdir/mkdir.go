package mkdir

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davput/davput/cmd/util"
	"github.com/davput/davput/pkg/dav"
	"github.com/davput/davput/pkg/paths"
)

// New creates a new `mkdir` command.
func New() *cobra.Command {
	var parents bool
	cmd := &cobra.Command{
		Use:   "mkdir path...",
		Short: "Create remote directories",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, err := util.NewClient(cmd)
			if err != nil {
				util.HandleFatalError(err)
			}

			for _, remotePath := range args {
				if !createOne(client, remotePath, parents) {
					fmt.Fprintf(os.Stderr,
						"cannot create remote directory %s\n", remotePath)
				}
			}
		},
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false,
		"make parent directories as needed")
	return cmd
}

func createOne(client *dav.Client, remotePath string, parents bool) bool {
	components, err := paths.ParseRemote(remotePath)
	if err != nil {
		return false
	}

	if parents {
		return client.EnsureDirectories(components)
	}
	return client.CreateDirectory(components)
}

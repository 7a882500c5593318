package put

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/davput/davput/cmd/util"
	"github.com/davput/davput/pkg/dav"
	"github.com/davput/davput/pkg/errors"
	"github.com/davput/davput/pkg/paths"
	"github.com/davput/davput/pkg/sync"
)

// Mocked out for unit testing.
var fs = afero.NewOsFs()

// New creates a new `put` command.
func New() *cobra.Command {
	var remoteDir string
	cmd := &cobra.Command{
		Use:   "put [-O remote_dir] local_path...",
		Short: "Upload local files or directories to a remote directory",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, err := util.NewClient(cmd)
			if err != nil {
				util.HandleFatalError(err)
			}

			prefix, err := paths.ParseRemote(remoteDir)
			if err != nil {
				util.HandleFatalError(
					errors.WithContext(err, "parse remote directory"))
			}

			for _, localPath := range args {
				if err := putOne(client, prefix, localPath); err != nil {
					fmt.Fprintf(os.Stderr, "cannot put %s: %s\n",
						localPath, errors.GetPrintableMessage(err))
				}
			}
		},
	}
	cmd.Flags().StringVarP(&remoteDir, "remote-directory-path", "O", "/",
		"remote directory to upload into")
	return cmd
}

// putOne executes the upload plan for one local target. Failed uploads
// print a diagnostic and the rest of the plan continues, so one bad file
// doesn't abandon a whole tree.
func putOne(client *dav.Client, prefix paths.Components, localPath string) error {
	plan := sync.PlanPut(localPath, paths.Root)
	for plan.Next() {
		switch action := plan.Action().(type) {
		case sync.CreateRemoteDirectory:
			remotePath := prefix.Extend(action.RemotePath)
			if !client.CreateDirectory(remotePath) {
				fmt.Fprintf(os.Stderr,
					"cannot create remote directory %s\n", remotePath)
			}

		case sync.UploadLocalFile:
			remotePath := prefix.Extend(action.RemotePath)
			if err := uploadFile(client, action.LocalPath, remotePath); err != nil {
				fmt.Fprintf(os.Stderr, "cannot upload %s: %s\n",
					action.LocalPath, errors.GetPrintableMessage(err))
			}
		}
	}
	return plan.Err()
}

func uploadFile(client *dav.Client, localPath string,
	remotePath paths.Components) error {

	contents, err := fs.Open(localPath)
	if err != nil {
		return errors.WithContext(err, "open local file")
	}
	defer contents.Close()

	if !client.Upload(remotePath, contents) {
		return errors.New("transfer failed")
	}

	fmt.Printf("%s -> %s\n", localPath, remotePath)
	return nil
}

package get

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

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

// New creates a new `get` command.
func New() *cobra.Command {
	var localDir string
	cmd := &cobra.Command{
		Use:   "get [-O local_dir] remote_path...",
		Short: "Download remote files or directories to a local directory",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, err := util.NewClient(cmd)
			if err != nil {
				util.HandleFatalError(err)
			}

			for _, remotePath := range args {
				if err := getOne(client, localDir, remotePath); err != nil {
					fmt.Fprintf(os.Stderr, "cannot get %s: %s\n",
						remotePath, errors.GetPrintableMessage(err))
				}
			}
		},
	}
	cmd.Flags().StringVarP(&localDir, "local-directory-path", "O", ".",
		"local directory to download into")
	return cmd
}

// getOne executes the download plan for one remote target. Failed
// downloads print a diagnostic and the rest of the plan continues.
func getOne(client *dav.Client, localDir, remotePath string) error {
	components, err := paths.ParseRemote(remotePath)
	if err != nil {
		return err
	}

	plan := sync.PlanGet(client, components, paths.Root)
	for plan.Next() {
		switch action := plan.Action().(type) {
		case sync.CreateLocalDirectory:
			path := localJoin(localDir, action.LocalPath)
			if err := createLocalDirectory(path); err != nil {
				fmt.Fprintf(os.Stderr, "cannot create directory %s: %s\n",
					path, errors.GetPrintableMessage(err))
			}

		case sync.DownloadRemoteFile:
			path := localJoin(localDir, action.LocalPath)
			if err := downloadFile(client, action.RemotePath, path); err != nil {
				fmt.Fprintf(os.Stderr, "cannot download %s: %s\n",
					action.RemotePath, errors.GetPrintableMessage(err))
			}
		}
	}
	return plan.Err()
}

func localJoin(localDir string, components paths.Components) string {
	return filepath.Join(localDir, filepath.Join(components.Segments()...))
}

func createLocalDirectory(path string) error {
	isDir, err := afero.IsDir(fs, path)
	if err == nil && isDir {
		return nil
	}
	return fs.Mkdir(path, 0755)
}

// downloadFile writes the remote file's contents to path. The local file is
// only created once the download has actually started, so a failed download
// never leaves an empty file behind.
func downloadFile(client *dav.Client, remotePath paths.Components,
	path string) error {

	contents, err := client.Download(remotePath)
	if err != nil {
		return errors.WithContext(err, "download")
	}
	defer contents.Close()

	local, err := fs.Create(path)
	if err != nil {
		return errors.WithContext(err, "create local file")
	}
	defer local.Close()

	if _, err := io.Copy(local, contents); err != nil {
		return errors.WithContext(err, "write local file")
	}

	fmt.Printf("%s -> %s\n", remotePath, path)
	return nil
}

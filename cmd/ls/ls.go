package ls

import (
	"fmt"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/davput/davput/cmd/util"
	"github.com/davput/davput/pkg/dav"
	"github.com/davput/davput/pkg/paths"
)

// New creates a new `ls` command.
func New() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a remote file or directory",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client, err := util.NewClient(cmd)
			if err != nil {
				util.HandleFatalError(err)
			}

			remotePath := "/"
			if len(args) == 1 {
				remotePath = args[0]
			}

			if !run(client, remotePath, long) {
				fmt.Fprintf(os.Stderr, "cannot list %s\n", remotePath)
			}
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false,
		"show sizes and modification times")
	return cmd
}

func run(client *dav.Client, remotePath string, long bool) bool {
	components, err := paths.ParseRemote(remotePath)
	if err != nil {
		return false
	}

	if long {
		return runLong(client, components)
	}

	result, err := client.Classify(components)
	if err != nil {
		return false
	}

	switch result := result.(type) {
	case dav.NotFound:
		return false
	case dav.IsFile:
		fmt.Println(result.Path.Base())
	case dav.IsDirectory:
		for _, file := range result.ChildFiles {
			fmt.Println(file.Base())
		}
		for _, directory := range result.ChildDirectories {
			fmt.Println(directory.Base() + "/")
		}
	}
	return true
}

// runLong renders one row per entry with whatever size and modification
// time the server reported.
func runLong(client *dav.Client, components paths.Components) bool {
	entries, err := client.List(components)
	if err != nil || len(entries) == 0 {
		return false
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	target := components.Key()
	rows := 0
	for _, entry := range entries {
		// A directory listing includes the target's own entry; skip it
		// unless the target is itself a file.
		if entry.Path.Key() == target && entry.IsDirectory {
			continue
		}

		name := entry.Path.Base()
		if entry.IsDirectory {
			name += "/"
		}

		size := "-"
		if entry.HasSize {
			size = humanize.Bytes(uint64(entry.Size))
		}

		modified := "-"
		if entry.HasModTime {
			modified = entry.ModTime.Local().Format(time.Stamp)
		}

		table.Append([]string{size, modified, name})
		rows++
	}

	if rows > 0 {
		table.Render()
	}
	return true
}

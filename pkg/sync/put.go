package sync

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/davput/davput/pkg/errors"
	"github.com/davput/davput/pkg/paths"
)

// Mocked out for unit testing.
var fs = afero.NewOsFs()

// PutPlan is a lazy stream of the actions needed to recreate a local file
// or directory tree on the remote. Consume it like a bufio.Scanner:
//
//	for plan.Next() {
//		execute(plan.Action())
//	}
//	return plan.Err()
type PutPlan struct {
	queue   []PutAction
	pending []localDir
	action  PutAction
	err     error
	done    bool
}

// localDir is a directory whose contents haven't been expanded yet.
type localDir struct {
	localPath  string
	remotePath paths.Components
}

// PlanPut plans the upload of the file or directory at localPath. Emitted
// remote paths are remotePrefix plus the entry's path under the target's
// basename.
//
// A target that is neither a regular file nor a directory fails with
// UnsupportedPathError.
func PlanPut(localPath string, remotePrefix paths.Components) *PutPlan {
	plan := &PutPlan{}

	absolute, err := filepath.Abs(localPath)
	if err != nil {
		plan.err = errors.WithContext(err, "resolve local path")
		return plan
	}

	basename := filepath.Base(absolute)
	if basename == "/" {
		plan.err = errors.UnsupportedPathError{Path: localPath}
		return plan
	}

	info, err := fs.Stat(absolute)
	switch {
	case err != nil:
		plan.err = errors.WithContext(err, "stat local path")
	case info.Mode().IsRegular():
		plan.queue = append(plan.queue, UploadLocalFile{
			LocalPath:  absolute,
			RemotePath: remotePrefix.Append(basename),
		})
	case info.IsDir():
		remotePath := remotePrefix.Append(basename)
		plan.queue = append(plan.queue, CreateRemoteDirectory{
			RemotePath: remotePath,
		})
		plan.pending = append(plan.pending, localDir{
			localPath:  absolute,
			remotePath: remotePath,
		})
	default:
		plan.err = errors.UnsupportedPathError{Path: localPath}
	}
	return plan
}

// Next advances the plan to the next action. It returns false when the
// stream is exhausted or an error occurred; Err distinguishes the two.
func (plan *PutPlan) Next() bool {
	if plan.err != nil || plan.done {
		return false
	}

	for len(plan.queue) == 0 {
		if len(plan.pending) == 0 {
			plan.done = true
			return false
		}
		if err := plan.expand(); err != nil {
			plan.err = err
			return false
		}
	}

	plan.action = plan.queue[0]
	plan.queue = plan.queue[1:]
	return true
}

// Action returns the action produced by the last successful call to Next.
func (plan *PutPlan) Action() PutAction {
	return plan.action
}

// Err returns the error that terminated the stream, if any.
func (plan *PutPlan) Err() error {
	return plan.err
}

// expand pops the next pending directory and queues the actions for its
// immediate contents. Subdirectories are pushed for later expansion so the
// first directory queued at this level is also the first one descended
// into.
func (plan *PutPlan) expand() error {
	dir := plan.pending[len(plan.pending)-1]
	plan.pending = plan.pending[:len(plan.pending)-1]

	infos, err := afero.ReadDir(fs, dir.localPath)
	if err != nil {
		return errors.WithContext(err, "read directory")
	}

	var subdirs []localDir
	for _, info := range infos {
		childLocal := filepath.Join(dir.localPath, info.Name())
		childRemote := dir.remotePath.Append(info.Name())
		if info.IsDir() {
			plan.queue = append(plan.queue, CreateRemoteDirectory{
				RemotePath: childRemote,
			})
			subdirs = append(subdirs, localDir{
				localPath:  childLocal,
				remotePath: childRemote,
			})
		} else {
			plan.queue = append(plan.queue, UploadLocalFile{
				LocalPath:  childLocal,
				RemotePath: childRemote,
			})
		}
	}

	for i := len(subdirs) - 1; i >= 0; i-- {
		plan.pending = append(plan.pending, subdirs[i])
	}
	return nil
}

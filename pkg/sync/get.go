package sync

import (
	"github.com/davput/davput/pkg/dav"
	"github.com/davput/davput/pkg/paths"
)

// Lister classifies remote paths. *dav.Client implements it.
type Lister interface {
	Classify(paths.Components) (dav.ListResult, error)
}

// GetPlan is a lazy stream of the actions needed to recreate a remote file
// or directory tree locally. It costs one classification request per
// directory visited, issued as the consumer reaches that directory.
type GetPlan struct {
	lister  Lister
	queue   []GetAction
	pending []remoteDir
	action  GetAction
	err     error
	done    bool
}

// remoteDir is a remote path that hasn't been classified yet.
type remoteDir struct {
	remotePath  paths.Components
	localPrefix paths.Components
}

// PlanGet plans the download of the remote file or directory at remotePath.
// Emitted local paths are localPrefix plus the entry's path under the
// target's basename. Downloading the remote root maps its contents directly
// under localPrefix, with no create action for the root itself.
//
// A remotePath that classifies as NotFound produces an empty stream, not an
// error.
func PlanGet(lister Lister, remotePath, localPrefix paths.Components) *GetPlan {
	return &GetPlan{
		lister: lister,
		pending: []remoteDir{{
			remotePath:  remotePath,
			localPrefix: localPrefix,
		}},
	}
}

// Next advances the plan to the next action. It returns false when the
// stream is exhausted or an error occurred; Err distinguishes the two.
func (plan *GetPlan) Next() bool {
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
func (plan *GetPlan) Action() GetAction {
	return plan.action
}

// Err returns the error that terminated the stream, if any.
func (plan *GetPlan) Err() error {
	return plan.err
}

// expand classifies the next pending remote path and queues the actions for
// it. Child directories are pushed for later expansion so the subtree of
// the first child is fully planned before the second child is touched.
func (plan *GetPlan) expand() error {
	target := plan.pending[len(plan.pending)-1]
	plan.pending = plan.pending[:len(plan.pending)-1]

	result, err := plan.lister.Classify(target.remotePath)
	if err != nil {
		return err
	}

	switch result := result.(type) {
	case dav.NotFound:
		// Nothing to plan.

	case dav.IsFile:
		plan.queue = append(plan.queue, DownloadRemoteFile{
			RemotePath: result.Path,
			LocalPath:  target.localPrefix.Append(result.Path.Base()),
		})

	case dav.IsDirectory:
		prefix := target.localPrefix
		if !target.remotePath.IsRoot() {
			prefix = prefix.Append(target.remotePath.Base())
			plan.queue = append(plan.queue, CreateLocalDirectory{
				LocalPath: prefix,
			})
		}

		for _, file := range result.ChildFiles {
			plan.queue = append(plan.queue, DownloadRemoteFile{
				RemotePath: file,
				LocalPath:  prefix.Append(file.Base()),
			})
		}

		for i := len(result.ChildDirectories) - 1; i >= 0; i-- {
			plan.pending = append(plan.pending, remoteDir{
				remotePath:  result.ChildDirectories[i],
				localPrefix: prefix,
			})
		}
	}
	return nil
}

package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davput/davput/pkg/dav"
	"github.com/davput/davput/pkg/errors"
	"github.com/davput/davput/pkg/paths"
)

// fakeLister serves canned classifications and records the order they were
// requested in.
type fakeLister struct {
	results map[string]dav.ListResult
	queries []string
}

func (lister *fakeLister) Classify(components paths.Components) (
	dav.ListResult, error) {

	lister.queries = append(lister.queries, "/"+components.String())
	result, ok := lister.results[components.Key()]
	if !ok {
		return nil, errors.Errorf("unexpected classify of %q", components)
	}
	return result, nil
}

func collectGetActions(t *testing.T, plan *GetPlan) []GetAction {
	var actions []GetAction
	for plan.Next() {
		actions = append(actions, plan.Action())
	}
	assert.NoError(t, plan.Err())
	return actions
}

func TestPlanGetFile(t *testing.T) {
	lister := &fakeLister{results: map[string]dav.ListResult{
		paths.New("dir", "f.txt").Key(): dav.IsFile{
			Path: paths.New("dir", "f.txt"),
		},
	}}

	plan := PlanGet(lister, paths.New("dir", "f.txt"), paths.Root)
	assert.Equal(t, []GetAction{
		DownloadRemoteFile{
			RemotePath: paths.New("dir", "f.txt"),
			LocalPath:  paths.New("f.txt"),
		},
	}, collectGetActions(t, plan))
}

func TestPlanGetNotFound(t *testing.T) {
	lister := &fakeLister{results: map[string]dav.ListResult{
		paths.New("missing").Key(): dav.NotFound{},
	}}

	plan := PlanGet(lister, paths.New("missing"), paths.Root)
	assert.Empty(t, collectGetActions(t, plan))
}

func TestPlanGetRootDirectory(t *testing.T) {
	lister := &fakeLister{results: map[string]dav.ListResult{
		paths.Root.Key(): dav.IsDirectory{
			ChildFiles:       []paths.Components{paths.New("a.txt")},
			ChildDirectories: []paths.Components{paths.New("b")},
		},
		paths.New("b").Key(): dav.IsDirectory{
			ChildFiles: []paths.Components{paths.New("b", "c.txt")},
		},
	}}

	plan := PlanGet(lister, paths.Root, paths.Root)
	actions := collectGetActions(t, plan)

	// No create action for the root itself: the destination directory is
	// assumed to exist.
	assert.Equal(t, []GetAction{
		DownloadRemoteFile{
			RemotePath: paths.New("a.txt"),
			LocalPath:  paths.New("a.txt"),
		},
		CreateLocalDirectory{LocalPath: paths.New("b")},
		DownloadRemoteFile{
			RemotePath: paths.New("b", "c.txt"),
			LocalPath:  paths.New("b", "c.txt"),
		},
	}, actions)

	// One classification per directory visited.
	assert.Equal(t, []string{"/", "/b"}, lister.queries)
}

func TestPlanGetNestedDirectories(t *testing.T) {
	lister := &fakeLister{results: map[string]dav.ListResult{
		paths.New("top").Key(): dav.IsDirectory{
			ChildDirectories: []paths.Components{
				paths.New("top", "one"),
				paths.New("top", "two"),
			},
		},
		paths.New("top", "one").Key(): dav.IsDirectory{
			ChildFiles: []paths.Components{paths.New("top", "one", "f.txt")},
		},
		paths.New("top", "two").Key(): dav.IsDirectory{},
	}}

	plan := PlanGet(lister, paths.New("top"), paths.New("dest"))
	actions := collectGetActions(t, plan)

	// Depth-first: the whole subtree of `one` is planned before `two`.
	assert.Equal(t, []GetAction{
		CreateLocalDirectory{LocalPath: paths.New("dest", "top")},
		CreateLocalDirectory{LocalPath: paths.New("dest", "top", "one")},
		DownloadRemoteFile{
			RemotePath: paths.New("top", "one", "f.txt"),
			LocalPath:  paths.New("dest", "top", "one", "f.txt"),
		},
		CreateLocalDirectory{LocalPath: paths.New("dest", "top", "two")},
	}, actions)
	assert.Equal(t, []string{"/top", "/top/one", "/top/two"}, lister.queries)
}

func TestPlanGetPropagatesClassifyErrors(t *testing.T) {
	lister := &fakeLister{results: map[string]dav.ListResult{}}

	plan := PlanGet(lister, paths.New("dir"), paths.Root)
	assert.False(t, plan.Next())
	assert.Error(t, plan.Err())
}

package sync

import (
	"github.com/davput/davput/pkg/paths"
)

// PutAction is one step of an upload plan. It is a closed set:
// UploadLocalFile or CreateRemoteDirectory.
type PutAction interface {
	putAction()
}

// UploadLocalFile uploads the local file at LocalPath to the remote.
// RemotePath is relative to the destination prefix the executor uploads
// under.
type UploadLocalFile struct {
	LocalPath  string
	RemotePath paths.Components
}

// CreateRemoteDirectory creates one remote directory level, relative to the
// destination prefix.
type CreateRemoteDirectory struct {
	RemotePath paths.Components
}

func (UploadLocalFile) putAction()       {}
func (CreateRemoteDirectory) putAction() {}

// GetAction is one step of a download plan. It is a closed set:
// DownloadRemoteFile or CreateLocalDirectory.
type GetAction interface {
	getAction()
}

// DownloadRemoteFile downloads the remote file at RemotePath to LocalPath,
// relative to the local directory the executor downloads into.
type DownloadRemoteFile struct {
	RemotePath paths.Components
	LocalPath  paths.Components
}

// CreateLocalDirectory creates one local directory level, relative to the
// local destination directory.
type CreateLocalDirectory struct {
	LocalPath paths.Components
}

func (DownloadRemoteFile) getAction()   {}
func (CreateLocalDirectory) getAction() {}

package dav

import (
	"github.com/davput/davput/pkg/paths"
)

// EnsureDirectories creates the directory at the given path, creating any
// missing ancestors first. The root always exists. It returns whether the
// full path exists afterwards.
//
// Creation is optimistic: the full path is attempted first, so when the
// parent already exists this costs one request. When it doesn't, the
// ancestor chain is ensured recursively and the full path is retried once.
func (c *Client) EnsureDirectories(components paths.Components) bool {
	if components.IsRoot() {
		return true
	}
	if c.CreateDirectory(components) {
		return true
	}
	if c.EnsureDirectories(components.Parent()) {
		return c.CreateDirectory(components)
	}
	return false
}

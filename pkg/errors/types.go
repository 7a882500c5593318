package errors

import (
	"fmt"
)

// PathSyntaxError represents a path string whose parent references pop past
// the beginning of the path.
type PathSyntaxError struct {
	Path string
}

func (err PathSyntaxError) Error() string {
	return fmt.Sprintf("invalid path %q", err.Path)
}

// InvalidHrefError represents a resource href that doesn't belong to the
// expected server, or that couldn't be decoded.
type InvalidHrefError struct {
	Href string
}

func (err InvalidHrefError) Error() string {
	return fmt.Sprintf("invalid href %q", err.Href)
}

// UnsupportedPathError represents a local path that is neither a regular
// file nor a directory, such as a device node.
type UnsupportedPathError struct {
	Path string
}

func (err UnsupportedPathError) Error() string {
	return fmt.Sprintf("%q is not a regular file or directory", err.Path)
}

// FileNotFound represents when we were unable to access a file
// because the path didn't exist.
type FileNotFound struct {
	Path string
}

func (err FileNotFound) Error() string {
	return fmt.Sprintf("%q does not exist", err.Path)
}

package paths

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/davput/davput/pkg/errors"
)

// Components is a normalized sequence of path segments. Segments are never
// empty, and never "." or "..": parsing resolves those before a Components
// is ever built.
//
// A Components value is immutable. Append and Extend copy the backing slice,
// so many branches of a traversal can extend a shared prefix without
// affecting each other.
type Components struct {
	segments []string
}

// Root is the empty sequence, representing the top of the remote tree (or an
// empty relative prefix on the local side).
var Root = Components{}

// New builds a Components directly from segments. The segments are assumed
// to already be normalized.
func New(segments ...string) Components {
	copied := make([]string, len(segments))
	copy(copied, segments)
	return Components{segments: copied}
}

// Len returns the number of segments.
func (c Components) Len() int {
	return len(c.segments)
}

// IsRoot returns whether the sequence is empty.
func (c Components) IsRoot() bool {
	return len(c.segments) == 0
}

// Base returns the last segment, or "" for the root.
func (c Components) Base() string {
	if len(c.segments) == 0 {
		return ""
	}
	return c.segments[len(c.segments)-1]
}

// Parent returns the sequence with the last segment removed. The parent of
// the root is the root.
func (c Components) Parent() Components {
	if len(c.segments) == 0 {
		return c
	}
	// Reslicing is safe because Append and Extend never write into a shared
	// backing array.
	return Components{segments: c.segments[:len(c.segments)-1]}
}

// Append returns a new sequence with segment added at the end.
func (c Components) Append(segment string) Components {
	extended := make([]string, len(c.segments)+1)
	copy(extended, c.segments)
	extended[len(c.segments)] = segment
	return Components{segments: extended}
}

// Extend returns a new sequence with all of other's segments added at the
// end.
func (c Components) Extend(other Components) Components {
	extended := make([]string, len(c.segments)+len(other.segments))
	copy(extended, c.segments)
	copy(extended[len(c.segments):], other.segments)
	return Components{segments: extended}
}

// Segments returns a copy of the underlying segments.
func (c Components) Segments() []string {
	copied := make([]string, len(c.segments))
	copy(copied, c.segments)
	return copied
}

// Equal returns whether two sequences contain the same segments.
func (c Components) Equal(other Components) bool {
	if len(c.segments) != len(other.segments) {
		return false
	}
	for i, segment := range c.segments {
		if other.segments[i] != segment {
			return false
		}
	}
	return true
}

// Key returns a string that uniquely identifies the sequence, for use as a
// map key. Unlike String, it stays injective even if a decoded segment
// contains a slash.
func (c Components) Key() string {
	return strings.Join(c.segments, "\x00")
}

// String renders the segments joined by slashes, without a leading slash.
// The root renders as the empty string.
func (c Components) String() string {
	return strings.Join(c.segments, "/")
}

// ParseLocal normalizes a relative local path into components. "." segments
// are dropped and ".." segments remove the previous segment. It returns a
// PathSyntaxError if the path is rooted, or if a ".." pops past the start.
func ParseLocal(text string) (Components, error) {
	normalized := filepath.ToSlash(text)
	if strings.HasPrefix(normalized, "/") {
		return Components{}, errors.PathSyntaxError{Path: text}
	}
	return parseRelative(normalized, text)
}

// ParseRemote normalizes a remote path into root-anchored components. A
// leading slash anchors the path at the root; the remaining segments follow
// the same rules as ParseLocal.
func ParseRemote(text string) (Components, error) {
	return parseRelative(strings.TrimLeft(text, "/"), text)
}

func parseRelative(text, original string) (Components, error) {
	components := Components{}
	for _, segment := range strings.Split(text, "/") {
		switch segment {
		case "", ".":
		case "..":
			if components.IsRoot() {
				return Components{}, errors.PathSyntaxError{Path: original}
			}
			components = components.Parent()
		default:
			components = components.Append(segment)
		}
	}
	return components, nil
}

// ToHref renders components as an absolute http URL on the given server,
// percent-encoding each segment.
func ToHref(host string, port int, components Components) string {
	segments := components.segments
	encoded := make([]string, len(segments))
	for i, segment := range segments {
		encoded[i] = url.PathEscape(segment)
	}
	return fmt.Sprintf("http://%s:%d/%s", host, port, strings.Join(encoded, "/"))
}

// FromHref parses a resource href back into components. The href must either
// be an absolute URL on the given server, or be server-relative (start with
// a slash). Each segment is percent-decoded.
//
// FromHref is the inverse of ToHref: for any href this client itself
// renders, ToHref(FromHref(href)) == href.
func FromHref(host string, port int, href string) (Components, error) {
	base := fmt.Sprintf("http://%s:%d", host, port)

	var relative string
	switch {
	case href == base:
		relative = ""
	case strings.HasPrefix(href, base+"/"):
		relative = href[len(base)+1:]
	case strings.HasPrefix(href, "/"):
		relative = href[1:]
	default:
		return Components{}, errors.InvalidHrefError{Href: href}
	}

	// A slash immediately after the prefix strip means the href carried a
	// second root marker (e.g. "//x"), which no well-formed server emits.
	if strings.HasPrefix(relative, "/") {
		return Components{}, errors.InvalidHrefError{Href: href}
	}

	components := Components{}
	for _, segment := range strings.Split(relative, "/") {
		switch segment {
		case "", ".":
		case "..":
			if components.IsRoot() {
				return Components{}, errors.PathSyntaxError{Path: href}
			}
			components = components.Parent()
		default:
			decoded, err := url.PathUnescape(segment)
			if err != nil {
				return Components{}, errors.InvalidHrefError{Href: href}
			}
			components = components.Append(decoded)
		}
	}
	return components, nil
}

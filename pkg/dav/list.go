package dav

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"time"

	"github.com/davput/davput/pkg/errors"
	"github.com/davput/davput/pkg/paths"
)

// Entry is one resource returned by a depth-1 listing.
type Entry struct {
	Path        paths.Components
	IsDirectory bool

	// Size and ModTime are only meaningful when the matching Has flag is
	// set: servers aren't required to report either property.
	Size       int64
	HasSize    bool
	ModTime    time.Time
	HasModTime bool
}

// ListResult is the classification of one remote path. It is a closed set:
// NotFound, IsFile, or IsDirectory.
type ListResult interface {
	listResult()
}

// NotFound means the listing response contained no entry for the path.
//
// A response with zero entries is indistinguishable from a missing path, so
// an existing empty directory whose self entry the server omits also
// classifies as NotFound.
type NotFound struct{}

// IsFile means the path names a regular remote file.
type IsFile struct {
	Path paths.Components
}

// IsDirectory means the path names a directory. The child slices hold its
// immediate children only, in listing order, excluding the directory's own
// entry.
type IsDirectory struct {
	ChildFiles       []paths.Components
	ChildDirectories []paths.Components
}

func (NotFound) listResult()    {}
func (IsFile) listResult()      {}
func (IsDirectory) listResult() {}

// multistatus models the subset of the PROPFIND response document the
// client reads.
type multistatus struct {
	XMLName   xml.Name      `xml:"DAV: multistatus"`
	Responses []davResponse `xml:"response"`
}

type davResponse struct {
	Href      string        `xml:"href"`
	Propstats []davPropstat `xml:"propstat"`
}

type davPropstat struct {
	Prop davProp `xml:"prop"`
}

type davProp struct {
	ResourceType  davResourceType `xml:"resourcetype"`
	ContentLength string          `xml:"getcontentlength"`
	LastModified  string          `xml:"getlastmodified"`
}

type davResourceType struct {
	Collection *struct{} `xml:"collection"`
}

func (r davResponse) isCollection() bool {
	for _, propstat := range r.Propstats {
		if propstat.Prop.ResourceType.Collection != nil {
			return true
		}
	}
	return false
}

// List issues one depth-1 listing request for the given path and returns
// the entries the server reported, in response order. A directory listing
// usually includes the target's own entry. Any status other than 207
// returns zero entries.
func (c *Client) List(components paths.Components) ([]Entry, error) {
	resp, err := c.do("PROPFIND", components,
		map[string]string{"Depth": "1"}, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMultiStatus {
		return nil, nil
	}

	var doc multistatus
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.WithContext(err, "parse listing response")
	}

	var entries []Entry
	for _, response := range doc.Responses {
		if response.Href == "" {
			continue
		}

		path, err := paths.FromHref(c.host, c.port, response.Href)
		if err != nil {
			return nil, errors.WithContext(err, "resolve listing href")
		}

		entry := Entry{Path: path, IsDirectory: response.isCollection()}
		for _, propstat := range response.Propstats {
			if size, err := strconv.ParseInt(
				propstat.Prop.ContentLength, 10, 64); err == nil {
				entry.Size = size
				entry.HasSize = true
			}
			if modTime, err := http.ParseTime(
				propstat.Prop.LastModified); err == nil {
				entry.ModTime = modTime
				entry.HasModTime = true
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Classify determines whether the given path is a file, a directory, or
// absent, from a single listing request. For directories, the other entries
// in the response are partitioned into child files and child directories.
func (c *Client) Classify(components paths.Components) (ListResult, error) {
	entries, err := c.List(components)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		byKey[entry.Path.Key()] = entry
	}

	target := components.Key()
	self, ok := byKey[target]
	if !ok {
		return NotFound{}, nil
	}
	if !self.IsDirectory {
		return IsFile{Path: self.Path}, nil
	}

	result := IsDirectory{}
	seen := map[string]bool{target: true}
	for _, entry := range entries {
		if seen[entry.Path.Key()] {
			continue
		}
		seen[entry.Path.Key()] = true

		if entry.IsDirectory {
			result.ChildDirectories = append(result.ChildDirectories, entry.Path)
		} else {
			result.ChildFiles = append(result.ChildFiles, entry.Path)
		}
	}
	return result, nil
}

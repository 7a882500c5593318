package dav

import (
	"io"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/davput/davput/pkg/errors"
	"github.com/davput/davput/pkg/paths"
)

// Client speaks WebDAV to a single server. One HTTP session is shared by all
// requests; callers issue them sequentially, so no locking is needed.
type Client struct {
	host    string
	port    int
	session *http.Client
}

// New returns a client for the server at host:port.
func New(host string, port int) *Client {
	return &Client{
		host:    host,
		port:    port,
		session: &http.Client{},
	}
}

func (c *Client) href(components paths.Components) string {
	return paths.ToHref(c.host, c.port, components)
}

// do sends one request and logs the outcome. The caller owns the response
// body.
func (c *Client) do(method string, components paths.Components,
	headers map[string]string, body io.Reader) (*http.Response, error) {

	href := c.href(components)
	req, err := http.NewRequest(method, href, body)
	if err != nil {
		return nil, errors.WithContext(err, "build request")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"method": method,
			"url":    href,
		}).Debug("Request failed")
		return nil, errors.WithContext(err, "send request")
	}

	log.WithFields(log.Fields{
		"method": method,
		"url":    href,
		"status": resp.StatusCode,
	}).Debug("Request complete")
	return resp, nil
}

// discard drains and closes a response body we don't care about, so the
// session's connection can be reused.
func discard(resp *http.Response) {
	io.Copy(ioutil.Discard, resp.Body)
	resp.Body.Close()
}

// CreateDirectory creates a single directory level at the given path. It
// returns whether the server reported the directory as created. The parent
// must already exist; use EnsureDirectories to create whole chains.
func (c *Client) CreateDirectory(components paths.Components) bool {
	resp, err := c.do("MKCOL", components, nil, nil)
	if err != nil {
		return false
	}
	defer discard(resp)
	return resp.StatusCode == http.StatusCreated
}

// Upload streams contents to the remote file at the given path, replacing
// it if it exists. It returns whether the server accepted the write.
func (c *Client) Upload(components paths.Components, contents io.Reader) bool {
	resp, err := c.do(http.MethodPut, components, nil, contents)
	if err != nil {
		return false
	}
	defer discard(resp)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return true
	}
	return false
}

// Download opens the contents of the remote file at the given path. The
// caller must close the returned stream. Any status other than 200 is an
// error: a failed download never yields a partial or empty stream.
func (c *Client) Download(components paths.Components) (io.ReadCloser, error) {
	resp, err := c.do(http.MethodGet, components, nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		discard(resp)
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// Delete removes the remote file or directory at the given path.
// Directories are deleted recursively by the server. It returns whether the
// deletion succeeded.
func (c *Client) Delete(components paths.Components) bool {
	resp, err := c.do(http.MethodDelete, components, nil, nil)
	if err != nil {
		return false
	}
	defer discard(resp)
	return resp.StatusCode == http.StatusNoContent
}

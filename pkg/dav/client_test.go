package dav

import (
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davput/davput/pkg/paths"
)

// newTestClient points a Client at an httptest server.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	parsed, err := url.Parse(server.URL)
	assert.NoError(t, err)

	host, portStr, err := net.SplitHostPort(parsed.Host)
	assert.NoError(t, err)

	port, err := strconv.Atoi(portStr)
	assert.NoError(t, err)

	return New(host, port)
}

func TestCreateDirectory(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusCreated)
		}))
	defer server.Close()

	client := newTestClient(t, server)
	assert.True(t, client.CreateDirectory(paths.New("a", "b")))
	assert.Equal(t, "MKCOL", gotMethod)
	assert.Equal(t, "/a/b", gotPath)
}

func TestCreateDirectoryFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
	defer server.Close()

	client := newTestClient(t, server)
	assert.False(t, client.CreateDirectory(paths.New("a", "b")))
}

func TestUpload(t *testing.T) {
	var gotBody []byte
	statuses := []int{
		http.StatusOK, http.StatusCreated, http.StatusNoContent,
	}
	var status int
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			gotBody, _ = ioutil.ReadAll(r.Body)
			w.WriteHeader(status)
		}))
	defer server.Close()

	client := newTestClient(t, server)
	for _, status = range statuses {
		ok := client.Upload(paths.New("f.txt"), strings.NewReader("contents"))
		assert.True(t, ok, "status %d", status)
		assert.Equal(t, []byte("contents"), gotBody)
	}

	status = http.StatusForbidden
	assert.False(t, client.Upload(paths.New("f.txt"), strings.NewReader("contents")))
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/f.txt" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte("file contents"))
		}))
	defer server.Close()

	client := newTestClient(t, server)

	stream, err := client.Download(paths.New("f.txt"))
	assert.NoError(t, err)
	contents, err := ioutil.ReadAll(stream)
	assert.NoError(t, err)
	assert.NoError(t, stream.Close())
	assert.Equal(t, "file contents", string(contents))

	// A missing file is an error, not an empty stream.
	_, err = client.Download(paths.New("missing.txt"))
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	var gotMethod string
	var status int
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			w.WriteHeader(status)
		}))
	defer server.Close()

	client := newTestClient(t, server)

	status = http.StatusNoContent
	assert.True(t, client.Delete(paths.New("victim")))
	assert.Equal(t, http.MethodDelete, gotMethod)

	status = http.StatusNotFound
	assert.False(t, client.Delete(paths.New("victim")))
}

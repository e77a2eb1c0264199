package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[HitObjects]\r\n64,192,0,1,0\r\n"))
	}))
	defer ts.Close()

	content, err := Download(ts.URL + "/test.osu")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("[HitObjects]\r\n64,192,0,1,0\r\n", content)
}

func TestDownloadHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	_, err := Download(ts.URL + "/missing.osu")

	assert := assert.New(t)
	assert.Error(err)
	assert.Contains(err.Error(), "404")
}

func TestDownloadUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	_, err := Download(ts.URL)
	assert.Error(t, err)
}

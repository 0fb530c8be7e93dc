package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<nav>Navigation</nav>
			<div class="job-description">
				<h1>Data Engineer</h1>
				<p>Python   and    SQL required</p>
			</div>
		</body></html>`))
	}))
	defer server.Close()

	text, meta, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)

	assert.Contains(t, text, "Data Engineer")
	assert.Contains(t, text, "Python and SQL required")
	assert.NotContains(t, text, "Navigation")

	require.NotNil(t, meta)
	assert.Equal(t, server.URL, meta.URL)
	assert.Equal(t, "unknown", meta.Platform)
	assert.NotEmpty(t, meta.Hash)
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHTTPRequestFailed))
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	_, _, err := IngestFromURL(context.Background(), "not a url", false, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHTTPRequestFailed))
}

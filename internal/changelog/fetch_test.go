package changelog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleChangelog))
	}))
	defer server.Close()

	doc, err := Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, sampleChangelog, doc)
}

func TestFetchNonOKStatus(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"not found":    http.StatusNotFound,
		"server error": http.StatusInternalServerError,
		"forbidden":    http.StatusForbidden,
	}

	for name, status := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			_, err := Fetch(context.Background(), server.URL)
			assert.ErrorContains(t, err, "unexpected status code")
		})
	}
}

func TestFetchCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := Fetch(ctx, server.URL)
	assert.Error(t, err)
}

func TestFetchEmptyDocument(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	doc, err := Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Empty(t, doc)

	// An empty document simply has no matching section downstream.
	_, err = ExtractSection(doc, "1.2312.5", false)
	var notFound *VersionNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

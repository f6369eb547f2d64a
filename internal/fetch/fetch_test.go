package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>Hello</title></head><body>hi</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "<title>Hello</title>")
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "no scheme", url: "example.com/page"},
		{name: "non-http scheme", url: "ftp://example.com/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := URL(context.Background(), tt.url, nil)

			var fetchErr *Error
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.url, fetchErr.URL)
		})
	}
}

func TestURL_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL+"/missing", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	// result still carries the status for callers that want it
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "og:title preferred",
			html: `<html><head><meta property="og:title" content="OG Title"><title>Doc Title</title></head></html>`,
			want: "OG Title",
		},
		{
			name: "title element",
			html: `<html><head><title>  Doc   Title </title></head></html>`,
			want: "Doc Title",
		},
		{
			name: "h1 fallback",
			html: `<html><body><h1>Heading</h1><h1>Second</h1></body></html>`,
			want: "Heading",
		},
		{
			name: "nothing usable",
			html: `<html><body><p>text</p></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := ExtractTitle(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, title)
		})
	}
}

package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))

		q := r.URL.Query()
		assert.Equal(t, "luxury wood furniture manufacturer in Italy", q.Get("q"))
		assert.Equal(t, "en", q.Get("hl"))
		assert.Equal(t, "0", q.Get("start"))
		assert.Equal(t, "10", q.Get("num"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SearchResponse{
			Organic: []OrganicResult{
				{Title: "Acme Woodworks", Link: "https://acmewoodworks.it", Snippet: "Fine furniture", Position: 1},
			},
			KnowledgeGraph: &KnowledgeGraph{Title: "Acme Woodworks", Description: "Furniture maker"},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Search(context.Background(), "luxury wood furniture manufacturer in Italy")

	require.NoError(t, err)
	require.Len(t, resp.Organic, 1)
	assert.Equal(t, "Acme Woodworks", resp.Organic[0].Title)
	assert.Equal(t, "https://acmewoodworks.it", resp.Organic[0].Link)
	require.NotNil(t, resp.KnowledgeGraph)
	assert.Equal(t, "Furniture maker", resp.KnowledgeGraph.Description)
}

func TestSearch_OffsetAndPageSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("start"))
		assert.Equal(t, "25", q.Get("num"))
		assert.Equal(t, "it", q.Get("hl"))

		_ = json.NewEncoder(w).Encode(SearchResponse{})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL), WithPageSize(25), WithLocale("it"))
	_, err := client.Search(context.Background(), "query", WithOffset(20))

	require.NoError(t, err)
}

func TestSearch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "Unauthorized"}`))
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))
	resp, err := client.Search(context.Background(), "query")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "403")
}

func TestSearch_EmptyOrganic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Search(context.Background(), "query")

	require.NoError(t, err)
	assert.Empty(t, resp.Organic)
	assert.Nil(t, resp.KnowledgeGraph)
}

func TestSearch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Search(ctx, "query")

	assert.Error(t, err)
	assert.Nil(t, resp)
}

package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerperClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "secret-key", r.Header.Get("X-API-KEY"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Acme Corp recent news", req["q"])

		resp := map[string]any{
			"organic": []map[string]string{
				{"title": "Acme raises", "snippet": "Acme Corp raised a round", "link": "https://example.com/a"},
				{"title": "Acme ships", "snippet": "New product launch", "link": "https://example.com/b"},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewSerperClient("secret-key", WithEndpoint(srv.URL))
	got, err := c.Search(context.Background(), "Acme Corp recent news")
	require.NoError(t, err)
	require.Contains(t, got, "Acme raises")
	require.Contains(t, got, "https://example.com/b")
}

func TestSerperClient_LimitsSnippets(t *testing.T) {
	hits := make([]map[string]string, 10)
	for i := range hits {
		hits[i] = map[string]string{"title": "t", "snippet": "s", "link": "l"}
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"organic": hits}))
	}))
	defer srv.Close()

	c := NewSerperClient("k", WithEndpoint(srv.URL))
	got, err := c.Search(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, strings.Split(got, "\n"), maxSnippets)
}

func TestSerperClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewSerperClient("bad", WithEndpoint(srv.URL))
	_, err := c.Search(context.Background(), "q")
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}

func TestSerperClient_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{}))
	}))
	defer srv.Close()

	c := NewSerperClient("k", WithEndpoint(srv.URL))
	got, err := c.Search(context.Background(), "q")
	require.NoError(t, err)
	require.Empty(t, got)
}

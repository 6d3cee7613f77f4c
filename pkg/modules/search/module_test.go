package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openfmp/fmp-mcp-server/pkg/fmp"
	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

func newTestModule(t *testing.T, handler http.HandlerFunc) *Module {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := fmp.NewClient(&fmp.Config{APIKey: "test-key", BaseURL: srv.URL}, zap.NewNop())
	require.NoError(t, err)

	m, err := New(&Config{}, client, zap.NewNop())
	require.NoError(t, err)
	return m
}

func newRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func TestNew(t *testing.T) {
	client, err := fmp.NewClient(&fmp.Config{APIKey: "test-key"}, zap.NewNop())
	require.NoError(t, err)

	t.Run("nil config", func(t *testing.T) {
		_, err := New(nil, client, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("nil client", func(t *testing.T) {
		_, err := New(&Config{}, nil, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestGetTools(t *testing.T) {
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {})

	tools := m.GetTools()
	require.Len(t, tools, 4)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"search-symbols",
		"search-companies",
		"screen-stocks",
		"search-exchange-variants",
	}, names)
}

func TestBuildToolName(t *testing.T) {
	client, err := fmp.NewClient(&fmp.Config{APIKey: "test-key"}, zap.NewNop())
	require.NoError(t, err)

	m, err := New(&Config{Tools: ToolsConfig{Prefix: "fmp_", Suffix: "_v1"}}, client, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "fmp_search-symbols_v1", m.BuildToolName("search-symbols"))
}

func TestHandleSymbols(t *testing.T) {
	var gotQuery url.Values
	var gotPath string
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"symbol":"AAPL","name":"Apple Inc."}]`))
	})

	t.Run("forwards arguments", func(t *testing.T) {
		data, err := m.handleSymbols(context.Background(), newRequest(map[string]any{
			"query": "apple",
			"limit": float64(5),
		}))
		require.NoError(t, err)

		assert.Equal(t, "/search-symbol", gotPath)
		assert.Equal(t, "apple", gotQuery.Get("query"))
		assert.Equal(t, "5", gotQuery.Get("limit"))
		assert.False(t, gotQuery.Has("exchange"))

		items, ok := data.([]any)
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("missing query", func(t *testing.T) {
		_, err := m.handleSymbols(context.Background(), newRequest(map[string]any{}))
		require.Error(t, err)

		var validationErr *toolkit.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("bad limit", func(t *testing.T) {
		_, err := m.handleSymbols(context.Background(), newRequest(map[string]any{
			"query": "apple",
			"limit": "10",
		}))
		assert.Error(t, err)
	})
}

func TestHandleScreener(t *testing.T) {
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	t.Run("criteria map to external names", func(t *testing.T) {
		_, err := m.handleScreener(context.Background(), newRequest(map[string]any{
			"market_cap_more_than": float64(1000000000),
			"sector":               "Technology",
			"is_etf":               false,
			"volume_more_than":     float64(250000),
			"limit":                float64(50),
		}))
		require.NoError(t, err)

		assert.Equal(t, "1000000000", gotQuery.Get("marketCapMoreThan"))
		assert.Equal(t, "Technology", gotQuery.Get("sector"))
		assert.Equal(t, "false", gotQuery.Get("isEtf"))
		assert.Equal(t, "250000", gotQuery.Get("volumeMoreThan"))
		assert.Equal(t, "50", gotQuery.Get("limit"))
		assert.False(t, gotQuery.Has("industry"))
		assert.False(t, gotQuery.Has("isFund"))
	})

	t.Run("no criteria is valid", func(t *testing.T) {
		_, err := m.handleScreener(context.Background(), newRequest(map[string]any{}))
		require.NoError(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := m.handleScreener(context.Background(), newRequest(map[string]any{
			"sector": float64(7),
		}))
		assert.Error(t, err)
	})
}

func TestHandleExchangeVariants(t *testing.T) {
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	t.Run("normalizes symbol", func(t *testing.T) {
		_, err := m.handleExchangeVariants(context.Background(), newRequest(map[string]any{
			"symbol": " aapl ",
		}))
		require.NoError(t, err)
		assert.Equal(t, "AAPL", gotQuery.Get("symbol"))
	})

	t.Run("missing symbol", func(t *testing.T) {
		_, err := m.handleExchangeVariants(context.Background(), newRequest(map[string]any{}))
		assert.Error(t, err)
	})
}

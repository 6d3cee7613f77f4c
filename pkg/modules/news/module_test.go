package news

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

func TestGetTools(t *testing.T) {
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {})

	tools := m.GetTools()
	require.Len(t, tools, 6)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"get-fmp-articles",
		"get-general-news",
		"get-stock-news",
		"get-crypto-news",
		"get-forex-news",
		"search-stock-news",
	}, names)
}

func TestHandleFMPArticles(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	t.Run("page zero is valid", func(t *testing.T) {
		_, err := m.handleFMPArticles(context.Background(), newRequest(map[string]any{
			"page":  float64(0),
			"limit": float64(20),
		}))
		require.NoError(t, err)

		assert.Equal(t, "/fmp-articles", gotPath)
		assert.Equal(t, "0", gotQuery.Get("page"))
		assert.Equal(t, "20", gotQuery.Get("limit"))
	})

	t.Run("negative page", func(t *testing.T) {
		_, err := m.handleFMPArticles(context.Background(), newRequest(map[string]any{
			"page": float64(-1),
		}))
		assert.Error(t, err)
	})
}

func TestNewsHandler(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	handler := m.newsHandler(m.client.News.StockNews)

	t.Run("forwards window and paging", func(t *testing.T) {
		_, err := handler(context.Background(), newRequest(map[string]any{
			"from":  "2025-06-01",
			"to":    "2025-06-30",
			"page":  float64(1),
			"limit": float64(50),
		}))
		require.NoError(t, err)

		assert.Equal(t, "/news/stock-latest", gotPath)
		assert.Equal(t, "2025-06-01", gotQuery.Get("from"))
		assert.Equal(t, "2025-06-30", gotQuery.Get("to"))
		assert.Equal(t, "1", gotQuery.Get("page"))
		assert.Equal(t, "50", gotQuery.Get("limit"))
	})

	t.Run("everything optional", func(t *testing.T) {
		_, err := handler(context.Background(), newRequest(map[string]any{}))
		require.NoError(t, err)

		for _, key := range []string{"from", "to", "page", "limit"} {
			assert.False(t, gotQuery.Has(key), key)
		}
	})
}

func TestHandleSearchStockNews(t *testing.T) {
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	t.Run("joins symbols", func(t *testing.T) {
		_, err := m.handleSearchStockNews(context.Background(), newRequest(map[string]any{
			"symbols": "aapl,msft",
			"from":    "2025-06-01",
		}))
		require.NoError(t, err)

		assert.Equal(t, "AAPL,MSFT", gotQuery.Get("symbols"))
		assert.Equal(t, "2025-06-01", gotQuery.Get("from"))
	})

	t.Run("symbols required", func(t *testing.T) {
		_, err := m.handleSearchStockNews(context.Background(), newRequest(map[string]any{}))
		assert.Error(t, err)
	})
}

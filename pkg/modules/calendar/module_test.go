package calendar

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
		"get-dividends",
		"get-dividends-calendar",
		"get-earnings-report",
		"get-earnings-calendar",
		"get-ipos-calendar",
		"get-splits-calendar",
	}, names)
}

func TestHandleDividends(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := m.handleDividends(context.Background(), newRequest(map[string]any{
		"symbol": "aapl",
		"limit":  float64(10),
	}))
	require.NoError(t, err)

	assert.Equal(t, "/dividends", gotPath)
	assert.Equal(t, "AAPL", gotQuery.Get("symbol"))
	assert.Equal(t, "10", gotQuery.Get("limit"))
}

func TestWindowHandler(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	handler := m.windowHandler(m.client.Calendar.EarningsCalendar)

	t.Run("forwards the window", func(t *testing.T) {
		_, err := handler(context.Background(), newRequest(map[string]any{
			"from": "2025-01-01",
			"to":   "2025-03-31",
		}))
		require.NoError(t, err)

		assert.Equal(t, "/earnings-calendar", gotPath)
		assert.Equal(t, "2025-01-01", gotQuery.Get("from"))
		assert.Equal(t, "2025-03-31", gotQuery.Get("to"))
	})

	t.Run("window is optional", func(t *testing.T) {
		_, err := handler(context.Background(), newRequest(map[string]any{}))
		require.NoError(t, err)

		assert.False(t, gotQuery.Has("from"))
		assert.False(t, gotQuery.Has("to"))
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := handler(context.Background(), newRequest(map[string]any{
			"from": "01/01/2025",
		}))
		assert.Error(t, err)
	})
}

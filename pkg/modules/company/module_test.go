package company

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
	require.Len(t, tools, 7)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"get-company-profile",
		"get-company-notes",
		"get-peer-list",
		"get-market-cap",
		"get-shares-float",
		"get-executives",
		"get-employee-count",
	}, names)
}

func TestHandleProfile(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"symbol":"AAPL","companyName":"Apple Inc."}]`))
	})

	_, err := m.handleProfile(context.Background(), newRequest(map[string]any{
		"symbol": "aapl",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/profile", gotPath)
	assert.Equal(t, "AAPL", gotQuery.Get("symbol"))
}

func TestHandleExecutives(t *testing.T) {
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	t.Run("active filter", func(t *testing.T) {
		_, err := m.handleExecutives(context.Background(), newRequest(map[string]any{
			"symbol": "AAPL",
			"active": true,
		}))
		require.NoError(t, err)
		assert.Equal(t, "true", gotQuery.Get("active"))
	})

	t.Run("filter omitted when unset", func(t *testing.T) {
		_, err := m.handleExecutives(context.Background(), newRequest(map[string]any{
			"symbol": "AAPL",
		}))
		require.NoError(t, err)
		assert.False(t, gotQuery.Has("active"))
	})
}

func TestHandleEmployeeCount(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	m := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := m.handleEmployeeCount(context.Background(), newRequest(map[string]any{
		"symbol": "AAPL",
		"limit":  float64(8),
	}))
	require.NoError(t, err)

	assert.Equal(t, "/employee-count", gotPath)
	assert.Equal(t, "8", gotQuery.Get("limit"))

	_, err = m.handleEmployeeCount(context.Background(), newRequest(map[string]any{
		"symbol": "AAPL",
		"limit":  float64(10001),
	}))
	assert.Error(t, err)
}

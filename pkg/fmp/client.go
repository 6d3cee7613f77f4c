package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/openfmp/fmp-mcp-server/pkg/metrics"
)

// DefaultBaseURL is the stable FMP API root.
const DefaultBaseURL = "https://financialmodelingprep.com/stable"

const defaultTimeout = 30 * time.Second

// Config contains base client configuration.
type Config struct {
	APIKey  string `mapstructure:"apikey" json:"apikey" yaml:"apikey"`
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"`
	Timeout int    `mapstructure:"timeout" json:"timeout" yaml:"timeout"`
}

// Client is the shared FMP HTTP client. It owns the base URL and API key
// injection and classifies upstream failures. One instance is constructed
// at startup and passed into every module; it is read-only after
// construction.
type Client struct {
	http   *resty.Client
	apiKey string
	logger *zap.Logger

	Search     *SearchCategory
	Quote      *QuoteCategory
	Company    *CompanyCategory
	Statements *StatementsCategory
	Calendar   *CalendarCategory
	News       *NewsCategory
}

// NewClient creates an FMP client. The API key is required; base URL and
// timeout fall back to defaults.
func NewClient(config *Config, logger *zap.Logger) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("fmp config is required")
	}
	if config.APIKey == "" {
		return nil, &AuthenticationError{APIError{Message: "FMP API key is required"}}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := defaultTimeout
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	c := &Client{
		http:   httpClient,
		apiKey: config.APIKey,
		logger: logger.Named("fmp"),
	}
	c.Search = &SearchCategory{client: c}
	c.Quote = &QuoteCategory{client: c}
	c.Company = &CompanyCategory{client: c}
	c.Statements = &StatementsCategory{client: c}
	c.Calendar = &CalendarCategory{client: c}
	c.News = &NewsCategory{client: c}

	c.logger.Info("FMP client created",
		zap.String("base_url", baseURL),
		zap.Duration("timeout", timeout))

	return c, nil
}

// MakeRequest issues a GET to the given endpoint with the API key appended
// and decodes the JSON body. Non-2xx statuses map to the error taxonomy:
// 401/403 authentication, 429 rate limit, anything else a response error.
// Malformed JSON on a success status is also a response error.
func (c *Client) MakeRequest(ctx context.Context, endpoint string, params Params) (any, error) {
	start := time.Now()

	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParams(params)
	}
	req.SetQueryParam("apikey", c.apiKey)

	resp, err := req.Get("/" + endpoint)
	if err != nil {
		metrics.RecordUpstreamRequest(endpoint, 0, time.Since(start))
		c.logger.Error("FMP request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("failed to execute request to %s: %w", endpoint, err)
	}

	metrics.RecordUpstreamRequest(endpoint, resp.StatusCode(), time.Since(start))

	if resp.IsError() {
		c.logger.Error("FMP API returned error status",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode()))
		return nil, classifyStatus(resp.StatusCode(), resp.String())
	}

	var decoded any
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		c.logger.Error("Failed to decode FMP response",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, &ResponseError{APIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("invalid JSON body: %v", err),
		}}
	}

	c.logger.Debug("FMP response received",
		zap.String("endpoint", endpoint),
		zap.Int("status_code", resp.StatusCode()))

	return decoded, nil
}

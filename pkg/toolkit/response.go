package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/openfmp/fmp-mcp-server/pkg/fmp"
	"github.com/openfmp/fmp-mcp-server/pkg/metrics"
)

// Response is the standardized envelope returned by every tool. A failed
// call carries no data and a non-empty message.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// Result creates a success envelope around data.
func Result(data any) Response {
	return Response{Success: true, Data: data}
}

// Failure creates a failure envelope with the given message.
func Failure(message string) Response {
	return Response{Success: false, Message: message}
}

// ToCallToolResult marshals the envelope into an MCP text content result.
func (r Response) ToCallToolResult() (*mcp.CallToolResult, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool response: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(data),
			},
		},
	}, nil
}

// Operation is a single tool invocation body. It returns the decoded
// payload or an error; envelope conversion is the wrapper's job.
type Operation func(ctx context.Context, request mcp.CallToolRequest) (any, error)

// WrapHandler turns an Operation into an MCP tool handler. It records
// metrics and a span for the call, logs the outcome, and converts any error
// into a failure envelope instead of propagating it to the transport.
func WrapHandler(logger *zap.Logger, module, tool string, op Operation) server.ToolHandlerFunc {
	tracer := otel.Tracer("fmp-mcp-server")

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		ctx, span := tracer.Start(ctx, tool)
		span.SetAttributes(
			attribute.String("mcp.tool", tool),
			attribute.String("mcp.module", module),
		)
		defer span.End()

		metrics.RecordModuleRequest(module)
		logger.Debug("Tool call started", zap.String("tool", tool))

		data, err := op(ctx, request)

		duration := time.Since(start)
		metrics.RecordMCPToolCall(tool, module, duration, err == nil)

		if err != nil {
			span.RecordError(err)
			metrics.RecordMCPToolError(tool, module, errorType(err))
			logger.Warn("Tool call failed",
				zap.String("tool", tool),
				zap.Duration("duration", duration),
				zap.Error(err))
			return Failure(fmt.Sprintf("Error in %s: %v", tool, err)).ToCallToolResult()
		}

		logger.Debug("Tool call completed",
			zap.String("tool", tool),
			zap.Duration("duration", duration))
		return Result(data).ToCallToolResult()
	}
}

// errorType names the failure category for the metrics label.
func errorType(err error) string {
	var validationErr *ValidationError
	var authErr *fmp.AuthenticationError
	var rateErr *fmp.RateLimitError
	var respErr *fmp.ResponseError
	var apiErr *fmp.APIError

	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &authErr):
		return "authentication"
	case errors.As(err, &rateErr):
		return "rate_limit"
	case errors.As(err, &respErr):
		return "api_response"
	case errors.As(err, &apiErr):
		return "api"
	default:
		return "internal"
	}
}

package llm

import (
	"context"
	"time"

	"github.com/Latesh-31/Adaptlearn/internal/logger"
)

// loggingProvider records every oracle call: model, latency, token usage,
// outcome. Prompt and raw output stay out of the logs above debug level.
type loggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging wraps a Provider with call logging.
func WithLogging(p Provider, log *logger.Logger) Provider {
	return &loggingProvider{inner: p, log: log.With("component", "oracle")}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := []interface{}{
		"model", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
		"json_output", req.JSONOutput,
	}
	if resp != nil {
		fields = append(fields,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
	}

	if err != nil {
		l.log.Warn("oracle call failed", append(fields, "error", err)...)
	} else {
		l.log.Info("oracle call completed", fields...)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends only on these contracts; concrete adapters
// (HTTP transport, YAML config, logrus sink) live in the infrastructure
// layer and are wired together in internal/app.
package ports

import (
	"context"

	"github.com/stackwatch/checkstack/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.checkstack/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Fetcher performs one authenticated GET against a service endpoint and
// returns the validated JSON body. All failures are *domain.Failure values
// so the dispatcher can translate them into UNKNOWN results.
type Fetcher interface {
	Fetch(ctx context.Context, cfg domain.EndpointConfig, path string) ([]byte, error)
}

// Evaluator translates one service's raw health payload into a standardized
// check result. Evaluate never fails: anything it cannot interpret resolves
// to an UNKNOWN result.
type Evaluator interface {
	Kind() domain.ServiceKind
	Path() string
	Evaluate(body []byte) domain.CheckResult
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

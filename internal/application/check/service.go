// Package check implements the dispatcher that drives one health-check
// invocation: select the evaluator, fetch the endpoint, evaluate the
// response and hand back exactly one result.
package check

import (
	"context"

	"github.com/pkg/errors"

	"github.com/stackwatch/checkstack/internal/domain"
	"github.com/stackwatch/checkstack/internal/ports"
)

// UnsupportedServiceMessage is reported when the requested service name is
// not in the dispatch table. No network call is attempted in that case.
const UnsupportedServiceMessage = "unsupported service"

// Service orchestrates select, fetch, evaluate and report for one check.
type Service struct {
	Fetcher    ports.Fetcher
	Evaluators map[domain.ServiceKind]ports.Evaluator
	Logger     ports.Logger
}

// Run performs one check invocation. It never returns an error: every
// failure mode resolves to an UNKNOWN result so the caller always has a
// structured status to report.
func (s *Service) Run(ctx context.Context, req domain.CheckRequest) domain.CheckResult {
	kind, ok := domain.ParseServiceKind(req.Service)
	if !ok {
		s.Logger.Warn("unsupported service requested", map[string]interface{}{"service": req.Service})
		return domain.Unknown(UnsupportedServiceMessage)
	}

	eval, ok := s.Evaluators[kind]
	if !ok {
		return domain.Unknown(UnsupportedServiceMessage)
	}

	body, err := s.Fetcher.Fetch(ctx, req.Endpoint, eval.Path())
	if err != nil {
		return s.resultForFetchError(kind, err)
	}

	result := eval.Evaluate(body)
	s.Logger.Info("check completed", map[string]interface{}{
		"service": string(kind),
		"level":   result.Level.String(),
	})
	return result
}

func (s *Service) resultForFetchError(kind domain.ServiceKind, err error) domain.CheckResult {
	s.Logger.Error("fetch failed", err, map[string]interface{}{"service": string(kind)})

	var failure *domain.Failure
	if errors.As(err, &failure) {
		return domain.Unknown(failure.Describe())
	}
	return domain.Unknown("an unexpected error occurred")
}

// Package verification wraps the pure idnum parser in a service: registry
// resolution, metrics, tracing, and an audit trail. The parser itself stays
// free of all of that.
package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"idcheck/internal/audit"
	"idcheck/internal/division"
	"idcheck/internal/idnum"
	"idcheck/internal/verification/metrics"
)

// DefaultBatchLimit caps VerifyBatch request size unless config overrides it.
const DefaultBatchLimit = 100

// ErrBatchTooLarge is returned by VerifyBatch when the request exceeds the
// configured limit. Callers translate it to a client error, not an outage.
var ErrBatchTooLarge = errors.New("batch too large")

// batchParallelism bounds concurrent verifications within one batch. Registry
// lookups may hit Postgres, so a batch must not open one connection per ID.
const batchParallelism = 8

// Service verifies identity numbers against a division registry.
type Service struct {
	registry   division.Registry
	audit      *audit.Publisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
	now        func() time.Time
	batchLimit int
}

// New constructs a verification service. The audit publisher and metrics may
// be nil, which disables them (used by tests exercising only parse wiring).
func New(registry division.Registry, auditPub *audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		registry:   registry,
		audit:      auditPub,
		metrics:    m,
		logger:     logger,
		tracer:     otel.Tracer("idcheck/verification"),
		now:        time.Now,
		batchLimit: DefaultBatchLimit,
	}
}

// SetBatchLimit overrides the maximum batch size.
func (s *Service) SetBatchLimit(n int) {
	if n > 0 {
		s.batchLimit = n
	}
}

// Verify validates one identity-number string. The returned error is non-nil
// only for infrastructure failures (registry unreachable); every semantic
// verdict, valid or not, arrives as a Result.
func (s *Service) Verify(ctx context.Context, raw string) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "verification.Verify")
	defer span.End()
	start := time.Now()

	var lookupErr error
	parser := &idnum.Parser{
		Registry: idnum.LookupFunc(func(code string) (division.Division, bool) {
			d, ok, err := s.registry.Lookup(ctx, code)
			if err != nil {
				lookupErr = err
				return division.Division{}, false
			}
			return d, ok
		}),
		Now: s.now,
	}

	id, parseErr := parser.Parse(raw)
	if lookupErr != nil {
		span.SetAttributes(attribute.String("verification.outcome", "registry_error"))
		return Result{}, fmt.Errorf("resolve division: %w", lookupErr)
	}

	var result Result
	if parseErr != nil {
		var perr idnum.ParseError
		if !errors.As(parseErr, &perr) {
			return Result{}, fmt.Errorf("parse identity number: %w", parseErr)
		}
		result = Result{Valid: false, Reason: perr.Reason()}
	} else {
		result = Result{Valid: true, Record: newRecord(id, id.Birth().Age(s.now()))}
	}

	outcome := outcomeOf(result)
	span.SetAttributes(attribute.String("verification.outcome", outcome))
	s.metrics.IncrementOutcome(outcome)
	s.metrics.ObserveVerifyLatency(time.Since(start))
	s.emitAudit(ctx, raw, result)

	return result, nil
}

// VerifyBatch validates up to the configured cap of IDs concurrently,
// returning results in input order. One infrastructure failure fails the
// whole batch; semantic invalidity never does.
func (s *Service) VerifyBatch(ctx context.Context, raws []string) ([]Result, error) {
	if len(raws) == 0 {
		return []Result{}, nil
	}
	if len(raws) > s.batchLimit {
		return nil, fmt.Errorf("%w: %d exceeds limit %d", ErrBatchTooLarge, len(raws), s.batchLimit)
	}
	s.metrics.ObserveBatchSize(len(raws))

	ctx, span := s.tracer.Start(ctx, "verification.VerifyBatch",
		trace.WithAttributes(attribute.Int("verification.batch_size", len(raws))))
	defer span.End()

	results := make([]Result, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchParallelism)
	for i, raw := range raws {
		g.Go(func() error {
			r, err := s.Verify(gctx, raw)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// emitAudit records the attempt. Audit failure is logged, not surfaced: the
// verdict already computed is correct and the caller should get it.
func (s *Service) emitAudit(ctx context.Context, raw string, result Result) {
	if s.audit == nil {
		return
	}
	event := audit.Event{
		RequestID:   middleware.GetReqID(ctx),
		InputDigest: audit.DigestInput(raw),
		Outcome:     outcomeOf(result),
	}
	if result.Record != nil {
		event.DivisionCode = result.Record.Division.Code
	}
	if err := s.audit.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "audit emit failed",
			"request_id", event.RequestID,
			"outcome", event.Outcome,
			"error", err,
		)
	}
}

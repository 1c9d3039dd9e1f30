// Package pipeline runs one asynchronous store operation through its three
// phases and keeps the matching OperationStatus in step with it.
package pipeline

import (
	"context"
	"time"

	"dispatch-store/internal/core/logger"
	"dispatch-store/internal/core/metrics"
	"dispatch-store/internal/features/resource/domain"

	"go.uber.org/zap"
)

// Phase is one step of an operation's life.
type Phase int

const (
	// PhaseRequested marks the call in flight before the gateway runs.
	PhaseRequested Phase = iota + 1
	// PhaseFulfilled applies the result to the caches.
	PhaseFulfilled
	// PhaseRejected records the failure and leaves the caches alone.
	PhaseRejected
)

func (p Phase) String() string {
	switch p {
	case PhaseRequested:
		return "requested"
	case PhaseFulfilled:
		return "fulfilled"
	case PhaseRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Ledger owns the operation statuses and caches of one resource.
//
// Begin marks kind as in flight and returns the sequence number of the new call.
// Settle is called exactly once per Begin. When failure is nil it runs apply
// against the caches; both steps happen atomically with respect to every other
// Settle of the same Ledger.
type Ledger[C any] interface {
	Begin(kind domain.OperationKind) uint64
	Settle(kind domain.OperationKind, seq uint64, failure *domain.ErrorInfo, apply func(C))
}

// Run executes call as an operation of the given kind. The caller receives
// call's own result; the ledger receives the status transition and, on success,
// apply with the result.
func Run[C, T any](
	ctx context.Context,
	ledger Ledger[C],
	resource string,
	kind domain.OperationKind,
	call func(context.Context) (T, error),
	apply func(C, T),
) (T, error) {
	log := logger.ForResource("pipeline", resource).With(zap.Stringer("kind", kind))

	seq := ledger.Begin(kind)
	metrics.OperationStarted(resource, kind.String())
	log.Debug("Operation "+PhaseRequested.String(), zap.Uint64("seq", seq))

	start := time.Now()
	result, err := call(ctx)
	elapsed := time.Since(start)

	if err != nil {
		info := domain.Describe(err)
		ledger.Settle(kind, seq, &info, nil)
		metrics.OperationSettled(resource, kind.String(), metrics.OutcomeRejected, string(info.Kind), elapsed)
		log.Warn("Operation "+PhaseRejected.String(),
			zap.Uint64("seq", seq),
			zap.String("error_kind", string(info.Kind)),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		var zero T
		return zero, err
	}

	ledger.Settle(kind, seq, nil, func(c C) {
		if apply != nil {
			apply(c, result)
		}
	})
	metrics.OperationSettled(resource, kind.String(), metrics.OutcomeFulfilled, "", elapsed)
	log.Debug("Operation "+PhaseFulfilled.String(),
		zap.Uint64("seq", seq),
		zap.Duration("duration", elapsed),
	)

	return result, nil
}

package pipeline

import (
	"context"
	"errors"
	"testing"

	"dispatch-store/internal/features/resource/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settlement struct {
	kind    domain.OperationKind
	seq     uint64
	failure *domain.ErrorInfo
}

// recordingLedger keeps every call so tests can assert on the phase order.
type recordingLedger struct {
	begun   []domain.OperationKind
	settled []settlement
	cache   []string
}

func (l *recordingLedger) Begin(kind domain.OperationKind) uint64 {
	l.begun = append(l.begun, kind)
	return uint64(len(l.begun))
}

func (l *recordingLedger) Settle(kind domain.OperationKind, seq uint64, failure *domain.ErrorInfo, apply func(*[]string)) {
	l.settled = append(l.settled, settlement{kind: kind, seq: seq, failure: failure})
	if failure == nil && apply != nil {
		apply(&l.cache)
	}
}

func TestRun_Fulfilled(t *testing.T) {
	ledger := &recordingLedger{}

	got, err := Run(context.Background(), ledger, "vehicles", domain.OpCreate,
		func(context.Context) (string, error) { return "v-1", nil },
		func(c *[]string, id string) { *c = append(*c, id) },
	)

	require.NoError(t, err)
	assert.Equal(t, "v-1", got)
	assert.Equal(t, []domain.OperationKind{domain.OpCreate}, ledger.begun)
	require.Len(t, ledger.settled, 1)
	assert.Nil(t, ledger.settled[0].failure)
	assert.Equal(t, uint64(1), ledger.settled[0].seq)
	assert.Equal(t, []string{"v-1"}, ledger.cache)
}

func TestRun_Rejected(t *testing.T) {
	ledger := &recordingLedger{}
	applied := false

	_, err := Run(context.Background(), ledger, "vehicles", domain.OpUpdate,
		func(context.Context) (string, error) {
			return "", &domain.TransportError{StatusCode: 409, Message: "Plate already registered"}
		},
		func(*[]string, string) { applied = true },
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.False(t, applied)
	require.Len(t, ledger.settled, 1)
	require.NotNil(t, ledger.settled[0].failure)
	assert.Equal(t, domain.KindTransport, ledger.settled[0].failure.Kind)
	assert.Equal(t, "Plate already registered", ledger.settled[0].failure.Message)
}

func TestRun_UnknownErrorGetsGenericMessage(t *testing.T) {
	ledger := &recordingLedger{}

	_, err := Run[*[]string](context.Background(), ledger, "employees", domain.OpDelete,
		func(context.Context) (struct{}, error) { return struct{}{}, errors.New("socket closed") },
		nil,
	)

	require.Error(t, err)
	require.Len(t, ledger.settled, 1)
	assert.Equal(t, domain.GenericErrorMessage, ledger.settled[0].failure.Message)
}

func TestRun_NilApply(t *testing.T) {
	ledger := &recordingLedger{}

	_, err := Run[*[]string](context.Background(), ledger, "employees", domain.OpDelete,
		func(context.Context) (int, error) { return 1, nil },
		nil,
	)

	require.NoError(t, err)
	assert.Empty(t, ledger.cache)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "requested", PhaseRequested.String())
	assert.Equal(t, "fulfilled", PhaseFulfilled.String())
	assert.Equal(t, "rejected", PhaseRejected.String())
	assert.Equal(t, "unknown", Phase(0).String())
}

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordOperation(t *testing.T) {
	before := testutil.ToFloat64(operationsTotal.WithLabelValues(OpEnroll, OutcomeConflict))
	RecordOperation(OpEnroll, OutcomeConflict)
	RecordOperation(OpEnroll, OutcomeConflict)
	require.Equal(t, before+2, testutil.ToFloat64(operationsTotal.WithLabelValues(OpEnroll, OutcomeConflict)))
}

func TestGauges(t *testing.T) {
	SetParticipants("Chess Club", 3)
	require.Equal(t, 3.0, testutil.ToFloat64(participantsGauge.WithLabelValues("Chess Club")))

	SetSubscribers(2)
	require.Equal(t, 2.0, testutil.ToFloat64(subscribersGauge))

	before := testutil.ToFloat64(droppedEvents)
	RecordDroppedEvent()
	require.Equal(t, before+1, testutil.ToFloat64(droppedEvents))
}

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRejected(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.RecordRejected("missing_date", 2)
	m.RecordRejected("missing_date", 0)
	m.RecordRejected("malformed_date", 1)
	m.RecordAccepted(5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.IngestRejectedTotal.WithLabelValues("missing_date")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IngestRejectedTotal.WithLabelValues("malformed_date")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.IngestRecordsTotal.WithLabelValues("rejected")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.IngestRecordsTotal.WithLabelValues("accepted")))
}

func TestObserveUpstream(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveUpstream("api", "list_bookings", nil, 0.1)
	m.ObserveUpstream("api", "list_bookings", errors.New("down"), 0.2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("api", "list_bookings", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("api", "list_bookings", "error")))
}

func TestObserveBuild(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveBuild("grid", 0.01)
	m.ObserveBuild("grid", 0.02)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalendarBuildsTotal.WithLabelValues("grid")))
	assert.Equal(t, "test", m.ServiceName())
}

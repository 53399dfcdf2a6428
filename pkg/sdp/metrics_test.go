package sdp

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveParseSuccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegisterer("rtcsdp_test", reg)

	doc, err := Parse(minimalBundleSDP)
	require.NoError(t, err)
	m.ObserveParse(doc, nil)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.parsesTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.mediaLinesTotal))
}

func TestMetrics_ObserveParseFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegisterer("rtcsdp_test", reg)

	_, err := Parse("v=1\r\n")
	require.Error(t, err)
	m.ObserveParse(nil, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.parsesTotal.WithLabelValues("error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.parseErrors.WithLabelValues(UnsupportedVersion.String())))
}

func TestMetrics_WarnFuncIncrementsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegisterer("rtcsdp_test", reg)

	_, err := Parse("v=0\r\no=- 1 2 IN IP4 0.0.0.0\r\ns=-\r\nt=0 0\r\nz=bogus\r\n", WithWarnFunc(m.WarnFunc()))
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.warningsTotal.WithLabelValues("unknown_line_type")))
}

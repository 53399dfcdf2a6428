package sdp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes Prometheus counters for the ingestion pipeline, grounded
// on the same promauto registration pattern the dialog package uses for its
// own MetricsCollector. Parse and CreateDescription are pure functions and
// never touch these on their own; callers that want metrics wrap them.
type Metrics struct {
	parsesTotal     *prometheus.CounterVec
	parseErrors     *prometheus.CounterVec
	warningsTotal   *prometheus.CounterVec
	mediaLinesTotal prometheus.Counter
}

// NewMetrics registers a fresh set of counters under the given namespace.
// Call it once per process; tests that need isolation should use a fresh
// prometheus.Registry via NewMetricsWithRegisterer instead.
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWithRegisterer(namespace, prometheus.DefaultRegisterer)
}

// NewMetricsWithRegisterer is NewMetrics but against an explicit Registerer,
// so tests don't collide on the global default registry.
func NewMetricsWithRegisterer(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		parsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sdp",
			Name:      "parses_total",
			Help:      "Total number of Parse calls by outcome.",
		}, []string{"outcome"}),
		parseErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sdp",
			Name:      "parse_errors_total",
			Help:      "Total number of Parse failures by error code.",
		}, []string{"code"}),
		warningsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sdp",
			Name:      "warnings_total",
			Help:      "Total number of recoverable warnings by kind.",
		}, []string{"kind"}),
		mediaLinesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sdp",
			Name:      "media_lines_total",
			Help:      "Total number of m= lines folded across all Parse calls.",
		}),
	}
}

// ObserveParse records the outcome of a single Parse call.
func (m *Metrics) ObserveParse(doc *SdpDoc, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.parsesTotal.WithLabelValues("error").Inc()
		if pe, ok := err.(*ParseError); ok {
			m.parseErrors.WithLabelValues(pe.Code.String()).Inc()
		}
		return
	}
	m.parsesTotal.WithLabelValues("ok").Inc()
	if doc != nil {
		m.mediaLinesTotal.Add(float64(len(doc.MediaLines)))
	}
}

// WarnFunc adapts Metrics into a WarnFunc so callers can pass
// metrics.WarnFunc() straight to WithWarnFunc.
func (m *Metrics) WarnFunc() WarnFunc {
	return func(w Warning) {
		if m == nil {
			return
		}
		m.warningsTotal.WithLabelValues(warningKindName(w.Kind)).Inc()
	}
}

func warningKindName(k WarningKind) string {
	switch k {
	case WarnUnknownLineType:
		return "unknown_line_type"
	case WarnUnknownAttribute:
		return "unknown_attribute"
	case WarnUnknownHeaderExtensionURI:
		return "unknown_header_extension_uri"
	case WarnUnknownCodecPayload:
		return "unknown_codec_payload"
	case WarnUnknownCandidateExtension:
		return "unknown_candidate_extension"
	case WarnMediaLineDropped:
		return "media_line_dropped"
	case WarnSimulcastRidNotFound:
		return "simulcast_rid_not_found"
	default:
		return "unknown"
	}
}

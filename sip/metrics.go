package sip

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ghettovoice/sipmsg/header"
)

// MetricsOptions configures [NewMetrics].
type MetricsOptions struct {
	// Namespace of the metric names, "sip" by default.
	Namespace string
	// Subsystem of the metric names, "parser" by default.
	Subsystem string
	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels
}

func (o *MetricsOptions) namespace() string {
	if o == nil || o.Namespace == "" {
		return "sip"
	}
	return o.Namespace
}

func (o *MetricsOptions) subsystem() string {
	if o == nil || o.Subsystem == "" {
		return "parser"
	}
	return o.Subsystem
}

func (o *MetricsOptions) constLabels() prometheus.Labels {
	if o == nil {
		return nil
	}
	return o.ConstLabels
}

// Metrics holds Prometheus counters of the message parser.
// A nil *Metrics is valid and counts nothing.
//
// Exported metrics, with the default namespace and subsystem:
//   - sip_parser_messages_total{type="request|response"} counts parsed messages;
//   - sip_parser_invalid_headers_total{header,action="drop|keep|reject"} counts header lines
//     with malformed values by the header canonical name and the applied [Policy];
//   - sip_parser_invalid_start_lines_total counts messages rejected for a malformed start line;
//   - sip_parser_oversized_messages_total counts messages over [ParseOptions.MaxMessageSize].
type Metrics struct {
	messages       *prometheus.CounterVec
	invalidHeaders *prometheus.CounterVec
	startLines     prometheus.Counter
	oversized      prometheus.Counter
}

// NewMetrics creates parser metrics and registers them with reg.
// A nil reg creates unregistered metrics.
// It panics if the metrics are already registered with reg.
func NewMetrics(reg prometheus.Registerer, opts *MetricsOptions) *Metrics {
	f := promauto.With(reg)
	ns, sub, labels := opts.namespace(), opts.subsystem(), opts.constLabels()
	return &Metrics{
		messages: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "messages_total",
			Help:        "Total number of parsed SIP messages.",
			ConstLabels: labels,
		}, []string{"type"}),
		invalidHeaders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "invalid_headers_total",
			Help:        "Total number of header lines with malformed values.",
			ConstLabels: labels,
		}, []string{"header", "action"}),
		startLines: f.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "invalid_start_lines_total",
			Help:        "Total number of messages rejected for a malformed start line.",
			ConstLabels: labels,
		}),
		oversized: f.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "oversized_messages_total",
			Help:        "Total number of messages over the size limit.",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) incMessage(msg Message) {
	if m == nil {
		return
	}
	typ := "response"
	if IsRequest(msg) {
		typ = "request"
	}
	m.messages.WithLabelValues(typ).Inc()
}

func (m *Metrics) incHeader(line string, action Policy) {
	if m == nil {
		return
	}
	m.invalidHeaders.WithLabelValues(hdrLabel(line), action.String()).Inc()
}

func (m *Metrics) incStartLine() {
	if m == nil {
		return
	}
	m.startLines.Inc()
}

func (m *Metrics) incOversized() {
	if m == nil {
		return
	}
	m.oversized.Inc()
}

// hdrLabel returns the canonical name of a known header or "other",
// which keeps the label cardinality bounded.
func hdrLabel(line string) string {
	name, _, _ := strings.Cut(line, ":")
	if k := header.KindOf(name); k != header.KindOther {
		return string(k.CanonicName())
	}
	return "other"
}

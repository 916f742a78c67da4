package sip_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ghettovoice/sipmsg/sip"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := sip.NewMetrics(reg, nil)

	invalid := "OPTIONS sip:bob@biloxi.com SIP/2.0\r\n" +
		"Max-Forwards: seventy\r\n" +
		"Content-Length: 0\r\n" +
		"\r\n"
	inputs := []struct {
		input  string
		policy sip.Policy
	}{
		{registerMsg, sip.PolicyDropInvalid},
		{streamRes, sip.PolicyDropInvalid},
		{invalid, sip.PolicyDropInvalid},
		{invalid, sip.PolicyKeepInvalid},
		{invalid, sip.PolicyRejectInvalid},
		{"*\r\n\r\n", sip.PolicyDropInvalid},
	}
	for _, in := range inputs {
		sip.Parse([]byte(in.input), &sip.ParseOptions{Policy: in.policy, Metrics: metrics}) //nolint:errcheck
	}
	sip.Parse([]byte(registerMsg), &sip.ParseOptions{Metrics: metrics, MaxMessageSize: 16}) //nolint:errcheck

	want := `
# HELP sip_parser_messages_total Total number of parsed SIP messages.
# TYPE sip_parser_messages_total counter
sip_parser_messages_total{type="request"} 3
sip_parser_messages_total{type="response"} 1
# HELP sip_parser_invalid_headers_total Total number of header lines with malformed values.
# TYPE sip_parser_invalid_headers_total counter
sip_parser_invalid_headers_total{action="drop",header="Max-Forwards"} 1
sip_parser_invalid_headers_total{action="keep",header="Max-Forwards"} 1
sip_parser_invalid_headers_total{action="reject",header="Max-Forwards"} 1
# HELP sip_parser_invalid_start_lines_total Total number of messages rejected for a malformed start line.
# TYPE sip_parser_invalid_start_lines_total counter
sip_parser_invalid_start_lines_total 1
# HELP sip_parser_oversized_messages_total Total number of messages over the size limit.
# TYPE sip_parser_oversized_messages_total counter
sip_parser_oversized_messages_total 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want)); err != nil {
		t.Errorf("metrics mismatch: %v", err)
	}
}

func TestMetrics_Options(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := sip.NewMetrics(reg, &sip.MetricsOptions{
		Namespace:   "edge",
		Subsystem:   "sip",
		ConstLabels: prometheus.Labels{"node": "a"},
	})
	sip.Parse([]byte(streamReq), &sip.ParseOptions{Metrics: metrics}) //nolint:errcheck

	n, err := testutil.GatherAndCount(reg, "edge_sip_messages_total")
	if err != nil {
		t.Fatalf("testutil.GatherAndCount() error = %v, want nil", err)
	}
	if n != 1 {
		t.Errorf("edge_sip_messages_total series = %d, want 1", n)
	}

	// nil registerer creates working unregistered metrics
	sip.Parse([]byte(streamReq), &sip.ParseOptions{Metrics: sip.NewMetrics(nil, nil)}) //nolint:errcheck
}

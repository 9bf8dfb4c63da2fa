package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeInstance(t *testing.T) {
	valid := []string{
		"10.0.0.4:9100",
		"10.0.0.4",
		"[::1]:9182",
		"[2001:db8::1]",
		"host-01:9090",
		"node.internal.example.com:9100",
	}
	for _, s := range valid {
		assert.True(t, LooksLikeInstance(s), "expected %q to be accepted", s)
	}

	invalid := []string{
		"",
		"unknown",
		"all windows servers",
		"blast radius",
		"all nodes",
		"the entire cluster",
		"host without port",
		":9100",
	}
	for _, s := range invalid {
		assert.False(t, LooksLikeInstance(s), "expected %q to be rejected", s)
	}
}

func TestParseInstance(t *testing.T) {
	tests := []struct {
		in   string
		host string
		port int
	}{
		{"10.0.0.1:9100", "10.0.0.1", 9100},
		{"10.0.0.1", "10.0.0.1", 0},
		{"host-01:9090", "host-01", 9090},
		{"[::1]:9182", "::1", 9182},
		{"[2001:db8::1]", "2001:db8::1", 0},
		{"unknown", "unknown", 0},
	}
	for _, tt := range tests {
		host, port := ParseInstance(tt.in)
		assert.Equal(t, tt.host, host, "host of %q", tt.in)
		assert.Equal(t, tt.port, port, "port of %q", tt.in)
	}
}

func TestPickPrimaryOrdering(t *testing.T) {
	a := Analysis{
		Anomalies: []Finding{{Instance: "10.0.0.2:9100"}},
		Incident: Incident{
			Evidence: []Evidence{{Instance: "10.0.0.3:9100"}},
		},
	}
	// Anomalies win over evidence and samples.
	assert.Equal(t, "10.0.0.2:9100", PickPrimary([]string{"10.0.0.1:9100"}, a))
}

func TestPickPrimaryFallsBackToEvidence(t *testing.T) {
	a := Analysis{
		Anomalies: []Finding{{Instance: "all nodes"}, {Instance: "blast radius"}},
		Incident: Incident{
			Evidence: []Evidence{{Instance: "10.0.0.3:9100"}},
		},
	}
	assert.Equal(t, "10.0.0.3:9100", PickPrimary(nil, a))
}

func TestPickPrimaryFallsBackToSamples(t *testing.T) {
	a := Analysis{
		Anomalies: []Finding{{Instance: "everything"}},
	}
	assert.Equal(t, "10.0.0.1:9100", PickPrimary([]string{"unknown", "10.0.0.1:9100"}, a))
}

func TestPickPrimaryUnknown(t *testing.T) {
	assert.Equal(t, "unknown", PickPrimary([]string{"unknown"}, Analysis{}))
}

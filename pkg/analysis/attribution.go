package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// Instance attribution: the model frequently reports phrases like
// "all nodes" or "blast radius" in the instance field. Only strings that
// look like a real scrape endpoint are accepted; everything else is
// replaced by the incident's primary instance at write time.

var (
	ipv4Pattern     = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}(:\d{1,5})?$`)
	hostPortPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9.-]*:\d{1,5}$`)
	ipv6Pattern     = regexp.MustCompile(`^\[[0-9A-Fa-f:]+\](:\d{1,5})?$`)
)

// LooksLikeInstance reports whether s is a plausible scrape instance:
// IPv4 with optional port, hostname:port, or bracketed IPv6 with optional
// port. Free-form phrases are rejected.
func LooksLikeInstance(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == "unknown" {
		return false
	}
	if strings.ContainsAny(s, " \t") {
		return false
	}
	return ipv4Pattern.MatchString(s) || hostPortPattern.MatchString(s) || ipv6Pattern.MatchString(s)
}

// ParseInstance splits an instance into host and optional port. Bracketed
// IPv6 hosts are returned without the brackets. Port is 0 when absent or
// unparsable.
func ParseInstance(s string) (host string, port int) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "[") {
		closing := strings.Index(s, "]")
		if closing == -1 {
			return s, 0
		}
		host = s[1:closing]
		rest := s[closing+1:]
		if strings.HasPrefix(rest, ":") {
			port, _ = strconv.Atoi(rest[1:])
		}
		return host, port
	}

	idx := strings.LastIndex(s, ":")
	if idx == -1 {
		return s, 0
	}
	p, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return s, 0
	}
	return s[:idx], p
}

// PickPrimary chooses the instance an incident is attributed to: the first
// string passing LooksLikeInstance among, in order, the analysis anomalies,
// the incident evidence, and the raw samples. Returns "unknown" only when
// no candidate anywhere is valid.
func PickPrimary(sampleInstances []string, a Analysis) string {
	for _, f := range a.Anomalies {
		if LooksLikeInstance(f.Instance) {
			return strings.TrimSpace(f.Instance)
		}
	}
	for _, e := range a.Incident.Evidence {
		if LooksLikeInstance(e.Instance) {
			return strings.TrimSpace(e.Instance)
		}
	}
	for _, inst := range sampleInstances {
		if LooksLikeInstance(inst) {
			return strings.TrimSpace(inst)
		}
	}
	return "unknown"
}

package monitor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/promsight/promsight/pkg/analysis"
	"github.com/promsight/promsight/pkg/promquery"
	"github.com/promsight/promsight/pkg/timeutil"
)

// PromptLimits caps how much of a batch is shown to the model.
type PromptLimits struct {
	MaxMetrics         int
	MetricsPerInstance int
}

// BuildPrompt renders the collective-RCA prompt for one batch window.
// Samples are grouped by instance; instances are sorted lexicographically and
// samples within an instance by metric name, so identical batches always
// produce identical prompts. At most MetricsPerInstance samples are shown per
// instance and at most MaxMetrics in total, with a cap marker when truncated.
// Returns the prompt and the number of samples actually included.
func BuildPrompt(samples []promquery.Sample, w timeutil.Window, tz timeutil.Timezone, limits PromptLimits) (string, int) {
	grouped := map[string][]promquery.Sample{}
	for _, s := range samples {
		inst := s.Instance
		if inst == "" {
			inst = "unknown"
		}
		grouped[inst] = append(grouped[inst], s)
	}

	instances := make([]string, 0, len(grouped))
	for inst := range grouped {
		instances = append(instances, inst)
	}
	sort.Strings(instances)

	var lines strings.Builder
	included := 0
	capped := false
	for _, inst := range instances {
		group := grouped[inst]
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		if len(group) > limits.MetricsPerInstance {
			group = group[:limits.MetricsPerInstance]
		}

		fmt.Fprintf(&lines, "\n### Instance: %s\n", inst)
		for _, s := range group {
			if included >= limits.MaxMetrics {
				capped = true
				break
			}
			fmt.Fprintf(&lines, "  %s: %s\n", s.Name, formatValue(s.Value))
			included++
		}
		if capped {
			fmt.Fprintf(&lines, "\n  ... (capped at %d)\n", limits.MaxMetrics)
			break
		}
	}

	return fmt.Sprintf(`You are an expert SRE analyzing Prometheus metrics.

BATCH WINDOW (%s): %s -> %s (%d min)

TASKS:
1. Detect anomalies (spikes, drops, errors, high resource usage)
2. Cluster related anomalies by root cause
3. Provide collective RCA with evidence
4. Return ONLY valid JSON (no markdown)

METRICS (%d/%d included):
%s
SCHEMA:
%s

RETURN ONLY JSON:`,
		tz.Label, tz.Format(w.Start), tz.Format(w.End), int(w.Interval().Minutes()),
		included, len(samples),
		lines.String(),
		analysis.SchemaTemplate), included
}

func formatValue(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case string:
		return n
	default:
		return fmt.Sprint(v)
	}
}

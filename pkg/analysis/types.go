// Package analysis defines the JSON contract imposed on the LLM and the
// helpers that turn its free-form reply into usable, attributed findings.
package analysis

import "encoding/json"

// Severity levels an incident may carry.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Evidence is one metric observation backing the incident.
type Evidence struct {
	Metric       string      `json:"metric"`
	Instance     string      `json:"instance"`
	Value        json.Number `json:"value"`
	WhyItMatters string      `json:"why_it_matters"`
}

// FixPlan is the remediation plan split by horizon.
type FixPlan struct {
	Immediate  []string `json:"immediate"`
	Next24h    []string `json:"next_24h"`
	Prevention []string `json:"prevention"`
}

// Incident is the collective root-cause analysis for a batch.
type Incident struct {
	Title               string     `json:"title"`
	Severity            string     `json:"severity"`
	Confidence          float64    `json:"confidence"`
	Summary             string     `json:"summary"`
	RootCause           string     `json:"root_cause"`
	ContributingFactors []string   `json:"contributing_factors"`
	BlastRadius         string     `json:"blast_radius"`
	Evidence            []Evidence `json:"evidence"`
	FixPlan             FixPlan    `json:"fix_plan"`
}

// Finding is a single anomaly the model reported.
type Finding struct {
	Metric   string      `json:"metric"`
	Instance string      `json:"instance"`
	Observed json.Number `json:"observed"`
	Expected string      `json:"expected"`
	Symptom  string      `json:"symptom"`
	Cluster  string      `json:"cluster"`
}

// Cluster groups related anomalies under one theme.
type Cluster struct {
	Name           string `json:"name"`
	Theme          string `json:"theme"`
	AnomalyIndexes []int  `json:"anomaly_indexes"`
}

// Analysis is the full parsed LLM response.
type Analysis struct {
	Incident  Incident  `json:"incident"`
	Anomalies []Finding `json:"anomalies"`
	Clusters  []Cluster `json:"clusters"`
}

// Empty reports whether the analysis carries no incident at all, which
// callers treat as a failed analysis.
func (a Analysis) Empty() bool {
	return a.Incident.Title == "" && len(a.Anomalies) == 0 && a.Incident.Summary == ""
}

// applyDefaults substitutes schema defaults for fields the model omitted.
func (a *Analysis) applyDefaults() {
	switch a.Incident.Severity {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
	default:
		a.Incident.Severity = SeverityLow
	}
	if a.Incident.Title == "" && !a.Empty() {
		a.Incident.Title = "Batch Analysis"
	}
	if a.Incident.Confidence < 0 {
		a.Incident.Confidence = 0
	}
	if a.Incident.Confidence > 1 {
		a.Incident.Confidence = 1
	}
	if a.Incident.ContributingFactors == nil {
		a.Incident.ContributingFactors = []string{}
	}
	if a.Incident.Evidence == nil {
		a.Incident.Evidence = []Evidence{}
	}
	if a.Incident.FixPlan.Immediate == nil {
		a.Incident.FixPlan.Immediate = []string{}
	}
	if a.Incident.FixPlan.Next24h == nil {
		a.Incident.FixPlan.Next24h = []string{}
	}
	if a.Incident.FixPlan.Prevention == nil {
		a.Incident.FixPlan.Prevention = []string{}
	}
	if a.Anomalies == nil {
		a.Anomalies = []Finding{}
	}
	if a.Clusters == nil {
		a.Clusters = []Cluster{}
	}
}

// SchemaTemplate is the literal JSON schema embedded into every prompt. The
// model is instructed to return exactly this shape.
const SchemaTemplate = `{
  "incident": {
    "title": "string", "severity": "low|medium|high|critical",
    "confidence": 0.0, "summary": "string", "root_cause": "string",
    "contributing_factors": [], "blast_radius": "string",
    "evidence": [{"metric": "", "instance": "", "value": 0, "why_it_matters": ""}],
    "fix_plan": {"immediate": [], "next_24h": [], "prevention": []}
  },
  "anomalies": [{"metric": "", "instance": "", "observed": 0, "expected": "", "symptom": "", "cluster": ""}],
  "clusters": [{"name": "", "theme": "", "anomaly_indexes": []}]
}`

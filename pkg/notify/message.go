package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/promsight/promsight/pkg/analysis"
	"github.com/promsight/promsight/pkg/timeutil"
)

// Alert is the rendered payload for one incident, shared by all channels.
type Alert struct {
	Incident     analysis.Incident
	AnomalyCount int
	Window       timeutil.Window
	Timezone     timeutil.Timezone
	SessionID    string
}

func (a Alert) severity() string {
	return strings.ToUpper(a.Incident.Severity)
}

func (a Alert) title() string {
	if a.Incident.Title == "" {
		return "Batch Analysis"
	}
	return a.Incident.Title
}

// windowLabel renders "2026-01-29 03:15 -> 03:20 IST".
func (a Alert) windowLabel() string {
	start := a.Window.Start.In(a.Timezone.Location)
	end := a.Window.End.In(a.Timezone.Location)
	return fmt.Sprintf("%s -> %s %s",
		start.Format("2006-01-02 15:04"),
		end.Format("15:04"),
		a.Timezone.Label)
}

// Subject is the email subject line.
func (a Alert) Subject() string {
	return fmt.Sprintf("[%s] %s", a.severity(), a.title())
}

// Text renders the chat message body.
func (a Alert) Text() string {
	immediate := strings.Join(a.Incident.FixPlan.Immediate, ", ")
	if immediate == "" {
		immediate = "None"
	}
	rootCause := a.Incident.RootCause
	if rootCause == "" {
		rootCause = "Unknown"
	}
	blastRadius := a.Incident.BlastRadius
	if blastRadius == "" {
		blastRadius = "Unknown"
	}

	return fmt.Sprintf(`:rotating_light: [%s] %s
Window: %s
%s
Root Cause: %s
Blast Radius: %s
Actions: %s
Anomalies: %d
Session: %s`,
		a.severity(), a.title(),
		a.windowLabel(),
		a.Incident.Summary,
		rootCause,
		blastRadius,
		immediate,
		a.AnomalyCount,
		a.SessionID)
}

// HTML renders the email body.
func (a Alert) HTML() string {
	var items strings.Builder
	for _, action := range a.Incident.FixPlan.Immediate {
		fmt.Fprintf(&items, "<li>%s</li>", html.EscapeString(action))
	}
	if items.Len() == 0 {
		items.WriteString("<li>None</li>")
	}

	return fmt.Sprintf(`<h2>[%s] %s</h2>
<p><b>Window:</b> %s</p>
<p><b>Summary:</b> %s</p>
<p><b>Root Cause:</b> %s</p>
<p><b>Blast Radius:</b> %s</p>
<p><b>Immediate Actions:</b></p><ul>%s</ul>
<p><b>Anomalies:</b> %d | <b>Confidence:</b> %.0f%%</p>`,
		a.severity(), html.EscapeString(a.title()),
		a.windowLabel(),
		html.EscapeString(a.Incident.Summary),
		html.EscapeString(a.Incident.RootCause),
		html.EscapeString(a.Incident.BlastRadius),
		items.String(),
		a.AnomalyCount,
		a.Incident.Confidence*100)
}

// maskWebhook hides most of a webhook URL so logs never leak the secret path.
func maskWebhook(url string) string {
	if url == "" {
		return ""
	}
	if len(url) > 45 {
		return url[:30] + "..." + url[len(url)-8:]
	}
	return "***"
}

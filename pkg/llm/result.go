package llm

import "math"

// Kind classifies the outcome of a gateway call.
type Kind int

const (
	// Ok means a provider returned text.
	Ok Kind = iota
	// Transient means every provider failed with a retryable error
	// (timeout, connection refused, 5xx). The caller may retry the
	// same window on its next cycle.
	Transient
	// Unavailable means no provider is configured at all.
	Unavailable
)

func (k Kind) String() string {
	switch k {
	case Ok:
		return "ok"
	case Transient:
		return "transient"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a gateway call. Text and Tokens are only
// meaningful when Kind is Ok; Provider names the provider that produced the
// text. Err carries the last provider error for logging.
type Result struct {
	Kind     Kind
	Text     string
	Tokens   int
	Provider string
	Err      error
}

// EstimateTokens approximates token usage for providers that do not report
// it, as 1.3 tokens per whitespace-separated word.
func EstimateTokens(prompt, response string) int {
	return int(math.Ceil(1.3 * float64(wordCount(prompt)+wordCount(response))))
}

func wordCount(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			inWord = false
		default:
			if !inWord {
				n++
			}
			inWord = true
		}
	}
	return n
}

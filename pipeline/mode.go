package pipeline

// Mode selects the message framing, response schema and failure policy of
// a pipeline run.
type Mode string

const (
	ModeSynthesize Mode = "synthesize"
	ModeComplete   Mode = "complete"
	ModeBeautify   Mode = "beautify"
	ModeStyle      Mode = "style"
	ModeRecognize  Mode = "recognize"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeSynthesize, ModeComplete, ModeBeautify, ModeStyle, ModeRecognize:
		return true
	}
	return false
}

// Destructive reports whether the mode replaces existing canvas content.
// Destructive modes roll back to the caller's objects instead of erroring
// when every backend fails.
func (m Mode) Destructive() bool {
	return m == ModeBeautify || m == ModeStyle
}

// tuning bounds one generation call. The numbers track how much output
// each mode legitimately needs: a full restyle is large, a single ghost
// suggestion is tiny.
type tuning struct {
	Temperature float64
	MaxTokens   int
}

var tunings = map[Mode]tuning{
	ModeSynthesize: {Temperature: 0.1, MaxTokens: 5000},
	ModeComplete:   {Temperature: 0.1, MaxTokens: 220},
	ModeBeautify:   {Temperature: 0.1, MaxTokens: 10000},
	ModeStyle:      {Temperature: 0.2, MaxTokens: 8000},
	ModeRecognize:  {Temperature: 0.0, MaxTokens: 300},
}

// Package style turns a free-text style directive into renderer brush
// settings and enriches restyled objects with the metadata the frontend
// needs to draw them.
package style

import "strings"

// Brush is a renderer brush selection with its tool-specific parameters.
type Brush struct {
	Type   string
	Params map[string]interface{}
}

// oilKeywords select the impasto treatment, which is the only style class
// that also triggers texture overlays.
var oilKeywords = []string{"van gogh", "oil", "impasto"}

// IsImpasto reports whether the style text falls in the oil/impasto class.
func IsImpasto(styleText string) bool {
	s := strings.ToLower(styleText)
	for _, kw := range oilKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Map resolves the style text against the keyword table, first match wins.
// Unmatched text falls through to the plain brush. The returned params map
// is fresh on every call.
func Map(styleText string) Brush {
	s := strings.ToLower(styleText)

	switch {
	case containsAny(s, "watercolor", "wash"):
		return Brush{Type: "spray", Params: map[string]interface{}{
			"opacity":       0.6,
			"scatterAmount": 0.2,
		}}
	case IsImpasto(s):
		return Brush{Type: "mixed", Params: map[string]interface{}{
			"base":      "wacky",
			"texture":   "thick",
			"mixColors": []interface{}{"#FFCC33", "#FF9900", "#FFFF66"},
			"opacity":   0.9,
			"mixAmount": 0.6,
		}}
	case containsAny(s, "neon", "glow"):
		return Brush{Type: "neon", Params: map[string]interface{}{
			"glow":      true,
			"intensity": 0.9,
		}}
	case containsAny(s, "chalk", "pastel"):
		return Brush{Type: "chalk", Params: map[string]interface{}{
			"grain": 0.6,
		}}
	case containsAny(s, "spray", "splatter"):
		return Brush{Type: "spray", Params: map[string]interface{}{
			"scatterAmount": 0.5,
		}}
	case strings.Contains(s, "drip"):
		return Brush{Type: "drip", Params: map[string]interface{}{
			"dripRate": 0.4,
		}}
	case strings.Contains(s, "scatter"):
		return Brush{Type: "scatter", Params: map[string]interface{}{
			"scatterAmount": 0.4,
		}}
	case strings.Contains(s, "mixed"):
		return Brush{Type: "mixed", Params: map[string]interface{}{
			"mixColors": []interface{}{"#FFFFFF", "#000000"},
			"mixAmount": 0.5,
		}}
	case containsAny(s, "stamp", "sticker", "collage"):
		return Brush{Type: "normal", Params: map[string]interface{}{
			"preferStamp": true,
		}}
	}

	return Brush{Type: "normal", Params: map[string]interface{}{}}
}

func copyParams(params map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}

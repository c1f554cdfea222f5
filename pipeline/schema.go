package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/rescanvas/assist/canvas"
)

// Completion is the ghost suggestion returned by complete mode.
type Completion struct {
	Complete   bool                  `json:"complete"`
	Confidence float64               `json:"confidence"`
	Object     *canvas.DrawingObject `json:"object"`
}

// Recognition is the label returned by recognize mode.
type Recognition struct {
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation,omitempty"`
}

// Result is a successful pipeline outcome. Exactly one of the payload
// fields is populated, according to the mode; Backend records which tier
// produced it.
type Result struct {
	Objects     []canvas.DrawingObject `json:"objects,omitempty"`
	Completion  *Completion            `json:"completion,omitempty"`
	Recognition *Recognition           `json:"recognition,omitempty"`
	Backend     string                 `json:"backend,omitempty"`
}

// extractJSON peels markdown fences off a reply. Backends are asked for
// bare JSON but the local model sometimes wraps it anyway.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line.
		s = s[idx+1:]
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// decode validates a raw backend reply against the schema the mode
// requires and converts it into a Result. Checks are structural only:
// geometry inside schema-valid objects is trusted as-is.
func decode(mode Mode, raw string) (*Result, error) {
	payload := extractJSON(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &top); err != nil {
		return nil, newError(InvalidResponse, err, "reply is not a JSON object")
	}

	switch mode {
	case ModeSynthesize, ModeBeautify, ModeStyle:
		rawObjects, ok := top["objects"]
		if !ok {
			return nil, errorf(InvalidResponse, "reply is missing objects")
		}
		var objects []canvas.DrawingObject
		if err := json.Unmarshal(rawObjects, &objects); err != nil {
			return nil, newError(InvalidResponse, err, "objects is not a sequence")
		}
		return &Result{Objects: objects}, nil

	case ModeComplete:
		if err := requireTypes(top, "complete", jsonBool, "confidence", jsonNumber); err != nil {
			return nil, err
		}
		var completion Completion
		if err := json.Unmarshal([]byte(payload), &completion); err != nil {
			return nil, newError(InvalidResponse, err, "malformed completion")
		}
		if completion.Object == nil {
			return nil, errorf(InvalidResponse, "reply is missing object")
		}
		return &Result{Completion: &completion}, nil

	case ModeRecognize:
		if err := requireTypes(top, "label", jsonString, "confidence", jsonNumber); err != nil {
			return nil, err
		}
		var recognition Recognition
		if err := json.Unmarshal([]byte(payload), &recognition); err != nil {
			return nil, newError(InvalidResponse, err, "malformed recognition")
		}
		return &Result{Recognition: &recognition}, nil
	}

	return nil, errorf(BadInput, "unknown mode %q", mode)
}

type jsonType int

const (
	jsonString jsonType = iota
	jsonNumber
	jsonBool
)

// requireTypes checks the presence and primitive type of top-level keys,
// given as alternating key/type pairs.
func requireTypes(top map[string]json.RawMessage, pairs ...interface{}) error {
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i].(string)
		raw, ok := top[key]
		if !ok {
			return errorf(InvalidResponse, "reply is missing %s", key)
		}
		var err error
		switch pairs[i+1].(jsonType) {
		case jsonString:
			var v string
			err = json.Unmarshal(raw, &v)
		case jsonNumber:
			var v float64
			err = json.Unmarshal(raw, &v)
		case jsonBool:
			var v bool
			err = json.Unmarshal(raw, &v)
		}
		if err != nil {
			return newError(InvalidResponse, err, key+" has the wrong type")
		}
	}
	return nil
}

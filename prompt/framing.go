// Package prompt frames the fixed message sequences sent to the generation
// backends. Every mode uses the same shape: a system instruction, a fixed
// set of worked examples, then the live request with the serialized canvas
// snapshot. The instruction and example texts are configuration; the
// framing logic here is the only code.
package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/rescanvas/assist/backend"
	"github.com/rescanvas/assist/canvas"
)

// sceneState is the snapshot shape the synthesis and completion prompts
// were written against.
type sceneState struct {
	Drawings []canvas.DrawingObject `json:"drawings"`
	Bounds   canvas.Bounds          `json:"bounds"`
}

// wideState is the snapshot shape the beautify and style prompts were
// written against.
type wideState struct {
	Width   float64                `json:"width"`
	Height  float64                `json:"height"`
	Objects []canvas.DrawingObject `json:"objects"`
}

func compact(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		// The canvas model round-trips through JSON by construction;
		// a marshal failure here means a programming error upstream.
		return "{}"
	}
	return string(data)
}

// Synthesize frames the text-to-drawing request.
func Synthesize(userPrompt string, state canvas.State) []backend.Message {
	scene := sceneState{Drawings: state.Objects, Bounds: state.Bounds}
	if scene.Drawings == nil {
		scene.Drawings = []canvas.DrawingObject{}
	}
	user := fmt.Sprintf(
		"CanvasState:\n%s\nUserPrompt:\nDescribe all drawing commands (shapes and freehand strokes) needed to draw this scene: %s",
		compact(scene), userPrompt)

	return []backend.Message{
		{Role: "system", Content: synthesizeSystem},
		{Role: "user", Content: synthesizeShotUser1},
		{Role: "assistant", Content: synthesizeShotReply1},
		{Role: "user", Content: synthesizeShotUser2},
		{Role: "assistant", Content: synthesizeShotReply2},
		{Role: "user", Content: synthesizeShotUser3},
		{Role: "assistant", Content: synthesizeShotReply3},
		{Role: "user", Content: user},
	}
}

// Complete frames the next-stroke suggestion request.
func Complete(state canvas.State) []backend.Message {
	scene := sceneState{Drawings: state.Objects, Bounds: state.Bounds}
	if scene.Drawings == nil {
		scene.Drawings = []canvas.DrawingObject{}
	}

	return []backend.Message{
		{Role: "system", Content: completeSystem},
		{Role: "user", Content: completeShotUser1},
		{Role: "assistant", Content: completeShotReply1},
		{Role: "user", Content: completeShotUser2},
		{Role: "assistant", Content: completeShotReply2},
		{Role: "user", Content: completeShotUser3},
		{Role: "assistant", Content: completeShotReply3},
		{Role: "user", Content: "CanvasState:\n" + compact(scene)},
	}
}

// Beautify frames the sketch-cleanup request.
func Beautify(state canvas.State) []backend.Message {
	wide := wideState{Width: state.Bounds.Width, Height: state.Bounds.Height, Objects: state.Objects}
	if wide.Objects == nil {
		wide.Objects = []canvas.DrawingObject{}
	}

	return []backend.Message{
		{Role: "system", Content: beautifySystem},
		{Role: "user", Content: beautifyShotUser1},
		{Role: "assistant", Content: beautifyShotReply1},
		{Role: "user", Content: beautifyShotUser2},
		{Role: "assistant", Content: beautifyShotReply2},
		{Role: "user", Content: "CanvasState:\n" + compact(wide)},
	}
}

// StyleTransfer frames the restyle request.
func StyleTransfer(state canvas.State, styleText string) []backend.Message {
	wide := wideState{Width: state.Bounds.Width, Height: state.Bounds.Height, Objects: state.Objects}
	if wide.Objects == nil {
		wide.Objects = []canvas.DrawingObject{}
	}
	user := fmt.Sprintf("CanvasState:\n%s\nStylePrompt:\n%s", compact(wide), styleText)

	return []backend.Message{
		{Role: "system", Content: styleSystem},
		{Role: "user", Content: styleShotUser1},
		{Role: "assistant", Content: styleShotReply1},
		{Role: "user", Content: user},
	}
}

// Recognize frames the selection-labeling request.
func Recognize(objects []canvas.DrawingObject, box canvas.SelectionBox, bounds canvas.Bounds) []backend.Message {
	if objects == nil {
		objects = []canvas.DrawingObject{}
	}
	payload := struct {
		Objects []canvas.DrawingObject `json:"objects"`
		Bounds  canvas.Bounds          `json:"bounds"`
	}{Objects: objects, Bounds: bounds}

	user := fmt.Sprintf(
		"SelectionBox:\n%s\nCanvasObjects:\n%s\n\nPlease identify the primary object or scene contained within the selection box and return JSON as specified.",
		compact(box), compact(payload))

	return []backend.Message{
		{Role: "system", Content: recognizeSystem},
		{Role: "user", Content: user},
	}
}

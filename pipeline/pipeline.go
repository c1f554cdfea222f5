// Package pipeline orchestrates the assist generation flow: a geometric
// fast path where one applies, then the Primary backend, then the
// Secondary, each attempted once with identical message framing. The
// failure policy depends on the mode: additive modes surface a terminal
// error when both tiers fail, destructive modes roll back to the caller's
// own objects so existing work is never replaced with nothing.
package pipeline

import (
	"context"

	"github.com/rescanvas/assist/backend"
	"github.com/rescanvas/assist/canvas"
	"github.com/rescanvas/assist/classify"
	"github.com/rescanvas/assist/log"
	"github.com/rescanvas/assist/prompt"
	"github.com/rescanvas/assist/style"
)

// Tier pairs a backend with the model it runs per mode.
type Tier struct {
	Generator backend.Generator
	Models    map[Mode]string
}

// Request is one decoded assist call. State carries the canvas snapshot;
// in recognize mode its object list is the subset intersecting Selection.
type Request struct {
	Mode      Mode
	Prompt    string
	StyleText string
	Selection canvas.SelectionBox
	State     canvas.State
}

// Pipeline runs requests against a fixed two-tier backend chain. It holds
// only read-only configuration, so one instance serves concurrent
// requests without coordination.
type Pipeline struct {
	tiers []Tier
}

// New builds a pipeline over the given tiers, tried in order.
func New(tiers ...Tier) *Pipeline {
	return &Pipeline{tiers: tiers}
}

// Run executes one request and returns a fresh result. The input state is
// never mutated. Backend calls inherit ctx, so an aborted caller abandons
// any in-flight call.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if !req.Mode.Valid() {
		return nil, errorf(BadInput, "unknown mode %q", req.Mode)
	}

	if req.Mode == ModeRecognize {
		if match, ok := classify.Match(req.State.Objects); ok {
			log.Trace.Printf("recognize: rules matched %q", match.Label)
			return &Result{
				Recognition: &Recognition{
					Label:       match.Label,
					Confidence:  match.Confidence,
					Explanation: match.Explanation,
				},
				Backend: "rules",
			}, nil
		}
	}

	messages := frame(req)
	tune := tunings[req.Mode]

	var lastErr error
	for _, tier := range p.tiers {
		opts := backend.Options{
			Model:       tier.Models[req.Mode],
			Temperature: tune.Temperature,
			MaxTokens:   tune.MaxTokens,
		}

		raw, err := tier.Generator.Generate(ctx, messages, opts)
		if err != nil {
			lastErr = newError(BackendUnavailable, err, "generate failed")
			log.Warning.Printf("%s: %s unavailable: %v", req.Mode, tier.Generator.Name(), err)
			continue
		}

		result, err := decode(req.Mode, raw)
		if err != nil {
			lastErr = err
			log.Warning.Printf("%s: %s returned invalid reply: %v", req.Mode, tier.Generator.Name(), err)
			continue
		}

		result.Backend = tier.Generator.Name()
		if req.Mode == ModeStyle {
			result.Objects = style.Postprocess(result.Objects, req.StyleText)
		}
		log.Info.Printf("%s: served by %s", req.Mode, tier.Generator.Name())
		return result, nil
	}

	if req.Mode.Destructive() {
		log.Warning.Printf("%s: all backends failed, returning original objects", req.Mode)
		objects := make([]canvas.DrawingObject, len(req.State.Objects))
		copy(objects, req.State.Objects)
		return &Result{Objects: objects, Backend: "rollback"}, nil
	}

	return nil, &Error{Kind: BothBackendsFailed, Err: lastErr}
}

func frame(req Request) []backend.Message {
	switch req.Mode {
	case ModeSynthesize:
		return prompt.Synthesize(req.Prompt, req.State)
	case ModeComplete:
		return prompt.Complete(req.State)
	case ModeBeautify:
		return prompt.Beautify(req.State)
	case ModeStyle:
		return prompt.StyleTransfer(req.State, req.StyleText)
	case ModeRecognize:
		return prompt.Recognize(req.State.Objects, req.Selection, req.State.Bounds)
	}
	return nil
}

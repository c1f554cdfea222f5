package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rescanvas/assist/backend"
	"github.com/rescanvas/assist/canvas"
)

type fakeBackend struct {
	name  string
	reply string
	err   error
	calls int
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Generate(ctx context.Context, messages []backend.Message, opts backend.Options) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func tier(f *fakeBackend) Tier {
	return Tier{Generator: f, Models: map[Mode]string{}}
}

func circleObject() canvas.DrawingObject {
	return canvas.DrawingObject{
		Color:     "#000000",
		LineWidth: 2,
		PathData: &canvas.PathData{
			Tool:  canvas.ToolShape,
			Type:  canvas.Circle,
			Start: &canvas.Point{X: 10, Y: 10},
			End:   &canvas.Point{X: 20, Y: 10},
		},
	}
}

func strokeState() canvas.State {
	return canvas.State{
		Bounds: canvas.Bounds{Width: 800, Height: 600},
		Objects: []canvas.DrawingObject{{
			ID:        "s1",
			Color:     "#FFD700",
			LineWidth: 4,
			PathData: &canvas.PathData{
				Tool: canvas.ToolFreehand,
				Type: canvas.Stroke,
				Points: []canvas.Point{
					{X: 100, Y: 100}, {X: 200, Y: 150}, {X: 300, Y: 100},
				},
			},
		}},
	}
}

func TestRecognizeFastPathCircle(t *testing.T) {
	primary := &fakeBackend{name: "openai"}
	secondary := &fakeBackend{name: "ollama"}
	p := New(tier(primary), tier(secondary))

	res, err := p.Run(context.Background(), Request{
		Mode:  ModeRecognize,
		State: canvas.State{Objects: []canvas.DrawingObject{circleObject()}},
	})

	require.NoError(t, err)
	require.NotNil(t, res.Recognition)
	assert.Equal(t, "circle", res.Recognition.Label)
	assert.Equal(t, 0.95, res.Recognition.Confidence)
	assert.Equal(t, "rules", res.Backend)
	assert.Zero(t, primary.calls)
	assert.Zero(t, secondary.calls)
}

func TestRecognizeFastPathText(t *testing.T) {
	primary := &fakeBackend{name: "openai"}
	p := New(tier(primary))

	res, err := p.Run(context.Background(), Request{
		Mode: ModeRecognize,
		State: canvas.State{Objects: []canvas.DrawingObject{{
			PathData: &canvas.PathData{Tool: canvas.ToolShape, Type: canvas.Text, Text: "Hi"},
		}}},
	})

	require.NoError(t, err)
	assert.Equal(t, "text: 'Hi'", res.Recognition.Label)
	assert.Equal(t, 0.98, res.Recognition.Confidence)
	assert.Zero(t, primary.calls)
}

func TestRecognizeFallsThroughToBackend(t *testing.T) {
	primary := &fakeBackend{name: "openai", reply: `{"label":"face","confidence":0.7}`}
	p := New(tier(primary))

	res, err := p.Run(context.Background(), Request{
		Mode: ModeRecognize,
		State: canvas.State{Objects: []canvas.DrawingObject{{
			PathData: &canvas.PathData{Tool: canvas.ToolShape, Type: canvas.Line,
				Start: &canvas.Point{}, End: &canvas.Point{X: 5, Y: 5}},
		}}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, "face", res.Recognition.Label)
	assert.Equal(t, "openai", res.Backend)
}

func TestPrimarySuccessSkipsSecondary(t *testing.T) {
	primary := &fakeBackend{name: "openai", reply: `{"objects":[]}`}
	secondary := &fakeBackend{name: "ollama", reply: `{"objects":[]}`}
	p := New(tier(primary), tier(secondary))

	res, err := p.Run(context.Background(), Request{Mode: ModeSynthesize, Prompt: "a circle"})

	require.NoError(t, err)
	assert.Equal(t, "openai", res.Backend)
	assert.Equal(t, 1, primary.calls)
	assert.Zero(t, secondary.calls)
}

func TestInvalidPrimaryFallsBack(t *testing.T) {
	primary := &fakeBackend{name: "openai", reply: `not json at all`}
	secondary := &fakeBackend{name: "ollama", reply: `{"objects":[{"color":"#FF0000","lineWidth":2}]}`}
	p := New(tier(primary), tier(secondary))

	res, err := p.Run(context.Background(), Request{Mode: ModeSynthesize, Prompt: "a circle"})

	require.NoError(t, err)
	assert.Equal(t, "ollama", res.Backend)
	require.Len(t, res.Objects, 1)
	assert.Equal(t, "#FF0000", res.Objects[0].Color)
}

func TestUnavailablePrimaryFallsBack(t *testing.T) {
	primary := &fakeBackend{name: "openai", err: errors.New("connection refused")}
	secondary := &fakeBackend{name: "ollama", reply: `{"objects":[]}`}
	p := New(tier(primary), tier(secondary))

	res, err := p.Run(context.Background(), Request{Mode: ModeSynthesize, Prompt: "a tree"})

	require.NoError(t, err)
	assert.Equal(t, "ollama", res.Backend)
}

func TestAdditiveBothFailed(t *testing.T) {
	primary := &fakeBackend{name: "openai", err: errors.New("down")}
	secondary := &fakeBackend{name: "ollama", reply: `{"wrong":"shape"}`}
	p := New(tier(primary), tier(secondary))

	_, err := p.Run(context.Background(), Request{Mode: ModeSynthesize, Prompt: "a tree"})

	require.Error(t, err)
	assert.Equal(t, BothBackendsFailed, KindOf(err))
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestBeautifyRollback(t *testing.T) {
	primary := &fakeBackend{name: "openai", reply: `garbage`}
	secondary := &fakeBackend{name: "ollama", err: errors.New("down")}
	p := New(tier(primary), tier(secondary))
	state := strokeState()

	res, err := p.Run(context.Background(), Request{Mode: ModeBeautify, State: state})

	require.NoError(t, err)
	assert.Equal(t, "rollback", res.Backend)
	assert.Equal(t, state.Objects, res.Objects)
}

func TestStyleRollbackSkipsPostprocessing(t *testing.T) {
	primary := &fakeBackend{name: "openai", err: errors.New("down")}
	secondary := &fakeBackend{name: "ollama", err: errors.New("down")}
	p := New(tier(primary), tier(secondary))
	state := strokeState()

	res, err := p.Run(context.Background(), Request{
		Mode:      ModeStyle,
		StyleText: "Van Gogh oil painting",
		State:     state,
	})

	require.NoError(t, err)
	// Rolled-back objects come through untouched: no metadata, no overlays.
	require.Len(t, res.Objects, 1)
	assert.Nil(t, res.Objects[0].Metadata)
	assert.Equal(t, state.Objects, res.Objects)
}

func TestStylePostprocessing(t *testing.T) {
	reply := `{"objects":[{"id":"s1","color":"#FFD700","lineWidth":4,` +
		`"pathData":{"tool":"freehand","type":"stroke",` +
		`"points":[{"x":100,"y":100},{"x":200,"y":150},{"x":300,"y":100}]}}]}`
	primary := &fakeBackend{name: "openai", reply: reply}
	p := New(tier(primary))

	res, err := p.Run(context.Background(), Request{
		Mode:      ModeStyle,
		StyleText: "Van Gogh oil painting",
		State:     strokeState(),
	})

	require.NoError(t, err)
	// One restyled stroke plus two impasto overlays.
	require.Len(t, res.Objects, 3)
	require.NotNil(t, res.Objects[0].Metadata)
	assert.Equal(t, "mixed", res.Objects[0].Metadata.BrushType)
	assert.Equal(t, canvas.Stroke, res.Objects[1].PathData.Type)
	assert.Equal(t, canvas.Stroke, res.Objects[2].PathData.Type)
}

func TestCompleteMode(t *testing.T) {
	reply := `{"complete":false,"confidence":0.78,"object":{"color":"#228B22","lineWidth":3,` +
		`"pathData":{"tool":"freehand","type":"stroke","points":[{"x":1,"y":2},{"x":3,"y":4}]}}}`
	primary := &fakeBackend{name: "openai", reply: reply}
	p := New(tier(primary))

	res, err := p.Run(context.Background(), Request{Mode: ModeComplete, State: strokeState()})

	require.NoError(t, err)
	require.NotNil(t, res.Completion)
	assert.False(t, res.Completion.Complete)
	assert.Equal(t, 0.78, res.Completion.Confidence)
	require.NotNil(t, res.Completion.Object)
	assert.Equal(t, "#228B22", res.Completion.Object.Color)
}

func TestUnknownMode(t *testing.T) {
	p := New()

	_, err := p.Run(context.Background(), Request{Mode: "paint"})

	require.Error(t, err)
	assert.Equal(t, BadInput, KindOf(err))
}

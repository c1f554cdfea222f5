package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/rescanvas/assist/backend"
	"github.com/rescanvas/assist/canvas"
	"github.com/rescanvas/assist/pipeline"
)

type fakeGen struct {
	name  string
	reply string
	err   error
}

func (f *fakeGen) Name() string { return f.name }

func (f *fakeGen) Generate(ctx context.Context, messages []backend.Message, opts backend.Options) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestServer(gens ...*fakeGen) *AssistServer {
	tiers := make([]pipeline.Tier, len(gens))
	for i, g := range gens {
		tiers[i] = pipeline.Tier{Generator: g, Models: map[pipeline.Mode]string{}}
	}
	return &AssistServer{
		pipeline: pipeline.New(tiers...),
		inflight: semaphore.NewWeighted(2),
	}
}

func doJSON(t *testing.T, s *AssistServer, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)
	return w
}

func TestDrawingEndpoint(t *testing.T) {
	s := newTestServer(&fakeGen{name: "openai",
		reply: `{"objects":[{"color":"#0000FF","lineWidth":2,` +
			`"pathData":{"tool":"shape","type":"circle","start":{"x":10,"y":10},"end":{"x":20,"y":10}}}]}`})

	w := doJSON(t, s, "/api/ai_assistant/drawing",
		`{"prompt":"a small blue circle","canvasState":{"drawings":[],"bounds":{"width":800,"height":600}}}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Objects []canvas.DrawingObject `json:"objects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Objects, 1)
	assert.NotEmpty(t, resp.Objects[0].ID)
	assert.Equal(t, "#0000FF", resp.Objects[0].Color)
}

func TestDrawingMissingPrompt(t *testing.T) {
	s := newTestServer(&fakeGen{name: "openai", reply: `{"objects":[]}`})

	w := doJSON(t, s, "/api/ai_assistant/drawing", `{"canvasState":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestDrawingUpstreamFailure(t *testing.T) {
	s := newTestServer(
		&fakeGen{name: "openai", err: errors.New("down")},
		&fakeGen{name: "ollama", reply: `no json here`},
	)

	w := doJSON(t, s, "/api/ai_assistant/drawing", `{"prompt":"a tree"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "upstream_model_error")
}

func TestCompleteMissingState(t *testing.T) {
	s := newTestServer(&fakeGen{name: "openai"})

	w := doJSON(t, s, "/api/ai_assistant/complete", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBeautifyRollsBackToInput(t *testing.T) {
	s := newTestServer(
		&fakeGen{name: "openai", err: errors.New("down")},
		&fakeGen{name: "ollama", err: errors.New("down")},
	)

	body := `{"canvasState":{"width":800,"height":600,"objects":[` +
		`{"id":"keep-me","color":"#000000","lineWidth":2,` +
		`"pathData":{"tool":"shape","type":"line","start":{"x":0,"y":0},"end":{"x":10,"y":10}}}]}}`
	w := doJSON(t, s, "/api/ai_assistant/beautify", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Objects []canvas.DrawingObject `json:"objects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Objects, 1)
	assert.Equal(t, "keep-me", resp.Objects[0].ID)
}

func TestStyleRequiresPrompt(t *testing.T) {
	s := newTestServer(&fakeGen{name: "openai"})

	w := doJSON(t, s, "/api/ai_assistant/style", `{"canvasState":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "stylePrompt")
}

func TestRecognizeFastPath(t *testing.T) {
	s := newTestServer(&fakeGen{name: "openai", err: errors.New("must not be called")})

	body := `{"canvasObjects":[{"color":"#000000","lineWidth":2,` +
		`"pathData":{"tool":"shape","type":"circle","start":{"x":10,"y":10},"end":{"x":20,"y":10}}}],` +
		`"box":{"x":0,"y":0,"width":100,"height":100},"bounds":{"width":400,"height":300}}`
	w := doJSON(t, s, "/api/ai_assistant/recognize", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp pipeline.Recognition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "circle", resp.Label)
	assert.Equal(t, 0.95, resp.Confidence)
}

func TestImageEndpoint(t *testing.T) {
	s := newTestServer(&fakeGen{name: "openai"})

	w := doJSON(t, s, "/api/ai_assistant/image", `{"prompt":"a cat","width":64,"height":64}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp["imageDataUrl"], "data:image/png;base64,"))
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeGen{name: "openai"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

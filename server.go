package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/rescanvas/assist/canvas"
	"github.com/rescanvas/assist/config"
	"github.com/rescanvas/assist/imagegen"
	"github.com/rescanvas/assist/log"
	"github.com/rescanvas/assist/pipeline"
)

type AssistServer struct {
	pipeline *pipeline.Pipeline
	inflight *semaphore.Weighted
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func NewAssistServer(cfg config.Config) *AssistServer {
	maxInFlight := cfg.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = 1
	}

	return &AssistServer{
		pipeline: newPipeline(cfg),
		inflight: semaphore.NewWeighted(maxInFlight),
	}
}

func (s *AssistServer) writeError(w http.ResponseWriter, status int, code string, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Detail: detail})
}

func (s *AssistServer) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// writePipelineError maps the pipeline taxonomy onto HTTP statuses: caller
// mistakes are 400, exhausted backends are 502, anything else is 500.
func (s *AssistServer) writePipelineError(w http.ResponseWriter, err error) {
	switch pipeline.KindOf(err) {
	case pipeline.BadInput:
		s.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
	case pipeline.BothBackendsFailed:
		s.writeError(w, http.StatusBadGateway, "upstream_model_error", err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// canvasStateBody accepts both snapshot spellings the frontend uses: the
// drawing surface sends drawings+bounds, the editor sends
// width/height+objects.
type canvasStateBody struct {
	Bounds   *canvas.Bounds         `json:"bounds"`
	Width    float64                `json:"width"`
	Height   float64                `json:"height"`
	Objects  []canvas.DrawingObject `json:"objects"`
	Drawings []canvas.DrawingObject `json:"drawings"`
}

func (b *canvasStateBody) toState() canvas.State {
	state := canvas.State{Objects: b.Objects}
	if state.Objects == nil {
		state.Objects = b.Drawings
	}
	if b.Bounds != nil {
		state.Bounds = *b.Bounds
	} else {
		state.Bounds = canvas.Bounds{Width: b.Width, Height: b.Height}
	}
	return state
}

// assignIDs gives every generated object a fresh id; the frontend keys
// undo history on them. Objects that already carry one keep it.
func assignIDs(objects []canvas.DrawingObject) {
	for i := range objects {
		if objects[i].ID == "" {
			objects[i].ID = uuid.New().String()
		}
	}
}

// POST /api/ai_assistant/drawing
func (s *AssistServer) handleDrawing(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt      string          `json:"prompt"`
		CanvasState canvasStateBody `json:"canvasState"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if req.Prompt == "" {
		s.writeError(w, http.StatusBadRequest, "bad_request", "Missing or invalid 'prompt' (string).")
		return
	}

	log.Info.Println("drawing synthesis requested")
	result, err := s.pipeline.Run(r.Context(), pipeline.Request{
		Mode:   pipeline.ModeSynthesize,
		Prompt: req.Prompt,
		State:  req.CanvasState.toState(),
	})
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	assignIDs(result.Objects)
	s.writeJSON(w, map[string]interface{}{"objects": result.Objects})
}

// POST /api/ai_assistant/complete
func (s *AssistServer) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CanvasState *canvasStateBody `json:"canvasState"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CanvasState == nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", "Missing or invalid 'canvasState' (object).")
		return
	}

	log.Info.Println("shape completion requested")
	result, err := s.pipeline.Run(r.Context(), pipeline.Request{
		Mode:  pipeline.ModeComplete,
		State: req.CanvasState.toState(),
	})
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	if result.Completion.Object != nil && result.Completion.Object.ID == "" {
		result.Completion.Object.ID = uuid.New().String()
	}
	s.writeJSON(w, result.Completion)
}

// POST /api/ai_assistant/beautify
func (s *AssistServer) handleBeautify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CanvasState *canvasStateBody `json:"canvasState"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CanvasState == nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", "Missing or invalid 'canvasState' (object).")
		return
	}

	log.Info.Println("beautify requested")
	result, err := s.pipeline.Run(r.Context(), pipeline.Request{
		Mode:  pipeline.ModeBeautify,
		State: req.CanvasState.toState(),
	})
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	assignIDs(result.Objects)
	s.writeJSON(w, map[string]interface{}{"objects": result.Objects})
}

// POST /api/ai_assistant/style
func (s *AssistServer) handleStyle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CanvasState *canvasStateBody `json:"canvasState"`
		StylePrompt string           `json:"stylePrompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CanvasState == nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", "Missing or invalid 'canvasState' (object).")
		return
	}
	if req.StylePrompt == "" {
		s.writeError(w, http.StatusBadRequest, "bad_request", "Missing or invalid 'stylePrompt' (string).")
		return
	}

	log.Info.Println("style transfer requested")
	result, err := s.pipeline.Run(r.Context(), pipeline.Request{
		Mode:      pipeline.ModeStyle,
		StyleText: req.StylePrompt,
		State:     req.CanvasState.toState(),
	})
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	assignIDs(result.Objects)
	s.writeJSON(w, map[string]interface{}{"objects": result.Objects})
}

// POST /api/ai_assistant/recognize
func (s *AssistServer) handleRecognize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CanvasObjects []canvas.DrawingObject `json:"canvasObjects"`
		Objects       []canvas.DrawingObject `json:"objects"`
		Box           canvas.SelectionBox    `json:"box"`
		Bounds        canvas.Bounds          `json:"bounds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	objects := req.CanvasObjects
	if objects == nil {
		objects = req.Objects
	}

	log.Info.Println("recognition requested")
	result, err := s.pipeline.Run(r.Context(), pipeline.Request{
		Mode:      pipeline.ModeRecognize,
		Selection: req.Box,
		State:     canvas.State{Bounds: req.Bounds, Objects: objects},
	})
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	s.writeJSON(w, result.Recognition)
}

// POST /api/ai_assistant/image
func (s *AssistServer) handleImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if req.Prompt == "" {
		s.writeError(w, http.StatusBadRequest, "bad_request", "Missing or invalid 'prompt' (string).")
		return
	}

	log.Info.Println("text-to-image requested")
	dataURL, err := imagegen.Placeholder(req.Width, req.Height)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, "image_generation_failed", err.Error())
		return
	}

	s.writeJSON(w, map[string]string{"imageDataUrl": dataURL})
}

// limitInFlight bounds concurrent generation calls so a burst of requests
// cannot pile unbounded load on the backends.
func (s *AssistServer) limitInFlight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.inflight.Acquire(r.Context(), 1); err != nil {
			s.writeError(w, http.StatusServiceUnavailable, "server_busy", err.Error())
			return
		}
		defer s.inflight.Release(1)
		next.ServeHTTP(w, r)
	})
}

func (s *AssistServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/ai_assistant", func(r chi.Router) {
		r.Use(s.limitInFlight)
		r.Post("/drawing", s.handleDrawing)
		r.Post("/complete", s.handleComplete)
		r.Post("/beautify", s.handleBeautify)
		r.Post("/style", s.handleStyle)
		r.Post("/recognize", s.handleRecognize)
		r.Post("/image", s.handleImage)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

func runServerMode(cfg config.Config) {
	server := NewAssistServer(cfg)

	log.Info.Printf("listening on %s", cfg.Listen)
	if err := http.ListenAndServe(cfg.Listen, server.routes()); err != nil {
		log.Error.Fatalf("server failed: %v", err)
	}
}

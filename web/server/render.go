package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
)

// consoleBufferSize is how many log messages one render can queue for the console
const consoleBufferSize = 64

// handleRender renders a scene and responds with the PNG image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "Only GET is supported")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, sceneErrorStatus(err), err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renderSeq.Add(1))
	consoleChan := make(chan ConsoleMessage, consoleBufferSize)
	logger := NewWebLogger(renderID, consoleChan)
	defer s.console.Drain(consoleChan)

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = s.numWorkers
	config.Seed = req.Seed
	config.SamplesPerPixel = req.Samples
	config.ProgressInterval = 0

	result, err := renderer.Render(sceneObj, config, logger)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, renderer.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		writeJSONError(w, status, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result.Image()); err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Max-Depth", strconv.Itoa(result.MaxDepth))
	w.Header().Set("X-Samples-Per-Pixel", strconv.Itoa(result.SamplesPerPixel))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(result.Stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// consoleHistoryLimit bounds the number of messages kept for /api/console
const consoleHistoryLimit = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to the server log
	log.Printf("[%s] %s", wl.renderID, message)

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

// ConsoleHistory keeps the most recent console messages across renders
type ConsoleHistory struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
}

// NewConsoleHistory creates a history holding at most limit messages
func NewConsoleHistory(limit int) *ConsoleHistory {
	return &ConsoleHistory{limit: limit}
}

// Drain moves every message currently buffered in ch into the history
func (h *ConsoleHistory) Drain(ch <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-ch:
			h.Record(msg)
		default:
			return
		}
	}
}

// Record appends msg, evicting the oldest message when full
func (h *ConsoleHistory) Record(msg ConsoleMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = append(h.messages, msg)
	if over := len(h.messages) - h.limit; over > 0 {
		h.messages = append([]ConsoleMessage(nil), h.messages[over:]...)
	}
}

// Messages returns a copy of the history, optionally filtered by render ID
func (h *ConsoleHistory) Messages(renderID string) []ConsoleMessage {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]ConsoleMessage, 0, len(h.messages))
	for _, msg := range h.messages {
		if renderID == "" || msg.RenderID == renderID {
			result = append(result, msg)
		}
	}
	return result
}

// handleConsole returns recent render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	messages := s.console.Messages(r.URL.Query().Get("render"))
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(messages)
}

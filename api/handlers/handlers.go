package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/taalhuis/taalhuis/ai"
	"github.com/taalhuis/taalhuis/communication"
	"github.com/taalhuis/taalhuis/export"
	"github.com/taalhuis/taalhuis/persona"
	"github.com/taalhuis/taalhuis/registry"
)

// Exporter is the document service boundary; satisfied by export.Client.
type Exporter interface {
	Enabled() bool
	Export(ctx context.Context, title, body string) (string, error)
}

// Researcher enriches vocabulary topics with web findings; satisfied by
// ai.Researcher.
type Researcher interface {
	Enabled() bool
	Research(topic string) ([]ai.SearchResult, error)
}

// Handler carries the wired dependencies for all lesson endpoints.
type Handler struct {
	Registry  *registry.Registry
	Exporter  Exporter
	Research  Researcher
	Messenger *communication.Messenger
	Timeout   time.Duration
}

// LessonRequest is the body of POST /api/lessons/:persona.
type LessonRequest struct {
	Input  string `json:"input"`
	Export bool   `json:"export"`
	Title  string `json:"title"`
}

// ListPersonas returns the persona metadata the UI renders its actions from.
func (h *Handler) ListPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"personas": h.Registry.Personas()})
}

// RunLesson runs one agent for one user action: build the lesson, then
// optionally export it. Export failure never hides the lesson text.
func (h *Handler) RunLesson(c *gin.Context) {
	key := persona.Key(c.Param("persona"))
	agentInstance, ok := h.Registry.Get(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Unknown persona %q", key)})
		return
	}

	var req LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson request"})
		return
	}

	lessonID := uuid.New().String()
	h.notify(communication.EventLessonStarted, gin.H{"lessonId": lessonID, "persona": key})

	ctx := c.Request.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	text, err := agentInstance.Run(ctx, h.enrichInput(key, req.Input))
	if err != nil {
		h.notify(communication.EventLessonFailed, gin.H{
			"lessonId": lessonID,
			"persona":  key,
			"error":    err.Error(),
		})
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	response := gin.H{
		"lessonId": lessonID,
		"persona":  key,
		"text":     text,
	}

	if req.Export {
		docID, exportErr := h.exportLesson(ctx, agentInstance.Persona(), req.Title, text)
		if exportErr != nil {
			log.Printf("Export failed for lesson %s: %v", lessonID, exportErr)
			response["exportError"] = exportErr.Error()
			h.notify(communication.EventExportFailed, gin.H{"lessonId": lessonID, "error": exportErr.Error()})
		} else {
			response["documentId"] = docID
			h.notify(communication.EventExportDone, gin.H{"lessonId": lessonID, "documentId": docID})
		}
	}

	h.notify(communication.EventLessonReady, gin.H{"lessonId": lessonID, "persona": key})
	c.JSON(http.StatusOK, response)
}

// enrichInput appends web research to vocabulary topics when a SerpApi key
// is configured. The learner's own words stay verbatim at the front.
func (h *Handler) enrichInput(key persona.Key, input string) string {
	if key != persona.Vocabulary || h.Research == nil || !h.Research.Enabled() {
		return input
	}
	topic := strings.TrimSpace(input)
	if topic == "" {
		return input
	}

	results, err := h.Research.Research(topic)
	if err != nil {
		log.Printf("Topic research failed, continuing without it: %v", err)
		return input
	}
	if researchContext := ai.ResearchContext(results); researchContext != "" {
		return input + "\n\n" + researchContext
	}
	return input
}

func (h *Handler) exportLesson(ctx context.Context, p persona.Persona, title, body string) (string, error) {
	if h.Exporter == nil {
		return "", fmt.Errorf("no document service configured: %w", export.ErrExport)
	}
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("Dutch lesson - %s - %s", p.Name, time.Now().Format("2006-01-02"))
	}
	return h.Exporter.Export(ctx, title, body)
}

// notify publishes a lifecycle event. With NATS wired, the websocket bridge
// handles local fan-out; without it, the hub is fed directly.
func (h *Handler) notify(eventType string, payload interface{}) {
	if h.Messenger != nil {
		h.Messenger.PublishEvent(eventType, payload)
		return
	}
	communication.BroadcastEvent(eventType, payload)
}

// statusForError maps the completion error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ai.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ai.ErrRateLimit):
		return http.StatusTooManyRequests
	case errors.Is(err, ai.ErrTransient):
		return http.StatusBadGateway
	case errors.Is(err, ai.ErrModel):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

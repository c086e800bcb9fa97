package summarize

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meetingnotes-backend/internal/documents"
	"meetingnotes-backend/internal/llm"
	"meetingnotes-backend/internal/shared/metrics"
	"meetingnotes-backend/internal/shared/server/middleware"
	"meetingnotes-backend/internal/shared/server/respond"
)

const minTranscriptLength = 10

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches summarization routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/summarize", h.summarize)
}

type summarizeRequest struct {
	DocumentID  string `json:"documentId"`
	Transcript  string `json:"transcript"`
	Instruction string `json:"instruction"`
}

func (h *Handler) summarize(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if strings.TrimSpace(req.Transcript) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Transcript content is required", nil)
		return
	}
	if len(req.Transcript) < minTranscriptLength {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Transcript is too short to summarize", nil)
		return
	}

	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		instruction = DefaultInstruction
	}

	if req.DocumentID != "" {
		c.Set("documentId", req.DocumentID)
	}

	metrics.IncSummaryStarted()
	started := metrics.NowMillis()

	summary, err := h.Svc.Summarize(c.Request.Context(), userID, req.DocumentID, req.Transcript, instruction)
	metrics.ObserveSummaryDurationMs(metrics.NowMillis() - started)
	if err != nil {
		metrics.IncSummaryFailed()
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Document not found", nil)
		case errors.Is(err, llm.ErrQuotaExceeded):
			respond.Error(c, http.StatusTooManyRequests, "quota_exceeded", "API quota exceeded. Please try again later.", nil)
		case errors.Is(err, llm.ErrContentRejected):
			respond.Error(c, http.StatusBadRequest, "content_rejected", "Content was blocked due to safety concerns. Please review your transcript.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "generation_failed", "Failed to generate summary. Please try again.", nil)
		}
		return
	}

	metrics.IncSummaryCompleted()
	respond.OK(c, gin.H{
		"success":    true,
		"summary":    summary,
		"documentId": req.DocumentID,
	})
}

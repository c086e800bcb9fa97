package mailer

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meetingnotes-backend/internal/shared/metrics"
	"meetingnotes-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches email routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-email", h.send)
}

type sendRequest struct {
	Emails       []string `json:"emails"`
	Summary      string   `json:"summary"`
	Subject      string   `json:"subject"`
	MeetingTitle string   `json:"meetingTitle"`
}

func (h *Handler) send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if len(req.Emails) == 0 || strings.TrimSpace(req.Summary) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Email addresses and summary are required", nil)
		return
	}

	recipients, err := h.Svc.SendSummary(c.Request.Context(), req.Emails, req.Subject, req.MeetingTitle, req.Summary)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoRecipients),
			errors.Is(err, ErrInvalidRecipient),
			errors.Is(err, ErrTooManyRecipients):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "email_not_configured", "Email configuration is missing. Please contact administrator.", nil)
		default:
			metrics.IncEmailFailed()
			respond.Error(c, http.StatusInternalServerError, "email_failed", "Failed to send email. Please try again.", nil)
		}
		return
	}

	metrics.IncEmailSent()
	respond.OK(c, gin.H{
		"success":    true,
		"message":    fmt.Sprintf("Summary sent successfully to %d recipient(s)", len(recipients)),
		"recipients": recipients,
	})
}

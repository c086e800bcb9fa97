package summarize

import (
	"context"
	"errors"

	"meetingnotes-backend/internal/documents"
	"meetingnotes-backend/internal/shared/telemetry"
)

// Service generates summaries and persists them on the owning document.
type Service struct {
	Engine *Engine
	Docs   *documents.Service
}

// Summarize runs the engine and, when documentID is set, stores the result on
// that document. A persistence failure other than an unknown document does
// not void the generated summary; the document keeps its last good state.
func (s *Service) Summarize(ctx context.Context, userId, documentID, transcript, instruction string) (string, error) {
	summary, err := s.Engine.Summarize(ctx, transcript, instruction)
	if err != nil {
		return "", err
	}

	if documentID != "" {
		if _, err := s.Docs.UpdateSummary(ctx, userId, documentID, summary); err != nil {
			if errors.Is(err, documents.ErrNotFound) {
				return "", err
			}
			telemetry.Error("summarize.persist_failed", map[string]any{
				"document_id": documentID,
				"err":         err.Error(),
			})
		}
	}

	return summary, nil
}

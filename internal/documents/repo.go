package documents

import (
	"context"
	"time"
)

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, userId, documentID string) (Document, error)
	UpdateSummary(ctx context.Context, userId, documentID, summary string, generatedAt time.Time) (Document, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Document, error)
}

package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"meetingnotes-backend/internal/extract"
	"meetingnotes-backend/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store         object.ObjectStore
	StoreProvider string
	Repo          Repo
}

var allowedMimeTypes = map[string]struct{}{
	"text/plain": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Upload extracts text from the payload, retains the raw file in object
// storage and records the document with its content.
func (s *Service) Upload(ctx context.Context, userId, fileName, declaredType string, data []byte) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if len(data) == 0 {
		return Document{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if !isAllowedType(declaredType, fileName) {
		return Document{}, fmt.Errorf("%w: only .txt and .docx files are accepted", ErrInvalidInput)
	}

	text, err := extract.TextFromBytes(ctx, data, declaredType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return Document{}, fmt.Errorf("%w: only .txt and .docx files are accepted", ErrInvalidInput)
		}
		return Document{}, fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return Document{}, ErrEmptyDocument
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, userId, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("store file: %w", err)
	}
	if declaredType != "" {
		mimeType = declaredType
	}

	doc := Document{
		ID:               uuid.NewString(),
		UserID:           userId,
		FileName:         fileName,
		OriginalFilename: fileName,
		MimeType:         mimeType,
		SizeBytes:        int64(len(data)),
		Content:          text,
		StorageProvider:  s.StoreProvider,
		StorageKey:       storageKey,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Get returns a document owned by the user.
func (s *Service) Get(ctx context.Context, userId, documentID string) (Document, error) {
	if userId == "" || documentID == "" {
		return Document{}, fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userId, documentID)
}

// UpdateSummary replaces the stored summary, stamping the generation time.
func (s *Service) UpdateSummary(ctx context.Context, userId, documentID, summary string) (Document, error) {
	if userId == "" || documentID == "" {
		return Document{}, fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(summary) == "" {
		return Document{}, fmt.Errorf("%w: summary is required", ErrInvalidInput)
	}
	return s.Repo.UpdateSummary(ctx, userId, documentID, summary, time.Now().UTC())
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Document, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}

func isAllowedType(declaredType, fileName string) bool {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(declaredType, ";")[0]))
	if _, ok := allowedMimeTypes[clean]; ok {
		return true
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".docx":
		return true
	}
	return false
}

package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func documentRows(doc Document) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "file_name", "original_filename", "mime_type", "size_bytes",
		"content", "storage_provider", "storage_key", "summary", "summary_generated_at", "created_at",
	})
	var summary any
	if doc.Summary != "" {
		summary = doc.Summary
	}
	var generatedAt any
	if doc.SummaryGeneratedAt != nil {
		generatedAt = *doc.SummaryGeneratedAt
	}
	rows.AddRow(
		doc.ID, doc.UserID, doc.FileName, doc.OriginalFilename, doc.MimeType, doc.SizeBytes,
		doc.Content, doc.StorageProvider, doc.StorageKey, summary, generatedAt, doc.CreatedAt,
	)
	return rows
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := Document{
		ID:               "doc-1",
		UserID:           "user-1",
		FileName:         "sync.txt",
		OriginalFilename: "sync.txt",
		MimeType:         "text/plain",
		SizeBytes:        42,
		Content:          "transcript",
		StorageProvider:  "local",
		StorageKey:       "abc/sync.txt",
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID,
			doc.UserID,
			doc.FileName,
			doc.OriginalFilename,
			doc.MimeType,
			doc.SizeBytes,
			doc.Content,
			doc.StorageProvider,
			sqlmock.AnyArg(), // storage_key nullable
			doc.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateSummaryReturnsUpdatedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	generatedAt := time.Now().UTC()
	stored := Document{
		ID:                 "doc-1",
		UserID:             "user-1",
		FileName:           "sync.txt",
		OriginalFilename:   "sync.txt",
		MimeType:           "text/plain",
		SizeBytes:          42,
		Content:            "transcript",
		StorageProvider:    "local",
		Summary:            "new summary",
		SummaryGeneratedAt: &generatedAt,
		CreatedAt:          time.Now().UTC(),
	}

	mock.ExpectQuery("UPDATE documents").
		WithArgs("user-1", "doc-1", "new summary", generatedAt).
		WillReturnRows(documentRows(stored))

	doc, err := repo.UpdateSummary(context.Background(), "user-1", "doc-1", "new summary", generatedAt)
	if err != nil {
		t.Fatalf("UpdateSummary: %v", err)
	}
	if doc.Summary != "new summary" {
		t.Fatalf("unexpected summary: %q", doc.Summary)
	}
	if doc.SummaryGeneratedAt == nil || !doc.SummaryGeneratedAt.Equal(generatedAt) {
		t.Fatalf("unexpected summaryGeneratedAt: %v", doc.SummaryGeneratedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

package documents

import "time"

// Document represents an uploaded transcript owned by a user, together with
// its summary lifecycle. Summary and SummaryGeneratedAt are absent until a
// summarization completes and are always written together.
type Document struct {
	ID                 string
	UserID             string
	FileName           string
	OriginalFilename   string
	MimeType           string
	SizeBytes          int64
	Content            string
	StorageProvider    string
	StorageKey         string
	Summary            string
	SummaryGeneratedAt *time.Time
	CreatedAt          time.Time
}

package documents

import "time"

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	Success     bool   `json:"success"`
	DocumentID  string `json:"documentId"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	TextContent string `json:"textContent"`
}

// DocumentView is the outward-facing representation of a document.
type DocumentView struct {
	ID                 string     `json:"id"`
	FileName           string     `json:"fileName"`
	TextContent        string     `json:"textContent"`
	Summary            string     `json:"summary,omitempty"`
	UploadedAt         time.Time  `json:"uploadedAt"`
	SummaryGeneratedAt *time.Time `json:"summaryGeneratedAt,omitempty"`
}

// DocumentListItem summarizes a document for history listings.
type DocumentListItem struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
	HasSummary bool      `json:"hasSummary"`
}

func toUploadResponse(doc Document) UploadResponse {
	return UploadResponse{
		Success:     true,
		DocumentID:  doc.ID,
		FileName:    doc.OriginalFilename,
		FileSize:    doc.SizeBytes,
		TextContent: doc.Content,
	}
}

func toView(doc Document) DocumentView {
	return DocumentView{
		ID:                 doc.ID,
		FileName:           doc.OriginalFilename,
		TextContent:        doc.Content,
		Summary:            doc.Summary,
		UploadedAt:         doc.CreatedAt,
		SummaryGeneratedAt: doc.SummaryGeneratedAt,
	}
}

func toListItem(doc Document) DocumentListItem {
	return DocumentListItem{
		ID:         doc.ID,
		FileName:   doc.OriginalFilename,
		SizeBytes:  doc.SizeBytes,
		UploadedAt: doc.CreatedAt,
		HasSummary: doc.Summary != "",
	}
}

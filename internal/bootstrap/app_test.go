package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"meetingnotes-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *App {
	t.Helper()
	app, err := Build(config.Config{
		Env:             "test",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		CORSAllowOrigin: []string{"http://localhost:3000"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return app
}

func multipartUpload(t *testing.T, fileName, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHealthEndpointNeedsNoIdentity(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUploadEditSummaryRoundTrip(t *testing.T) {
	app := buildTestApp(t)

	body, contentType := multipartUpload(t, "standup.txt", "text/plain",
		"Standup transcript: yesterday we shipped, today we review, no blockers.")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Guest-Id", "roundtrip-guest")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("upload expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode upload: %v", err)
	}

	patchBody, _ := json.Marshal(map[string]string{"summary": "Shipped; reviewing today."})
	patchReq := httptest.NewRequest(http.MethodPatch, "/api/v1/documents/"+created.DocumentID, bytes.NewReader(patchBody))
	patchReq.Header.Set("Content-Type", "application/json")
	patchReq.Header.Set("X-Guest-Id", "roundtrip-guest")
	patchResp := httptest.NewRecorder()
	app.Router.ServeHTTP(patchResp, patchReq)

	if patchResp.Code != http.StatusOK {
		t.Fatalf("patch expected 200, got %d: %s", patchResp.Code, patchResp.Body.String())
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+created.DocumentID, nil)
	getReq.Header.Set("X-Guest-Id", "roundtrip-guest")
	getResp := httptest.NewRecorder()
	app.Router.ServeHTTP(getResp, getReq)

	if getResp.Code != http.StatusOK {
		t.Fatalf("get expected 200, got %d: %s", getResp.Code, getResp.Body.String())
	}
	var fetched struct {
		Document struct {
			Summary            string  `json:"summary"`
			SummaryGeneratedAt *string `json:"summaryGeneratedAt"`
		} `json:"document"`
	}
	if err := json.NewDecoder(getResp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if fetched.Document.Summary != "Shipped; reviewing today." {
		t.Fatalf("unexpected summary: %q", fetched.Document.Summary)
	}
	if fetched.Document.SummaryGeneratedAt == nil {
		t.Fatal("expected summaryGeneratedAt after edit")
	}
}

func TestSummarizeWithoutProviderFails(t *testing.T) {
	app := buildTestApp(t)

	body, _ := json.Marshal(map[string]string{
		"transcript": "a transcript long enough to summarize",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "no-provider-guest")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without a provider, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Error.Code != "generation_failed" {
		t.Fatalf("expected generation_failed code, got %q", out.Error.Code)
	}
}

func TestRequestsWithoutIdentityRejected(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", resp.Code)
	}
}

package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func multipartLogoRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write(content)
	mw.Close()

	req := httptest.NewRequest("POST", "/api/templates/1/logo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadLogoRejectsNonMultipart(t *testing.T) {
	h := NewAssetHandler(nil, nil)
	req := httptest.NewRequest("POST", "/api/templates/1/logo", strings.NewReader("plain body"))
	rec := httptest.NewRecorder()

	h.UploadLogo(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadLogoRequiresLogoField(t *testing.T) {
	h := NewAssetHandler(nil, nil)
	req := multipartLogoRequest(t, "attachment", "logo.png", []byte{0x89, 'P', 'N', 'G'})
	rec := httptest.NewRecorder()

	h.UploadLogo(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing logo file") {
		t.Errorf("body = %q, want missing-file message", rec.Body.String())
	}
}

func TestUploadLogoRejectsNonImage(t *testing.T) {
	h := NewAssetHandler(nil, nil)
	req := multipartLogoRequest(t, "logo", "logo.txt", []byte("definitely not image bytes"))
	rec := httptest.NewRecorder()

	h.UploadLogo(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "PNG or JPEG") {
		t.Errorf("body = %q, want image-type message", rec.Body.String())
	}
}

func TestUploadLogoRejectsEmptyFile(t *testing.T) {
	h := NewAssetHandler(nil, nil)
	req := multipartLogoRequest(t, "logo", "logo.png", nil)
	rec := httptest.NewRecorder()

	h.UploadLogo(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

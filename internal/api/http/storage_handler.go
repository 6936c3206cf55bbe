package http

import (
	"io"
	"net/http"
	"path/filepath"

	"savannacars-backend/internal/storage"

	"github.com/gorilla/mux"
)

// DocumentUploadHandler serves the mock storage presigned URLs: KYC
// documents and fleet photos land here when storage type is "mock".
type DocumentUploadHandler struct {
	mockStorage *storage.MockStorageService
}

func NewDocumentUploadHandler(mockStorage *storage.MockStorageService) *DocumentUploadHandler {
	return &DocumentUploadHandler{mockStorage: mockStorage}
}

func (h *DocumentUploadHandler) HandleMockUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "application/pdf", "application/octet-stream":
	default:
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	if err := h.mockStorage.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	// Mimic an object store response.
	w.Header().Set("ETag", `"mock-etag-success"`)
	w.WriteHeader(http.StatusOK)
}

func (h *DocumentUploadHandler) HandleMockDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.mockStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".pdf":
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=300")
	io.Copy(w, file)
}

// RegisterMockStorageRoutes registers the mock storage HTTP endpoints.
func RegisterMockStorageRoutes(router *mux.Router, mockStorage *storage.MockStorageService) {
	handler := NewDocumentUploadHandler(mockStorage)
	router.HandleFunc("/api/v1/upload/{token}", handler.HandleMockUpload).Methods("PUT")
	router.HandleFunc("/api/v1/download/{key}", handler.HandleMockDownload).Methods("GET")
}

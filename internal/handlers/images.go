package handlers

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/partshub/apiserver/internal/storage"
)

const (
	maxImageMemory = 16 << 20
	maxImageBytes  = 32 << 20
	formFieldImage = "image"
)

// ImageHandler uploads and serves storefront images from object
// storage. Products and sliders reference the returned URLs.
type ImageHandler struct {
	store storage.ObjectStorage
}

func NewImageHandler(store storage.ObjectStorage) *ImageHandler {
	return &ImageHandler{store: store}
}

// ImageRouter registers image routes. Only mounted when an object
// storage backend is configured.
func ImageRouter(r chi.Router, store storage.ObjectStorage) {
	handler := NewImageHandler(store)

	r.Post("/upload", handler.Upload)
	r.Get("/{key}", handler.Get)
}

// UploadResponse carries the stored object's key and a server-relative
// URL the admin UI can paste into image fields.
type UploadResponse struct {
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
}

func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File[formFieldImage]) == 0 {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	fileHeader := r.MultipartForm.File[formFieldImage][0]

	file, err := fileHeader.Open()
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image file")
		return
	}
	data, err := readFileLimited(file, maxImageBytes)
	_ = file.Close()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	key := newObjectKey() + strings.ToLower(path.Ext(fileHeader.Filename))
	if err := h.store.Put(r.Context(), key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	writeJSON(w, http.StatusCreated, UploadResponse{
		ObjectKey: key,
		URL:       fmt.Sprintf("/images/%s", key),
	})
}

func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if strings.TrimSpace(key) == "" || strings.Contains(key, "/") {
		writeError(w, http.StatusBadRequest, "invalid key")
		return
	}

	reader, err := h.store.Get(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusNotFound, "Image is not found")
		return
	}
	defer reader.Close()

	if _, err := io.Copy(w, reader); err != nil {
		// Headers already went out; nothing left to report to the client.
		return
	}
}

func readFileLimited(reader io.Reader, limit int64) ([]byte, error) {
	limited := io.LimitReader(reader, limit+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, errors.New("failed to read upload")
	}
	if int64(len(data)) > limit {
		return nil, errors.New("uploaded file too large")
	}
	return data, nil
}

func newObjectKey() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "image"
	}
	return hex.EncodeToString(buf[:])
}

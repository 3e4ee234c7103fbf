package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 5 MiB is plenty for a web-sized dog photo.
const maxUploadBytes = 5 << 20

var allowedPhotoExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadPhoto accepts a multipart "file" field, stores it under a fresh
// key, and returns the public URL to reference from a dog record.
func (a *App) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "missing file upload")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPhotoExt[ext] {
		a.error(w, http.StatusBadRequest, "validation", "Photo must be a JPEG, PNG, or WebP image")
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "failed to read upload")
		return
	}

	key := "dogs/" + uuid.NewString() + ext
	if _, err := a.Store.Write(r.Context(), key, data); err != nil {
		a.Logger.Error().Err(err).Str("key", key).Msg("photo write failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to store photo")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"key": key,
		"url": a.StorageBaseURL + "/" + key,
	})
}

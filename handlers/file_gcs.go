package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/storage"
)

// UploadSignatureGCS stores a signature image in the configured Cloud
// Storage bucket and returns its public URL.
func UploadSignatureGCS(w http.ResponseWriter, r *http.Request) {
	bucketName := os.Getenv("GCS_BUCKET")
	if bucketName == "" {
		respondError(w, http.StatusInternalServerError, "GCS_BUCKET is not configured")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field: "+err.Error())
		return
	}
	defer file.Close()

	ctx := r.Context()
	client, err := storage.NewClient(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "storage client: "+err.Error())
		return
	}
	defer client.Close()

	objectName := fmt.Sprintf("signatures/%s-%s",
		time.Now().Format("20060102-150405"), sanitizeFilename(header.Filename))

	wc := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = header.Header.Get("Content-Type")
	if _, err := io.Copy(wc, file); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to upload: "+err.Error())
		return
	}
	if err := wc.Close(); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to finalize upload: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"url":      fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectName),
		"filename": objectName,
	})
}

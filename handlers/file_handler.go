package handlers

import (
	"net/http"
	"os"
)

// UploadSignature routes a signature image upload to the appropriate
// backend: Cloud Storage in production, the local disk in development.
func UploadSignature(w http.ResponseWriter, r *http.Request) {
	useGCS := os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != "" // Cloud Run indicator

	if useGCS {
		UploadSignatureGCS(w, r)
	} else {
		UploadSignatureLocal(w, r)
	}
}

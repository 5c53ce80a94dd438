package handler

import (
	"net/http"
	"strconv"
)

type blobResponse struct {
	contentType string
	data        []byte
}

func (b blobResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", b.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.data)))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b.data)
	return err
}

// Blob creates a 200 response with raw bytes of the given content type.
//
// Example:
//
//	png, err := renderer.Render(ctx, token)
//	if err != nil {
//		return handler.JSONError(err)
//	}
//	return handler.Blob("image/png", png)
func Blob(contentType string, data []byte) Response {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return blobResponse{contentType: contentType, data: data}
}

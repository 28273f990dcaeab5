package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mandhitown/backend/internal/service"
	"github.com/mandhitown/backend/internal/store"
)

// respondError maps the service error taxonomy onto distinct client
// statuses. Anything unrecognized is a server error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, store.ErrDuplicateEmail):
		status = http.StatusConflict
	case errors.Is(err, service.ErrUploaderNotConfigured):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// formAttachments reads the uploaded files of a multipart field into
// memory.
func formAttachments(files []*multipart.FileHeader) ([]service.Attachment, error) {
	attachments := make([]service.Attachment, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, service.Attachment{Filename: fh.Filename, Data: data})
	}
	return attachments, nil
}

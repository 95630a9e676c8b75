package handlers

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veraroam/ambassador-backend/internal/apierr"
)

// formFile pulls an optional uploaded file out of a multipart form.
// A missing field is not an error; the caller decides whether the
// entity requires an asset.
func formFile(c *gin.Context, field string) (io.Reader, string, func()) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, "", func() {}
	}
	return file, header.Header.Get("Content-Type"), func() { _ = file.Close() }
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

func parseID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apierr.InvalidRequest("invalid id")
	}
	return id, nil
}

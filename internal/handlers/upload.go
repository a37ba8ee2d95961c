package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/marqueai/internal/httperr"
)

// formFile opens the multipart "file" field, capped at maxUploadBytes.
func formFile(c *gin.Context) (multipart.File, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie uma imagem no campo \"file\".")
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", messageFor("invalid_image"))
		return nil, false
	}
	return file, true
}

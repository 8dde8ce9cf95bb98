package handlers

import (
	"net/http"

	"couponscan/internal/utils"
	"couponscan/pkg/logger"
	"couponscan/pkg/storage"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	provider storage.Provider
	maxBytes int64
	logger   *logger.Logger
}

func NewUploadHandler(provider storage.Provider, maxBytes int64, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{provider: provider, maxBytes: maxBytes, logger: logger}
}

// UploadImage stores the multipart "file" field and answers with its URL as
// plain text.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile(utils.UploadFormField)
	if err != nil {
		utils.BadRequestResponse(c, "File is required")
		return
	}
	if !utils.IsImageFile(header.Filename) {
		utils.BadRequestResponse(c, "Only JPG and PNG images are accepted")
		return
	}
	if header.Size > h.maxBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "File is too large")
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	resp, err := h.provider.Upload(ctx, &storage.UploadRequest{
		Key:          "bills/" + utils.GenerateUniqueFilename(header.Filename),
		Reader:       file,
		ContentType:  utils.GetContentType(header.Filename),
		Size:         header.Size,
		CacheControl: "public, max-age=31536000",
	})
	if err != nil {
		h.logger.WithContext(ctx).WithError(err).Error("Failed to store upload")
		utils.InternalServerErrorResponse(c)
		return
	}

	h.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"key":  resp.Key,
		"size": resp.Size,
	}).Info("Image stored")
	c.String(http.StatusOK, "%s", resp.URL)
}

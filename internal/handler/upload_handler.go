package handler

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ebegrace/zion-academy-api/internal/dto"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
	"github.com/ebegrace/zion-academy-api/pkg/response"
	"github.com/ebegrace/zion-academy-api/pkg/storage"
)

// UploadHandler stores multipart file uploads on local disk.
type UploadHandler struct {
	storage  *storage.LocalStorage
	maxBytes int64
	logger   *zap.Logger
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(store *storage.LocalStorage, maxBytes int64, logger *zap.Logger) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadHandler{storage: store, maxBytes: maxBytes, logger: logger}
}

// Upload godoc
// @Summary Upload a file
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File, at most 5 MiB"
// @Success 200 {object} response.Envelope
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "no file uploaded"))
		return
	}

	if fileHeader.Size > h.maxBytes {
		response.Error(c, appErrors.Clone(appErrors.ErrPayloadTooLarge, "file exceeds the upload size limit"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open upload"))
		return
	}
	defer src.Close() //nolint:errcheck

	stored := storage.UniqueName(fileHeader.Filename)
	if _, err := h.storage.SaveStream(stored, src); err != nil {
		h.logger.Error("upload failed", zap.String("file", fileHeader.Filename), zap.Error(err))
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "file upload failed"))
		return
	}

	response.JSON(c, http.StatusOK, dto.UploadResult{
		Success:  true,
		FilePath: path.Join("/uploads", stored),
		FileName: fileHeader.Filename,
	}, nil)
}

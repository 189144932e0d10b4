package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ebegrace/zion-academy-api/internal/dto"
	"github.com/ebegrace/zion-academy-api/internal/models"
	"github.com/ebegrace/zion-academy-api/internal/service"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
	"github.com/ebegrace/zion-academy-api/pkg/response"
)

type noticeService interface {
	Create(ctx context.Context, input service.CreateNoticeInput) (*models.Notice, error)
	Feed(ctx context.Context) ([]models.Notice, error)
	Delete(ctx context.Context, id int) error
}

type exportService interface {
	Generate(ctx context.Context, category string) (*dto.ExportResult, error)
}

// NoticeHandler exposes the notice board endpoints.
type NoticeHandler struct {
	notices noticeService
	exports exportService
}

// NewNoticeHandler constructs NoticeHandler.
func NewNoticeHandler(notices noticeService, exports exportService) *NoticeHandler {
	return &NoticeHandler{notices: notices, exports: exports}
}

// Feed godoc
// @Summary Full notice feed in stored order
// @Tags Notices
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notices [get]
func (h *NoticeHandler) Feed(c *gin.Context) {
	notices, err := h.notices.Feed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notices, nil)
}

// Board godoc
// @Summary Public notice grid for a category filter
// @Tags Notices
// @Produce json
// @Param category query string false "Category filter, All by default"
// @Success 200 {object} response.Envelope
// @Router /notices/board [get]
func (h *NoticeHandler) Board(c *gin.Context) {
	notices, err := h.notices.Feed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	category := c.DefaultQuery("category", models.CategoryAll)
	response.JSON(c, http.StatusOK, service.BuildGrid(notices, category, time.Now()), nil)
}

// Ticker godoc
// @Summary Top-of-page ticker strip
// @Tags Notices
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notices/ticker [get]
func (h *NoticeHandler) Ticker(c *gin.Context) {
	notices, err := h.notices.Feed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, service.BuildTicker(notices), nil)
}

// Manage godoc
// @Summary Management list, newest first
// @Tags Notices
// @Produce json
// @Param category query string false "Category filter, All by default"
// @Success 200 {object} response.Envelope
// @Router /notices/manage [get]
func (h *NoticeHandler) Manage(c *gin.Context) {
	notices, err := h.notices.Feed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	category := c.DefaultQuery("category", models.CategoryAll)
	response.JSON(c, http.StatusOK, service.BuildManagementList(notices, category, time.Now()), nil)
}

// Create godoc
// @Summary Post a notice
// @Tags Notices
// @Accept json
// @Produce json
// @Param payload body dto.CreateNoticeRequest true "Notice payload"
// @Success 201 {object} response.Envelope
// @Router /notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	input := service.CreateNoticeInput{
		Title:    req.Title,
		Message:  req.Message,
		Class:    req.Class,
		Category: req.Category,
		Image:    req.Image,
	}
	if claims := claimsFromContext(c); claims != nil {
		input.PostedBy = claims.Name
	}
	if req.Expiry != "" {
		expiry, err := time.Parse("2006-01-02", req.Expiry)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "expiry must be formatted YYYY-MM-DD"))
			return
		}
		input.Expiry = &expiry
	}

	notice, err := h.notices.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, notice)
}

// Delete godoc
// @Summary Delete a notice by id
// @Tags Notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 204 {object} nil
// @Router /notices/{id} [delete]
func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "notice id must be an integer"))
		return
	}
	if err := h.notices.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export the visible notices as a PDF document
// @Tags Notices
// @Produce json
// @Param category query string false "Category filter, All by default"
// @Success 200 {object} response.Envelope
// @Router /notices/export [post]
func (h *NoticeHandler) Export(c *gin.Context) {
	category := c.DefaultQuery("category", models.CategoryAll)
	result, err := h.exports.Generate(c.Request.Context(), category)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

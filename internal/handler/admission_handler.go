package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ebegrace/zion-academy-api/internal/dto"
	"github.com/ebegrace/zion-academy-api/internal/models"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
	"github.com/ebegrace/zion-academy-api/pkg/response"
)

type admissionService interface {
	Submit(ctx context.Context, req dto.SubmitApplicationRequest) (*models.Application, error)
	List(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error)
	Accept(ctx context.Context, id string) (*dto.AcceptResult, error)
}

// AdmissionHandler exposes the admissions endpoints.
type AdmissionHandler struct {
	admissions admissionService
}

// NewAdmissionHandler constructs AdmissionHandler.
func NewAdmissionHandler(admissions admissionService) *AdmissionHandler {
	return &AdmissionHandler{admissions: admissions}
}

// Submit godoc
// @Summary Submit an admission application
// @Tags Admissions
// @Accept json
// @Produce json
// @Param payload body dto.SubmitApplicationRequest true "Application payload"
// @Success 201 {object} response.Envelope
// @Router /applications [post]
func (h *AdmissionHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	application, err := h.admissions.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, application)
}

// List godoc
// @Summary List applications for admin review
// @Tags Admissions
// @Produce json
// @Param status query string false "Status filter, Pending by default"
// @Success 200 {object} response.Envelope
// @Router /applications [get]
func (h *AdmissionHandler) List(c *gin.Context) {
	status := models.ApplicationStatus(c.DefaultQuery("status", string(models.ApplicationPending)))
	applications, err := h.admissions.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, applications, nil)
}

// Accept godoc
// @Summary Accept a pending application and enroll the student
// @Tags Admissions
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Envelope
// @Router /applications/{id}/accept [post]
func (h *AdmissionHandler) Accept(c *gin.Context) {
	result, err := h.admissions.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

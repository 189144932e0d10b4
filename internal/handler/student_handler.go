package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ebegrace/zion-academy-api/internal/models"
	"github.com/ebegrace/zion-academy-api/pkg/response"
)

type studentService interface {
	List(ctx context.Context) ([]models.Student, error)
}

// StudentHandler serves the enrolled-student roster.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List enrolled students
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}

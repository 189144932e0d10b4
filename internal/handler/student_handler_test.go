package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebegrace/zion-academy-api/internal/models"
)

type studentServiceMock struct {
	students []models.Student
	err      error
}

func (m *studentServiceMock) List(ctx context.Context) ([]models.Student, error) {
	return m.students, m.err
}

func TestStudentHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &studentServiceMock{students: []models.Student{{ID: "EZ123456", Name: "Ama Mensah", Level: models.LevelPrimary}}}
	handler := NewStudentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/students", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EZ123456")
}

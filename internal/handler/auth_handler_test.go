package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebegrace/zion-academy-api/internal/models"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
)

type authServiceMock struct {
	resp *models.LoginResponse
	err  error
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return m.resp, m.err
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &authServiceMock{resp: &models.LoginResponse{AccessToken: "token-123", User: models.UserInfo{Email: "admin@ebegracezion.edu.gh"}}}
	handler := NewAuthHandler(mockSvc)

	payload, _ := json.Marshal(models.LoginRequest{Email: "admin@ebegracezion.edu.gh", Password: "secret123"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token-123")
}

func TestAuthHandlerLoginRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{err: appErrors.ErrInvalidCredentials})

	payload, _ := json.Marshal(models.LoginRequest{Email: "admin@ebegracezion.edu.gh", Password: "wrong"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerLoginInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

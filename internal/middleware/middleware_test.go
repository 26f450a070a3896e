package middleware

import (
	"autoOpsAI/domain"
	jsonres "autoOpsAI/pkg/response"
	"autoOpsAI/pkg/utils"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/open", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.POST("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("user_id").(string))
	}, AuthMiddleware(testSecret))
	e.PUT("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, AuthMiddleware(testSecret), AdminOnly())
	e.GET("/fail/:kind", func(c echo.Context) error {
		switch c.Param("kind") {
		case "missing":
			return fmt.Errorf("action x: %w", domain.ErrNotFound)
		case "transition":
			return fmt.Errorf("wrap: %w", domain.ErrInvalidStatusTransition)
		case "busy":
			return domain.ErrRefreshInProgress
		case "input":
			return fmt.Errorf("bad: %w", domain.ErrInvalidInput)
		}
		return errors.New("db exploded")
	})
	return e
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateJWT(testSecret, "ops_1", role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddleware(t *testing.T) {
	e := newTestServer()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", bearer(t, RoleOperator), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodPut, "/admin", nil)
	req.Header.Set("Authorization", bearer(t, RoleOperator))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/admin", nil)
	req.Header.Set("Authorization", bearer(t, "admin"))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorHandler(t *testing.T) {
	e := newTestServer()

	tests := []struct {
		kind     string
		wantCode int
		wantErr  string
	}{
		{"missing", http.StatusNotFound, "NOT_FOUND"},
		{"transition", http.StatusConflict, "CONFLICT"},
		{"busy", http.StatusConflict, "CONFLICT"},
		{"input", http.StatusBadRequest, "BAD_REQUEST"},
		{"other", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/fail/"+tt.kind, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)

			var body jsonres.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestErrorHandler_HidesInternalMessage(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/fail/other", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.NotContains(t, rec.Body.String(), "db exploded")
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

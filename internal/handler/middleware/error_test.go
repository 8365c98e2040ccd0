//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rentloop/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return r
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorTestRouter()
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}

func TestErrorHandler(t *testing.T) {
	t.Run("written responses pass through untouched", func(t *testing.T) {
		r := newErrorTestRouter()
		r.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	})

	t.Run("unhandled errors become a flat 500", func(t *testing.T) {
		r := newErrorTestRouter()
		r.GET("/leak", func(c *gin.Context) {
			_ = c.Error(assert.AnError)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leak", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
	})

	t.Run("a bare status set by the handler is kept", func(t *testing.T) {
		r := newErrorTestRouter()
		r.GET("/teapot", func(c *gin.Context) {
			c.Status(http.StatusTeapot)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

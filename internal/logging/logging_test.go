package logging

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewWithOutput_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "warn", "json")

	log.Info("hidden")
	log.WithField("order", 7).Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"order":7`)
}

func TestNewWithOutput_BadLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput(&bytes.Buffer{}, "loud", "text")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestRequestLogger_WritesOneEntry(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "info", "text")

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/menu", func(c echo.Context) error {
		return c.String(http.StatusOK, "[]")
	})

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, "uri=/menu")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "method=GET")
}

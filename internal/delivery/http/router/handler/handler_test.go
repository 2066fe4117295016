package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context around a JSON request body. An empty
// body string sends a zero-length request.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// Empty bodies and JSON null leave the bound input nil; the handlers must
// answer 400 instead of passing nil into validation.
func TestProductHandler_Create_NilBodyIsBadRequest(t *testing.T) {
	h := NewProductHandler(nil, discardLogger())

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "json null", body: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(http.MethodPost, "/api/products", tt.body)

			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuthHandler_Register_NilBodyIsBadRequest(t *testing.T) {
	h := NewAuthHandler(nil, discardLogger())
	c, rec := newTestContext(http.MethodPost, "/api/auth/register", "")

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_Place_NilBodyIsBadRequest(t *testing.T) {
	h := NewOrderHandler(nil, discardLogger())
	c, rec := newTestContext(http.MethodPost, "/api/orders", "null")

	require.NoError(t, h.Place(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryHandler_Create_NilBodyIsBadRequest(t *testing.T) {
	h := NewCategoryHandler(nil, discardLogger())
	c, rec := newTestContext(http.MethodPost, "/api/categories", "")

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

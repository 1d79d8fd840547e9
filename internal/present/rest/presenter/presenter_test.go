package presenter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/totegamma/logistics-backend/internal/domain"
)

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(zap.NewNop())
	return e
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorHandlerMapsDomainErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.NotFound(domain.KindPort, "P1"), http.StatusNotFound, "PORT_NOT_FOUND"},
		{fmt.Errorf("wrapped: %w", domain.AlreadyExists(domain.KindVendor, "a", "b")), http.StatusConflict, "VENDOR_ALREADY_EXISTS_ERROR"},
		{domain.NotInParent(domain.KindCustomerContact, domain.KindCustomerLocation, "K1"), http.StatusForbidden, "CUSTOMER_CONTACT_NOT_IN_LOCATION_ERROR"},
		{echo.NewHTTPError(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed, "HTTP_405"},
		{fmt.Errorf("connection refused"), http.StatusInternalServerError, InternalCode},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			e := newEcho()
			e.GET("/x", func(c echo.Context) error { return tt.err })

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, tt.status, rec.Code)

			body := decode(t, rec)
			assert.Contains(t, body, "data")
			assert.Nil(t, body["data"])
			errBody := body["error"].(map[string]any)
			assert.Equal(t, tt.code, errBody["code"])
		})
	}
}

func TestErrorHandlerHidesInternalDetails(t *testing.T) {
	e := newEcho()
	e.GET("/x", func(c echo.Context) error { return fmt.Errorf("pq: password authentication failed") })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Contains(t, rec.Body.String(), InternalMessage)
}

func TestValidationDetails(t *testing.T) {
	e := newEcho()
	e.POST("/x", func(c echo.Context) error {
		return domain.Validation(domain.FieldError{Field: "portName", Message: "is required"})
	})

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"data": null,
		"error": {
			"code": "VALIDATION_ERROR",
			"message": "Request validation failed.",
			"details": [{"field": "portName", "message": "is required"}]
		}
	}`, rec.Body.String())
}

func TestListMeta(t *testing.T) {
	e := newEcho()
	e.GET("/plain", func(c echo.Context) error { return List(c, []int{1, 2}, nil) })
	e.GET("/paged", func(c echo.Context) error {
		return List(c, []int{1}, domain.Paginate(domain.Page{Number: 2, Size: 1}, 2))
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.JSONEq(t, `{"data":[1,2]}`, rec.Body.String())

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/paged", nil))
	assert.JSONEq(t, `{"data":[1],"meta":{"pagination":{"page":2,"pageSize":1,"total":2,"totalPages":2}}}`, rec.Body.String())
}

func TestCreatedStatus(t *testing.T) {
	e := newEcho()
	e.POST("/x", func(c echo.Context) error { return Created(c, map[string]string{"id": "1"}) })

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"1"}}`, rec.Body.String())
}

func TestDetailETag(t *testing.T) {
	e := newEcho()
	e.GET("/x", func(c echo.Context) error { return Detail(c, map[string]string{"id": "1"}) })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	tag := rec.Header().Get("ETag")
	require.NotEmpty(t, tag)
	assert.Equal(t, ETag(rec.Body.Bytes()), tag)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("If-None-Match", `"deadbeef", `+tag)
	rec = serve(e, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.Bytes())

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("If-None-Match", `"deadbeef"`)
	rec = serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

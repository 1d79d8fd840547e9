package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/logistics-backend/internal/infra/export"
)

func attachment(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, export.ContentType, data)
}

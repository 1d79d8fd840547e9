package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/logistics-backend/internal/domain"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

// Envelope is the shape of every JSON response.
type Envelope struct {
	Data  any        `json:"data"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  *Meta      `json:"meta,omitempty"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, Envelope{Data: payload})
}

func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, Envelope{Data: payload})
}

// List wraps a collection; meta is only present when the list was paged.
func List(c echo.Context, payload any, pagination *domain.Pagination) error {
	env := Envelope{Data: payload}
	if pagination != nil {
		env.Meta = &Meta{Pagination: pagination}
	}
	return c.JSON(http.StatusOK, env)
}

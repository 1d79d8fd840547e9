package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/infra/export"
	"github.com/totegamma/logistics-backend/internal/present/rest/presenter"
)

func (h *Handler) handlePortList(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.page(c)
	if err != nil {
		return err
	}

	ports, pagination, err := h.port.List(ctx, page)
	if err != nil {
		return err
	}

	result := make([]portSummary, 0, len(ports))
	for _, p := range ports {
		result = append(result, newPortSummary(p))
	}
	return presenter.List(c, result, pagination)
}

func (h *Handler) handlePortGet(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	port, err := h.port.Get(ctx, id)
	if err != nil {
		return err
	}
	return presenter.Detail(c, newPortDetail(port))
}

func (h *Handler) handlePortCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var req portCreateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	port, err := h.port.Create(ctx, domain.PortCreate{
		Name:    req.PortName,
		Country: req.PortCountry,
	})
	if err != nil {
		return err
	}
	return presenter.Created(c, newPortDetail(port))
}

func (h *Handler) handlePortUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req portUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	port, err := h.port.Update(ctx, id, domain.PortUpdate{
		Name:     req.PortName,
		Country:  req.PortCountry,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return presenter.OK(c, newPortDetail(port))
}

func (h *Handler) handlePortExport(c echo.Context) error {
	ctx := c.Request().Context()

	ports, _, err := h.port.List(ctx, domain.Page{})
	if err != nil {
		return err
	}

	data, err := export.Write(export.Ports(ports))
	if err != nil {
		return err
	}
	return attachment(c, "ports.xlsx", data)
}

package rest

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/infra/export"
	"github.com/totegamma/logistics-backend/internal/present/rest/presenter"
)

func (h *Handler) handleVesselList(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.page(c)
	if err != nil {
		return err
	}

	vessels, pagination, err := h.vessel.List(ctx, page)
	if err != nil {
		return err
	}

	result := make([]vesselSummary, 0, len(vessels))
	for _, v := range vessels {
		result = append(result, newVesselSummary(v))
	}
	return presenter.List(c, result, pagination)
}

func (h *Handler) handleVesselGet(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	vessel, err := h.vessel.Get(ctx, id)
	if err != nil {
		return err
	}
	return presenter.Detail(c, newVesselDetail(vessel))
}

func (h *Handler) handleVesselCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var req vesselCreateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	vessel, err := h.vessel.Create(ctx, domain.VesselCreate{
		Name:          req.VesselName,
		VoyageNumber:  req.VoyageNumber,
		ETD:           req.ETD.ptr(),
		ClosingReefer: req.ClosingReefer.ptr(),
	})
	if err != nil {
		return err
	}
	return presenter.Created(c, newVesselDetail(vessel))
}

func (h *Handler) handleVesselUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req vesselUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	vessel, err := h.vessel.Update(ctx, id, domain.VesselUpdate{
		Name:          req.VesselName,
		VoyageNumber:  req.VoyageNumber,
		ETD:           dateOption(req.ETD),
		ClosingReefer: dateOption(req.ClosingReefer),
		IsActive:      req.IsActive,
	})
	if err != nil {
		return err
	}
	return presenter.OK(c, newVesselDetail(vessel))
}

func (h *Handler) handleVesselExport(c echo.Context) error {
	ctx := c.Request().Context()

	vessels, _, err := h.vessel.List(ctx, domain.Page{})
	if err != nil {
		return err
	}

	data, err := export.Write(export.Vessels(vessels))
	if err != nil {
		return err
	}
	return attachment(c, "vessels.xlsx", data)
}

func dateOption(o domain.Optional[*Date]) domain.Optional[*time.Time] {
	if !o.Set {
		return domain.Optional[*time.Time]{}
	}
	return domain.Some(o.Value.ptr())
}

package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/infra/export"
	"github.com/totegamma/logistics-backend/internal/present/rest/presenter"
	"github.com/totegamma/logistics-backend/internal/usecase"
	"github.com/totegamma/logistics-backend/internal/utils"
)

// registerParty mounts one party tree (customers or vendors) on g.
func (h *Handler) registerParty(g *echo.Group, uc *usecase.PartyUsecase) {
	g.GET("", h.handlePartyList(uc))
	g.GET("/export", h.handlePartyExport(uc))
	g.GET("/:id", h.handlePartyGet(uc))
	g.POST("", h.handlePartyCreate(uc))
	g.PUT("/:id", h.handlePartyUpdate(uc))

	g.GET("/:id/locations", h.handleLocationList(uc))
	g.GET("/:id/locations/:locationId", h.handleLocationGet(uc))
	g.POST("/:id/locations", h.handleLocationCreate(uc))
	g.PUT("/:id/locations/:locationId", h.handleLocationUpdate(uc))

	g.GET("/:id/locations/:locationId/contacts", h.handleContactList(uc))
	g.GET("/:id/locations/:locationId/contacts/:contactId", h.handleContactGet(uc))
	g.POST("/:id/locations/:locationId/contacts", h.handleContactCreate(uc))
	g.PUT("/:id/locations/:locationId/contacts/:contactId", h.handleContactUpdate(uc))
}

// ---- party

func (h *Handler) handlePartyList(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		page, err := h.page(c)
		if err != nil {
			return err
		}

		parties, pagination, err := uc.List(ctx, page)
		if err != nil {
			return err
		}

		result := make([]*utils.OrderedObject, 0, len(parties))
		for _, p := range parties {
			result = append(result, newPartySummary(uc.Tree(), p))
		}
		return presenter.List(c, result, pagination)
	}
}

func (h *Handler) handlePartyGet(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := pathID(c, "id")
		if err != nil {
			return err
		}

		party, err := uc.Get(ctx, id)
		if err != nil {
			return err
		}
		return presenter.Detail(c, newPartyDetail(uc.Tree(), party))
	}
}

func (h *Handler) handlePartyCreate(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req partyCreateRequest
		if err := h.bindParty(c, uc.Tree(), &req); err != nil {
			return err
		}

		party, err := uc.Create(ctx, domain.PartyCreate{
			Name: req.Name,
			Code: req.Code,
			NPWP: req.NPWP,
		})
		if err != nil {
			return err
		}
		return presenter.Created(c, newPartyDetail(uc.Tree(), party))
	}
}

func (h *Handler) handlePartyUpdate(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := pathID(c, "id")
		if err != nil {
			return err
		}

		var req partyUpdateRequest
		if err := h.bindParty(c, uc.Tree(), &req); err != nil {
			return err
		}

		party, err := uc.Update(ctx, id, domain.PartyUpdate{
			Name:     req.Name,
			Code:     req.Code,
			NPWP:     req.NPWP,
			IsActive: req.IsActive,
		})
		if err != nil {
			return err
		}
		return presenter.OK(c, newPartyDetail(uc.Tree(), party))
	}
}

func (h *Handler) handlePartyExport(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		parties, _, err := uc.List(ctx, domain.Page{})
		if err != nil {
			return err
		}

		data, err := export.Write(export.Parties(uc.Tree(), parties))
		if err != nil {
			return err
		}
		return attachment(c, uc.Tree().Prefix+"s.xlsx", data)
	}
}

// ---- location

func (h *Handler) handleLocationList(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		partyID, err := pathID(c, "id")
		if err != nil {
			return err
		}

		locations, err := uc.ListLocations(ctx, partyID)
		if err != nil {
			return err
		}

		result := make([]*utils.OrderedObject, 0, len(locations))
		for _, l := range locations {
			result = append(result, newLocationDetail(l))
		}
		return presenter.OK(c, result)
	}
}

func (h *Handler) handleLocationGet(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		ids, err := pathIDs(c, "id", "locationId")
		if err != nil {
			return err
		}

		location, err := uc.GetLocation(ctx, ids[0], ids[1])
		if err != nil {
			return err
		}
		return presenter.Detail(c, newLocationDetail(location))
	}
}

func (h *Handler) handleLocationCreate(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		partyID, err := pathID(c, "id")
		if err != nil {
			return err
		}

		var req locationCreateRequest
		if err := h.bind(c, &req); err != nil {
			return err
		}

		location, err := uc.CreateLocation(ctx, partyID, domain.LocationCreate{
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			AddressLine3: req.AddressLine3,
			City:         req.City,
			Province:     req.Province,
			Country:      req.Country,
			PostalCode:   req.PostalCode,
		})
		if err != nil {
			return err
		}
		return presenter.Created(c, newLocationDetail(location))
	}
}

func (h *Handler) handleLocationUpdate(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		ids, err := pathIDs(c, "id", "locationId")
		if err != nil {
			return err
		}

		var req locationUpdateRequest
		if err := h.bind(c, &req); err != nil {
			return err
		}

		location, err := uc.UpdateLocation(ctx, ids[0], ids[1], domain.LocationUpdate{
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			AddressLine3: req.AddressLine3,
			City:         req.City,
			Province:     req.Province,
			Country:      req.Country,
			PostalCode:   req.PostalCode,
			IsActive:     req.IsActive,
		})
		if err != nil {
			return err
		}
		return presenter.OK(c, newLocationDetail(location))
	}
}

// ---- contact

func (h *Handler) handleContactList(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		ids, err := pathIDs(c, "id", "locationId")
		if err != nil {
			return err
		}

		contacts, err := uc.ListContacts(ctx, ids[0], ids[1])
		if err != nil {
			return err
		}

		result := make([]contactDetail, 0, len(contacts))
		for _, k := range contacts {
			result = append(result, newContactDetail(k))
		}
		return presenter.OK(c, result)
	}
}

func (h *Handler) handleContactGet(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		ids, err := pathIDs(c, "id", "locationId", "contactId")
		if err != nil {
			return err
		}

		contact, err := uc.GetContact(ctx, ids[0], ids[1], ids[2])
		if err != nil {
			return err
		}
		return presenter.Detail(c, newContactDetail(contact))
	}
}

func (h *Handler) handleContactCreate(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		ids, err := pathIDs(c, "id", "locationId")
		if err != nil {
			return err
		}

		var req contactCreateRequest
		if err := h.bind(c, &req); err != nil {
			return err
		}

		contact, err := uc.CreateContact(ctx, ids[0], ids[1], domain.ContactCreate{
			ContactName: req.ContactName,
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
		})
		if err != nil {
			return err
		}
		return presenter.Created(c, newContactDetail(contact))
	}
}

func (h *Handler) handleContactUpdate(uc *usecase.PartyUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		ids, err := pathIDs(c, "id", "locationId", "contactId")
		if err != nil {
			return err
		}

		var req contactUpdateRequest
		if err := h.bind(c, &req); err != nil {
			return err
		}

		contact, err := uc.UpdateContact(ctx, ids[0], ids[1], ids[2], domain.ContactUpdate{
			ContactName: req.ContactName,
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
			IsActive:    req.IsActive,
		})
		if err != nil {
			return err
		}
		return presenter.OK(c, newContactDetail(contact))
	}
}

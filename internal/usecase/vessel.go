package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/totegamma/logistics-backend/internal/domain"
)

type VesselUsecase struct {
	repo    VesselRepository
	effects Effects
}

func NewVesselUsecase(repo VesselRepository, effects Effects) *VesselUsecase {
	return &VesselUsecase{repo: repo, effects: effects}
}

func (uc *VesselUsecase) List(ctx context.Context, page domain.Page) ([]domain.Vessel, *domain.Pagination, error) {
	ctx, span := tracer.Start(ctx, "Vessel.Usecase.List")
	defer span.End()

	vessels, total, err := uc.repo.List(ctx, page)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	return vessels, domain.Paginate(page, total), nil
}

func (uc *VesselUsecase) Get(ctx context.Context, id string) (domain.Vessel, error) {
	ctx, span := tracer.Start(ctx, "Vessel.Usecase.Get")
	defer span.End()

	var vessel domain.Vessel
	if uc.effects.cached(ctx, domain.KindVessel, id, &vessel) {
		return vessel, nil
	}

	vessel, err := uc.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.Vessel{}, err
	}
	uc.effects.remember(ctx, domain.KindVessel, id, vessel)
	return vessel, nil
}

func (uc *VesselUsecase) Create(ctx context.Context, input domain.VesselCreate) (domain.Vessel, error) {
	ctx, span := tracer.Start(ctx, "Vessel.Usecase.Create")
	defer span.End()

	exists, err := uc.repo.Exists(ctx, input.Name, input.VoyageNumber, "")
	if err != nil {
		span.RecordError(err)
		return domain.Vessel{}, err
	}
	if exists {
		return domain.Vessel{}, domain.AlreadyExists(domain.KindVessel, input.Name, input.VoyageNumber)
	}

	vessel := domain.Vessel{
		ID:            uuid.NewString(),
		Name:          input.Name,
		VoyageNumber:  input.VoyageNumber,
		ETD:           input.ETD,
		ClosingReefer: input.ClosingReefer,
	}
	vessel.Stamp(domain.ActorFrom(ctx), uc.effects.now())

	created, err := uc.repo.Create(ctx, vessel)
	if err != nil {
		span.RecordError(err)
		return domain.Vessel{}, err
	}

	uc.effects.changed(ctx, domain.KindVessel, domain.ChangeEvent{
		Kind:   domain.KindVessel.Name,
		Op:     domain.ChangeCreated,
		ID:     created.ID,
		RootID: created.ID,
	})
	return created, nil
}

func (uc *VesselUsecase) Update(ctx context.Context, id string, input domain.VesselUpdate) (domain.Vessel, error) {
	ctx, span := tracer.Start(ctx, "Vessel.Usecase.Update")
	defer span.End()

	vessel, err := uc.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.Vessel{}, err
	}

	input.Apply(&vessel)

	if input.TouchesKey() {
		exists, err := uc.repo.Exists(ctx, vessel.Name, vessel.VoyageNumber, id)
		if err != nil {
			span.RecordError(err)
			return domain.Vessel{}, err
		}
		if exists {
			return domain.Vessel{}, domain.AlreadyExists(domain.KindVessel, vessel.Name, vessel.VoyageNumber)
		}
	}

	vessel.Touch(domain.ActorFrom(ctx), uc.effects.now())

	updated, err := uc.repo.Update(ctx, vessel)
	if err != nil {
		span.RecordError(err)
		return domain.Vessel{}, err
	}

	uc.effects.changed(ctx, domain.KindVessel, domain.ChangeEvent{
		Kind:   domain.KindVessel.Name,
		Op:     domain.ChangeUpdated,
		ID:     updated.ID,
		RootID: updated.ID,
	})
	return updated, nil
}

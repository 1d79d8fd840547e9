package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/totegamma/logistics-backend/internal/domain"
)

type PortUsecase struct {
	repo    PortRepository
	effects Effects
}

func NewPortUsecase(repo PortRepository, effects Effects) *PortUsecase {
	return &PortUsecase{repo: repo, effects: effects}
}

func (uc *PortUsecase) List(ctx context.Context, page domain.Page) ([]domain.Port, *domain.Pagination, error) {
	ctx, span := tracer.Start(ctx, "Port.Usecase.List")
	defer span.End()

	ports, total, err := uc.repo.List(ctx, page)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	return ports, domain.Paginate(page, total), nil
}

func (uc *PortUsecase) Get(ctx context.Context, id string) (domain.Port, error) {
	ctx, span := tracer.Start(ctx, "Port.Usecase.Get")
	defer span.End()

	var port domain.Port
	if uc.effects.cached(ctx, domain.KindPort, id, &port) {
		return port, nil
	}

	port, err := uc.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.Port{}, err
	}
	uc.effects.remember(ctx, domain.KindPort, id, port)
	return port, nil
}

func (uc *PortUsecase) Create(ctx context.Context, input domain.PortCreate) (domain.Port, error) {
	ctx, span := tracer.Start(ctx, "Port.Usecase.Create")
	defer span.End()

	exists, err := uc.repo.Exists(ctx, input.Name, input.Country, "")
	if err != nil {
		span.RecordError(err)
		return domain.Port{}, err
	}
	if exists {
		return domain.Port{}, domain.AlreadyExists(domain.KindPort, input.Name, input.Country)
	}

	port := domain.Port{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Country: input.Country,
	}
	port.Stamp(domain.ActorFrom(ctx), uc.effects.now())

	created, err := uc.repo.Create(ctx, port)
	if err != nil {
		span.RecordError(err)
		return domain.Port{}, err
	}

	uc.effects.changed(ctx, domain.KindPort, domain.ChangeEvent{
		Kind:   domain.KindPort.Name,
		Op:     domain.ChangeCreated,
		ID:     created.ID,
		RootID: created.ID,
	})
	return created, nil
}

func (uc *PortUsecase) Update(ctx context.Context, id string, input domain.PortUpdate) (domain.Port, error) {
	ctx, span := tracer.Start(ctx, "Port.Usecase.Update")
	defer span.End()

	port, err := uc.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.Port{}, err
	}

	input.Apply(&port)

	if input.TouchesKey() {
		exists, err := uc.repo.Exists(ctx, port.Name, port.Country, id)
		if err != nil {
			span.RecordError(err)
			return domain.Port{}, err
		}
		if exists {
			return domain.Port{}, domain.AlreadyExists(domain.KindPort, port.Name, port.Country)
		}
	}

	port.Touch(domain.ActorFrom(ctx), uc.effects.now())

	updated, err := uc.repo.Update(ctx, port)
	if err != nil {
		span.RecordError(err)
		return domain.Port{}, err
	}

	uc.effects.changed(ctx, domain.KindPort, domain.ChangeEvent{
		Kind:   domain.KindPort.Name,
		Op:     domain.ChangeUpdated,
		ID:     updated.ID,
		RootID: updated.ID,
	})
	return updated, nil
}

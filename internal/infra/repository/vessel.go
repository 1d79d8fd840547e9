package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/infra/database/models"
)

type VesselRepository struct {
	db *gorm.DB
}

func NewVesselRepository(db *gorm.DB) *VesselRepository {
	return &VesselRepository{db: db}
}

func (r *VesselRepository) List(ctx context.Context, page domain.Page) ([]domain.Vessel, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Vessel{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, domain.KindVessel, "list", [2]string{})
	}

	var rows []models.Vessel
	err := paginate(r.db.WithContext(ctx), page).
		Order("etd DESC NULLS LAST, vessel_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate(err, domain.KindVessel, "list", [2]string{})
	}

	vessels := make([]domain.Vessel, 0, len(rows))
	for _, row := range rows {
		vessels = append(vessels, vesselFromModel(row))
	}
	return vessels, total, nil
}

func (r *VesselRepository) Get(ctx context.Context, id string) (domain.Vessel, error) {
	var row models.Vessel
	if err := r.db.WithContext(ctx).Take(&row, "id = ?", id).Error; err != nil {
		return domain.Vessel{}, translate(err, domain.KindVessel, id, [2]string{})
	}
	return vesselFromModel(row), nil
}

func (r *VesselRepository) Exists(ctx context.Context, name, voyageNumber, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Vessel{}).
		Where("vessel_name = ? AND voyage_number = ?", name, voyageNumber)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, translate(err, domain.KindVessel, name, [2]string{})
	}
	return count > 0, nil
}

func (r *VesselRepository) Create(ctx context.Context, vessel domain.Vessel) (domain.Vessel, error) {
	row := vesselToModel(vessel)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Vessel{}, translate(err, domain.KindVessel, vessel.ID, [2]string{vessel.Name, vessel.VoyageNumber})
	}
	return vesselFromModel(row), nil
}

func (r *VesselRepository) Update(ctx context.Context, vessel domain.Vessel) (domain.Vessel, error) {
	err := r.db.WithContext(ctx).Model(&models.Vessel{}).
		Where("id = ?", vessel.ID).
		Updates(map[string]any{
			"vessel_name":    vessel.Name,
			"voyage_number":  vessel.VoyageNumber,
			"etd":            toDate(vessel.ETD),
			"closing_reefer": toDate(vessel.ClosingReefer),
			"is_active":      vessel.IsActive,
			"updated_by":     vessel.UpdatedBy,
			"updated_at":     vessel.UpdatedAt,
		}).Error
	if err != nil {
		return domain.Vessel{}, translate(err, domain.KindVessel, vessel.ID, [2]string{vessel.Name, vessel.VoyageNumber})
	}
	return r.Get(ctx, vessel.ID)
}

func vesselFromModel(m models.Vessel) domain.Vessel {
	return domain.Vessel{
		ID:            m.ID,
		Name:          m.VesselName,
		VoyageNumber:  m.VoyageNumber,
		ETD:           fromDate(m.Etd),
		ClosingReefer: fromDate(m.ClosingReefer),
		Audit:         auditFromModel(m.Audit),
	}
}

func vesselToModel(v domain.Vessel) models.Vessel {
	return models.Vessel{
		ID:            v.ID,
		VesselName:    v.Name,
		VoyageNumber:  v.VoyageNumber,
		Etd:           toDate(v.ETD),
		ClosingReefer: toDate(v.ClosingReefer),
		Audit:         auditToModel(v.Audit),
	}
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d).UTC()
	return &t
}

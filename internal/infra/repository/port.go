package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/infra/database/models"
)

type PortRepository struct {
	db *gorm.DB
}

func NewPortRepository(db *gorm.DB) *PortRepository {
	return &PortRepository{db: db}
}

func (r *PortRepository) List(ctx context.Context, page domain.Page) ([]domain.Port, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Port{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, domain.KindPort, "list", [2]string{})
	}

	var rows []models.Port
	err := paginate(r.db.WithContext(ctx), page).
		Order("port_name ASC, port_country ASC").
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate(err, domain.KindPort, "list", [2]string{})
	}

	ports := make([]domain.Port, 0, len(rows))
	for _, row := range rows {
		ports = append(ports, portFromModel(row))
	}
	return ports, total, nil
}

func (r *PortRepository) Get(ctx context.Context, id string) (domain.Port, error) {
	var row models.Port
	if err := r.db.WithContext(ctx).Take(&row, "id = ?", id).Error; err != nil {
		return domain.Port{}, translate(err, domain.KindPort, id, [2]string{})
	}
	return portFromModel(row), nil
}

func (r *PortRepository) Exists(ctx context.Context, name, country, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Port{}).
		Where("port_name = ? AND port_country = ?", name, country)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, translate(err, domain.KindPort, name, [2]string{})
	}
	return count > 0, nil
}

func (r *PortRepository) Create(ctx context.Context, port domain.Port) (domain.Port, error) {
	row := portToModel(port)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Port{}, translate(err, domain.KindPort, port.ID, [2]string{port.Name, port.Country})
	}
	return portFromModel(row), nil
}

func (r *PortRepository) Update(ctx context.Context, port domain.Port) (domain.Port, error) {
	err := r.db.WithContext(ctx).Model(&models.Port{}).
		Where("id = ?", port.ID).
		Updates(map[string]any{
			"port_name":    port.Name,
			"port_country": port.Country,
			"is_active":    port.IsActive,
			"updated_by":   port.UpdatedBy,
			"updated_at":   port.UpdatedAt,
		}).Error
	if err != nil {
		return domain.Port{}, translate(err, domain.KindPort, port.ID, [2]string{port.Name, port.Country})
	}
	return r.Get(ctx, port.ID)
}

func portFromModel(m models.Port) domain.Port {
	return domain.Port{
		ID:      m.ID,
		Name:    m.PortName,
		Country: m.PortCountry,
		Audit:   auditFromModel(m.Audit),
	}
}

func portToModel(p domain.Port) models.Port {
	return models.Port{
		ID:          p.ID,
		PortName:    p.Name,
		PortCountry: p.Country,
		Audit:       auditToModel(p.Audit),
	}
}

func auditFromModel(m models.Audit) domain.Audit {
	return domain.Audit{
		IsActive:  m.IsActive,
		CreatedBy: m.CreatedBy,
		UpdatedBy: m.UpdatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func auditToModel(a domain.Audit) models.Audit {
	return models.Audit{
		IsActive:  a.IsActive,
		CreatedBy: a.CreatedBy,
		UpdatedBy: a.UpdatedBy,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

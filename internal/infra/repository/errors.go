package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/logistics-backend/internal/domain"
)

// translate maps gorm errors onto the domain taxonomy. A unique index
// violation means a concurrent writer took the natural key first.
func translate(err error, kind domain.Kind, id string, key [2]string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFound(kind, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.AlreadyExists(kind, key[0], key[1])
	default:
		return errors.Wrapf(err, "%s %s", kind.Name, id)
	}
}

func paginate(db *gorm.DB, page domain.Page) *gorm.DB {
	if !page.Enabled() {
		return db
	}
	return db.Offset(page.Offset()).Limit(page.Size)
}

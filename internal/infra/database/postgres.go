package database

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/totegamma/logistics-backend/internal/infra/database/models"
)

func NewPostgres(dsn string, log *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	return db, nil
}

func MigratePostgres(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Port{}, &models.Vessel{}); err != nil {
		return errors.Wrap(err, "migrate ports and vessels")
	}

	for _, tables := range []models.TreeTables{models.CustomerTables, models.VendorTables} {
		if err := migrateTree(db, tables); err != nil {
			return err
		}
	}
	return nil
}

func migrateTree(db *gorm.DB, t models.TreeTables) error {
	if err := db.Table(t.Parties).AutoMigrate(&models.Party{}); err != nil {
		return errors.Wrapf(err, "migrate %s", t.Parties)
	}
	if err := db.Table(t.Locations).AutoMigrate(&models.Location{}); err != nil {
		return errors.Wrapf(err, "migrate %s", t.Locations)
	}
	if err := db.Table(t.Contacts).AutoMigrate(&models.Contact{}); err != nil {
		return errors.Wrapf(err, "migrate %s", t.Contacts)
	}

	return execAll(db, treeStatements(t))
}

// treeStatements builds the indexes and foreign keys of one party tree.
// Postgres has no ADD CONSTRAINT IF NOT EXISTS, so each foreign key is
// guarded by a pg_constraint lookup to keep migrate rerunnable.
func treeStatements(t models.TreeTables) []string {
	return []string{
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS idx_%[1]s_natural_key ON %[1]s (name, code)`, t.Parties),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_party_id ON %[1]s (party_id)`, t.Locations),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%[1]s_location_id ON %[1]s (location_id)`, t.Contacts),
		foreignKey(t.Locations, "party_id", t.Parties),
		foreignKey(t.Contacts, "location_id", t.Locations),
	}
}

func foreignKey(table, column, parent string) string {
	name := fmt.Sprintf("fk_%s_%s", table, column)
	return fmt.Sprintf(`DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
		ALTER TABLE %[2]s ADD CONSTRAINT %[1]s FOREIGN KEY (%[3]s) REFERENCES %[4]s (id);
	END IF;
END $$`, name, table, column, parent)
}

func execAll(db *gorm.DB, statements []string) error {
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "exec %q", stmt)
		}
	}
	return nil
}

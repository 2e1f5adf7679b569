package postgres

import (
	"estatex/internal/errors"
	"estatex/internal/infra/persistence/model"

	"gorm.io/gorm"
)

var extensions = []string{
	`CREATE EXTENSION IF NOT EXISTS postgis`,
	`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`,
}

// nearbyIndex backs the ST_DWithin lookups on the computed listing position.
const nearbyIndex = `CREATE INDEX IF NOT EXISTS idx_properties_position ON properties USING GIST ((` + geographyPoint + `))`

// Migrate creates the extensions, tables and spatial index the repositories rely on.
func Migrate(db *gorm.DB) error {
	for _, stmt := range extensions {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to run %q", stmt)
		}
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.SubscriptionModel{},
		&model.PropertyModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	if err := db.Exec(nearbyIndex).Error; err != nil {
		return errors.Wrap(err, "failed to create spatial index")
	}

	return nil
}

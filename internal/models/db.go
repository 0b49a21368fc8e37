package models

import "gorm.io/gorm"

// Migrate creates or updates the workflow schema.
func Migrate(db *gorm.DB) error {
	for _, m := range []interface{}{
		&User{},
		&Document{},
		&Retention{},
		&Autodoc{},
		&Revision{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}

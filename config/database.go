package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() error {
	// No migrated FK constraints: invoices keep their client reference after
	// the client row is deleted.
	db, err := gorm.Open(postgres.Open(C.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}

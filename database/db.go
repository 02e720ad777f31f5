package database

import (
	"fmt"

	"github.com/iamsuryasonar/Apparel-store-limo-backend/config"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the postgres connection and runs migrations.
func Connect(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.ColorVariant{},
		&models.SizeVariant{},
		&models.CartItem{},
		&models.Address{},
		&models.PaymentRecord{},
		&models.Order{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	DB = db
	return nil
}

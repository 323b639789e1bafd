package db

import (
	"fmt"
	"log"
	"os"

	"movie_rental_api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return DB
}

// AutoMigrate 只建表，供测试用内存库复用；Migrate 额外加 Postgres 专属索引。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Movie{}, &models.Genre{}, &models.Format{}, &models.Location{},
		&models.Customer{}, &models.Employee{}, &models.PromoCode{},
		&models.ApiUser{}, &models.InventoryItem{},
		&models.Rental{}, &models.RentalItem{},
	)
}

func Migrate(db *gorm.DB) error {
	if err := AutoMigrate(db); err != nil {
		return err
	}

	// 查可借库存更快
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_location_status
	  ON %s (location_id, status);
	`, models.InventoryItemTable, models.InventoryItemTable)).Error; err != nil {
		return err
	}

	// 逾期查询走这条
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_due_at
	  ON %s (due_at)
	  WHERE status = 'OPEN';
	`, models.RentalTable, models.RentalTable)).Error; err != nil {
		return err
	}

	return nil
}

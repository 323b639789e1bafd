package db

import (
	"fmt"
	"testing"

	"movie_rental_api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepo 给每个测试一个独立的内存库。
// 单连接串行化事务，避免 sqlite 表锁报错。
func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(gdb))
	return NewRepo(gdb)
}

// seedInventory 建好门店 3、电影、DVD 介质，并按给定 ID 铺库存。
func seedInventory(t *testing.T, r *Repo, itemIDs ...int64) {
	t.Helper()

	require.NoError(t, r.DB.Create(&models.Location{ID: 3, Address: "Vesterbrogade 1", City: "Copenhagen"}).Error)
	require.NoError(t, r.DB.Create(&models.Movie{ID: 11, Title: "The Seventh Seal", ReleaseYear: 1957, RuntimeMin: 96}).Error)
	require.NoError(t, r.DB.Create(&models.Format{ID: 1, Format: "DVD"}).Error)
	require.NoError(t, r.DB.Create(&models.Customer{
		ID: 7, FirstName: "Karen", LastName: "Blixen",
		Email: "karen@example.dk", PhoneNumber: "+4512345678",
	}).Error)

	for _, id := range itemIDs {
		require.NoError(t, r.DB.Create(&models.InventoryItem{
			ID: id, MovieID: 11, FormatID: 1, LocationID: 3,
			Status: models.ItemAvailable,
		}).Error)
	}
}

func itemStatus(t *testing.T, r *Repo, id int64) models.ItemStatus {
	t.Helper()
	var it models.InventoryItem
	require.NoError(t, r.DB.First(&it, "id = ?", id).Error)
	return it.Status
}

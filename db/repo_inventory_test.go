package db

import (
	"context"
	"testing"

	"movie_rental_api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReserveBatch_FlipsStatusAndSnapshots(t *testing.T) {
	r := newTestRepo(t)
	seedInventory(t, r, 101, 102)

	var snaps map[int64]models.InventoryItem
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		snaps, err = r.ReserveBatch(context.Background(), tx, []int64{101, 102}, models.ItemRented)
		return err
	})
	require.NoError(t, err)

	require.Len(t, snaps, 2)
	require.Equal(t, int64(11), snaps[101].MovieID)
	require.Equal(t, int64(1), snaps[101].FormatID)
	require.Equal(t, int64(3), snaps[101].LocationID)
	// 快照取自翻转前的读取
	require.Equal(t, models.ItemAvailable, snaps[101].Status)

	require.Equal(t, models.ItemRented, itemStatus(t, r, 101))
	require.Equal(t, models.ItemRented, itemStatus(t, r, 102))
}

func TestReserveBatch_AllOrNothing(t *testing.T) {
	r := newTestRepo(t)
	seedInventory(t, r, 101, 102, 103)
	require.NoError(t, r.DB.Model(&models.InventoryItem{}).
		Where("id = ?", 103).
		Update("status", models.ItemReserved).Error)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		_, err := r.ReserveBatch(context.Background(), tx, []int64{101, 102, 103}, models.ItemRented)
		return err
	})
	var notAvail *ItemsNotAvailableError
	require.ErrorAs(t, err, &notAvail)
	require.Equal(t, []int64{103}, notAvail.IDs)

	require.Equal(t, models.ItemAvailable, itemStatus(t, r, 101))
	require.Equal(t, models.ItemAvailable, itemStatus(t, r, 102))
	require.Equal(t, models.ItemReserved, itemStatus(t, r, 103))
}

func TestReserveBatch_NamesAllMissing(t *testing.T) {
	r := newTestRepo(t)
	seedInventory(t, r, 101)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		_, err := r.ReserveBatch(context.Background(), tx, []int64{998, 101, 999}, models.ItemReserved)
		return err
	})
	var notFound *ItemsNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, []int64{998, 999}, notFound.IDs)
	require.Equal(t, models.ItemAvailable, itemStatus(t, r, 101))
}

func TestReserveBatch_RejectsBadTarget(t *testing.T) {
	r := newTestRepo(t)
	seedInventory(t, r, 101)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		_, err := r.ReserveBatch(context.Background(), tx, []int64{101}, models.ItemAvailable)
		return err
	})
	require.Error(t, err)
	require.Equal(t, models.ItemAvailable, itemStatus(t, r, 101))
}

func TestReleaseBatch(t *testing.T) {
	r := newTestRepo(t)
	seedInventory(t, r, 101, 102)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		_, err := r.ReserveBatch(context.Background(), tx, []int64{101, 102}, models.ItemRented)
		return err
	})
	require.NoError(t, err)

	err = r.DB.Transaction(func(tx *gorm.DB) error {
		return r.ReleaseBatch(context.Background(), tx, []int64{101, 102})
	})
	require.NoError(t, err)
	require.Equal(t, models.ItemAvailable, itemStatus(t, r, 101))
	require.Equal(t, models.ItemAvailable, itemStatus(t, r, 102))
}

func TestReleaseBatch_UnknownID(t *testing.T) {
	r := newTestRepo(t)
	seedInventory(t, r, 101)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return r.ReleaseBatch(context.Background(), tx, []int64{101, 404})
	})
	var notFound *ItemsNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, []int64{404}, notFound.IDs)
}

func TestDeleteInventoryItem_RefusesReferenced(t *testing.T) {
	r := newTestRepo(t)
	seedInventory(t, r, 101)

	_, err := r.CreateRental(context.Background(), CreateRentalInput{
		CustomerID: 7,
		ItemIDs:    []int64{101},
	})
	require.NoError(t, err)

	err = r.DeleteInventoryItem(context.Background(), 101)
	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)

	// 没被引用的可以删
	require.NoError(t, r.DB.Create(&models.InventoryItem{
		ID: 102, MovieID: 11, FormatID: 1, LocationID: 3,
		Status: models.ItemAvailable,
	}).Error)
	require.NoError(t, r.DeleteInventoryItem(context.Background(), 102))
}

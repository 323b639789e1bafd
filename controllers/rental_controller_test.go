package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie_rental_api/db"
	"movie_rental_api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 测试路由不挂认证中间件，只验证请求→状态码/响应的映射。
func newTestRouter(t *testing.T) (*gin.Engine, *db.Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctl_%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(gdb))

	repo := db.NewRepo(gdb)
	s := &Srv{Repo: repo}
	rentalCtl := NewRentalController(s)
	invCtl := NewInventoryController(s)

	r := gin.New()
	r.POST("/api/rentals", rentalCtl.CreateRental)
	r.POST("/api/reservations", rentalCtl.CreateReservation)
	r.GET("/api/rentals/:id", rentalCtl.GetRental)
	r.GET("/api/rentals/:id/details", rentalCtl.GetRentalDetails)
	r.GET("/api/inventory/:id", invCtl.GetItem)
	return r, repo
}

func seedRentable(t *testing.T, repo *db.Repo, itemIDs ...int64) {
	t.Helper()
	require.NoError(t, repo.DB.Create(&models.Location{ID: 3, Address: "Nørregade 10", City: "Copenhagen"}).Error)
	require.NoError(t, repo.DB.Create(&models.Movie{ID: 11, Title: "Babette's Feast", ReleaseYear: 1987, RuntimeMin: 103}).Error)
	require.NoError(t, repo.DB.Create(&models.Format{ID: 1, Format: "DVD"}).Error)
	require.NoError(t, repo.DB.Create(&models.Customer{
		ID: 7, FirstName: "Karen", LastName: "Blixen",
		Email: "karen@example.dk", PhoneNumber: "+4512345678",
	}).Error)
	for _, id := range itemIDs {
		require.NoError(t, repo.DB.Create(&models.InventoryItem{
			ID: id, MovieID: 11, FormatID: 1, LocationID: 3,
			Status: models.ItemAvailable,
		}).Error)
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRentalEndpoint_Created(t *testing.T) {
	r, repo := newTestRouter(t)
	seedRentable(t, repo, 101, 102)

	w := doJSON(t, r, http.MethodPost, "/api/rentals", gin.H{
		"customer_id": 7,
		"inventory_items": []gin.H{
			{"item_id": 101},
			{"item_id": 102},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Rental
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, int64(7), got.CustomerID)
	require.Equal(t, int64(3), got.LocationID)
	require.Equal(t, models.RentalOpen, got.Status)
	require.NotNil(t, got.RentedAt)
	require.NotNil(t, got.DueAt)
	require.Len(t, got.Items, 2)
	require.Equal(t, int64(101), got.Items[0].InventoryItemID)

	// 库存同步翻转
	iw := doJSON(t, r, http.MethodGet, "/api/inventory/101", nil)
	require.Equal(t, http.StatusOK, iw.Code)
	var it models.InventoryItem
	require.NoError(t, json.Unmarshal(iw.Body.Bytes(), &it))
	require.Equal(t, models.ItemRented, it.Status)
}

func TestCreateRentalEndpoint_DuplicateItems(t *testing.T) {
	r, repo := newTestRouter(t)
	seedRentable(t, repo, 101)

	w := doJSON(t, r, http.MethodPost, "/api/rentals", gin.H{
		"customer_id": 7,
		"inventory_items": []gin.H{
			{"item_id": 101},
			{"item_id": 101},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "duplicate inventory item 101")
}

func TestCreateRentalEndpoint_MissingCustomer(t *testing.T) {
	r, repo := newTestRouter(t)
	seedRentable(t, repo, 101)

	w := doJSON(t, r, http.MethodPost, "/api/rentals", gin.H{
		"inventory_items": []gin.H{{"item_id": 101}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRentalEndpoint_ItemNotFound(t *testing.T) {
	r, repo := newTestRouter(t)
	seedRentable(t, repo, 101)

	w := doJSON(t, r, http.MethodPost, "/api/rentals", gin.H{
		"customer_id": 7,
		"inventory_items": []gin.H{
			{"item_id": 101},
			{"item_id": 999},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "not found: 999")
}

func TestCreateRentalEndpoint_ItemNotAvailable(t *testing.T) {
	r, repo := newTestRouter(t)
	seedRentable(t, repo, 101)
	require.NoError(t, repo.DB.Model(&models.InventoryItem{}).
		Where("id = ?", 101).
		Update("status", models.ItemRented).Error)

	w := doJSON(t, r, http.MethodPost, "/api/rentals", gin.H{
		"customer_id":     7,
		"inventory_items": []gin.H{{"item_id": 101}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "not available: 101")
}

func TestCreateReservationEndpoint(t *testing.T) {
	r, repo := newTestRouter(t)
	seedRentable(t, repo, 201)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", gin.H{
		"customer_id":     7,
		"inventory_items": []gin.H{{"item_id": 201}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Rental
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, models.RentalReserved, got.Status)
	require.NotNil(t, got.ReservedAt)
	require.Nil(t, got.RentedAt)
	require.Nil(t, got.DueAt)
}

func TestGetRentalEndpoint_NotFound(t *testing.T) {
	r, repo := newTestRouter(t)
	seedRentable(t, repo)

	w := doJSON(t, r, http.MethodGet, "/api/rentals/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/rentals/not-a-number", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRentalDetailsEndpoint(t *testing.T) {
	r, repo := newTestRouter(t)
	seedRentable(t, repo, 101, 102)

	w := doJSON(t, r, http.MethodPost, "/api/rentals", gin.H{
		"customer_id": 7,
		"inventory_items": []gin.H{
			{"item_id": 102},
			{"item_id": 101},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Rental
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	dw := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/rentals/%d/details", created.ID), nil)
	require.Equal(t, http.StatusOK, dw.Code)
	var got models.Rental
	require.NoError(t, json.Unmarshal(dw.Body.Bytes(), &got))
	require.Len(t, got.Items, 2)
	require.Equal(t, int64(102), got.Items[0].InventoryItemID)
	require.Equal(t, int64(101), got.Items[1].InventoryItemID)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"movie_rental_api/app"
	"movie_rental_api/db"
	"movie_rental_api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InventoryController struct{ *Srv }

func NewInventoryController(s *Srv) *InventoryController { return &InventoryController{Srv: s} }

// 管理员上架一份拷贝
func (ic *InventoryController) CreateItem(c *gin.Context) {
	var in struct {
		MovieID    int64 `json:"movie_id" binding:"required"`
		FormatID   int64 `json:"format_id" binding:"required"`
		LocationID int64 `json:"location_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	it := &models.InventoryItem{MovieID: in.MovieID, FormatID: in.FormatID, LocationID: in.LocationID}
	if err := ic.Repo.CreateInventoryItem(c.Request.Context(), it); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (ic *InventoryController) GetItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "bad item id"})
		return
	}
	it, err := ic.Repo.FindInventoryItemByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, it)
}

// 列表，可按门店/状态过滤 ?locationId=&status=
func (ic *InventoryController) ListItems(c *gin.Context) {
	var q db.InventoryQuery
	if v := c.Query("locationId"); v != "" {
		q.LocationID, _ = strconv.ParseInt(v, 10, 64)
	}
	q.Status = c.Query("status")
	items, err := ic.Repo.ListInventory(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"items": items})
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "bad item id"})
		return
	}
	if err := ic.Repo.DeleteInventoryItem(c.Request.Context(), id); err != nil {
		var invalid *db.InvalidRequestError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, app.H{"error": "Inventory item not found"})
		default:
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

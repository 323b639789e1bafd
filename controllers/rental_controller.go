// controllers/rental_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"movie_rental_api/app"
	"movie_rental_api/db"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RentalController struct{ *Srv }

func NewRentalController(s *Srv) *RentalController { return &RentalController{Srv: s} }

type rentalItemReq struct {
	ItemID int64 `json:"item_id" binding:"required"`
}

type createRentalReq struct {
	CustomerID  int64           `json:"customer_id" binding:"required"`
	EmployeeID  *int64          `json:"employee_id"`
	PromoCodeID *int64          `json:"promo_code_id"`
	Items       []rentalItemReq `json:"inventory_items" binding:"required"`
}

func (req *createRentalReq) toInput() db.CreateRentalInput {
	ids := make([]int64, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.ItemID)
	}
	return db.CreateRentalInput{
		CustomerID:  req.CustomerID,
		EmployeeID:  req.EmployeeID,
		PromoCodeID: req.PromoCodeID,
		ItemIDs:     ids,
	}
}

// 租借：占库存 + 建记录一体成败
func (rc *RentalController) CreateRental(c *gin.Context) {
	var req createRentalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rental, err := rc.Repo.CreateRental(c.Request.Context(), req.toInput())
	if err != nil {
		writeRentalErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// 预约：同上，但目标状态 RESERVED
func (rc *RentalController) CreateReservation(c *gin.Context) {
	var req createRentalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rental, err := rc.Repo.CreateReservation(c.Request.Context(), req.toInput())
	if err != nil {
		writeRentalErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// 错误分类 → 状态码。Ledger/Coordinator 的错误原样透传到这里才翻译。
func writeRentalErr(c *gin.Context, err error) {
	var invalid *db.InvalidRequestError
	var notFound *db.ItemsNotFoundError
	var notAvail *db.ItemsNotAvailableError
	switch {
	case errors.As(err, &invalid), errors.As(err, &notFound), errors.As(err, &notAvail):
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
	case errors.Is(err, db.ErrConcurrentModification):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}

func (rc *RentalController) GetRental(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "bad rental id"})
		return
	}
	rental, err := rc.Repo.FindRentalByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "Rental not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rental)
}

func (rc *RentalController) GetRentalDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "bad rental id"})
		return
	}
	rental, err := rc.Repo.FindRentalDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "Rental not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rental)
}

func (rc *RentalController) ListRentals(c *gin.Context) {
	var q db.RentalQuery
	if v := c.Query("customerId"); v != "" {
		q.CustomerID, _ = strconv.ParseInt(v, 10, 64)
	}
	q.Status = c.Query("status")
	rentals, err := rc.Repo.ListRentals(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"rentals": rentals})
}

// 店员视图：逾期未还
func (rc *RentalController) ListOverdue(c *gin.Context) {
	rentals, err := rc.Repo.ListOverdueRentals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"rentals": rentals})
}

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie_rental_api/models"

	"gorm.io/gorm"
)

// RentalPeriod 是固定的租期策略常量。
const RentalPeriod = 7 * 24 * time.Hour

// txTimeout：事务内拿不到锁/提交不了就整体放弃，等价于 ErrTxAborted。
const txTimeout = 5 * time.Second

type CreateRentalInput struct {
	CustomerID  int64
	EmployeeID  *int64
	PromoCodeID *int64
	ItemIDs     []int64 // 保序，行项按此顺序生成
}

func (in *CreateRentalInput) validate() error {
	if in.CustomerID == 0 {
		return &InvalidRequestError{Reason: "customer_id is required"}
	}
	if len(in.ItemIDs) == 0 {
		return &InvalidRequestError{Reason: "inventory_items must not be empty"}
	}
	seen := make(map[int64]bool, len(in.ItemIDs))
	for _, id := range in.ItemIDs {
		if seen[id] {
			return &InvalidRequestError{Reason: fmt.Sprintf("duplicate inventory item %d", id)}
		}
		seen[id] = true
	}
	return nil
}

// CreateRental 原子操作 = 占用全部库存 → 新建 rental + 行项，
// 任一步失败整体回滚，库存与租借记录要么一起落库要么都不落。
func (r *Repo) CreateRental(ctx context.Context, in CreateRentalInput) (*models.Rental, error) {
	return r.createRental(ctx, in, models.ItemRented, models.RentalOpen)
}

// CreateReservation 与 CreateRental 相同，只是目标状态是 RESERVED、
// 时间戳只写 reserved_at。
func (r *Repo) CreateReservation(ctx context.Context, in CreateRentalInput) (*models.Rental, error) {
	return r.createRental(ctx, in, models.ItemReserved, models.RentalReserved)
}

func (r *Repo) createRental(ctx context.Context, in CreateRentalInput, target models.ItemStatus, status models.RentalStatus) (*models.Rental, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	var rental *models.Rental
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snaps, err := r.ReserveBatch(ctx, tx, in.ItemIDs, target)
		if err != nil {
			return err
		}

		// 租借归属门店 = 首件库存所在门店。
		// 已知简化：跨门店批次不会被拒，整单记在第一件的门店下。
		first := snaps[in.ItemIDs[0]]

		now := time.Now().UTC()
		rec := &models.Rental{
			CustomerID:  in.CustomerID,
			LocationID:  first.LocationID,
			EmployeeID:  in.EmployeeID,
			PromoCodeID: in.PromoCodeID,
			Status:      status,
		}
		if status == models.RentalOpen {
			due := now.Add(RentalPeriod)
			rec.RentedAt = &now
			rec.DueAt = &due
		} else {
			rec.ReservedAt = &now
		}

		// rental id 由序列分配，杜绝 max+1 扫描的并发撞号
		if err := tx.Create(rec).Error; err != nil {
			return err
		}

		items := make([]models.RentalItem, 0, len(in.ItemIDs))
		for i, id := range in.ItemIDs {
			s := snaps[id]
			items = append(items, models.RentalItem{
				RentalID:        rec.ID,
				LineNo:          i + 1,
				InventoryItemID: id,
				MovieID:         s.MovieID,
				FormatID:        s.FormatID,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		rec.Items = items
		rental = rec
		return nil
	})
	if err != nil {
		return nil, coordinatorErr(err)
	}
	return rental, nil
}

// coordinatorErr 保留自家错误分类，其余（提交失败、超时、连接断）归为 ErrTxAborted。
func coordinatorErr(err error) error {
	var invalid *InvalidRequestError
	var notFound *ItemsNotFoundError
	var notAvail *ItemsNotAvailableError
	switch {
	case errors.As(err, &invalid), errors.As(err, &notFound), errors.As(err, &notAvail):
		return err
	case errors.Is(err, ErrConcurrentModification):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrTxAborted, err)
	}
}

// ── 租借查询 ─────────────────────────────────

func (r *Repo) FindRentalByID(ctx context.Context, id int64) (*models.Rental, error) {
	var rec models.Rental
	if err := r.DB.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindRentalDetail 带行项的完整视图，行项按行号排序。
func (r *Repo) FindRentalDetail(ctx context.Context, id int64) (*models.Rental, error) {
	var rec models.Rental
	if err := r.DB.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("line_no") }).
		First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

type RentalQuery struct {
	CustomerID int64
	Status     string
}

func (r *Repo) ListRentals(ctx context.Context, q RentalQuery) ([]models.Rental, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Rental{}).Order("id DESC")
	if q.CustomerID != 0 {
		tx = tx.Where("customer_id = ?", q.CustomerID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	var recs []models.Rental
	if err := tx.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ListOverdueRentals：到期未还的 OPEN 租借。
func (r *Repo) ListOverdueRentals(ctx context.Context) ([]models.Rental, error) {
	var recs []models.Rental
	err := r.DB.WithContext(ctx).
		Where("status = ? AND due_at < ?", models.RentalOpen, time.Now().UTC()).
		Order("due_at").
		Find(&recs).Error
	return recs, err
}

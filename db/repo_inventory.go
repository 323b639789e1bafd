package db

import (
	"context"
	"fmt"

	"movie_rental_api/models"

	"gorm.io/gorm"
)

// Inventory Ledger：库存可用状态的唯一写入口。
// ReserveBatch / ReleaseBatch 之外没有任何代码改 status。

// ReserveBatch 在调用方的事务 tx 内原子占用一批库存：
// 全部存在且 AVAILABLE 才会翻转到 target，否则整体失败、事务回滚。
// 读与写之间若有并发写入者抢先提交，条件 UPDATE 的行数就会对不上，
// 此时返回 ErrConcurrentModification（调用方可重试）。
// 返回每件的快照（movie/format/location），供租借行项落档。
func (r *Repo) ReserveBatch(ctx context.Context, tx *gorm.DB, itemIDs []int64, target models.ItemStatus) (map[int64]models.InventoryItem, error) {
	if len(itemIDs) == 0 {
		return nil, &InvalidRequestError{Reason: "no inventory items requested"}
	}
	if target != models.ItemRented && target != models.ItemReserved {
		return nil, fmt.Errorf("reserve batch: bad target status %q", target)
	}

	var items []models.InventoryItem
	if err := tx.WithContext(ctx).
		Where("id IN ?", itemIDs).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]models.InventoryItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	var missing, taken []int64
	for _, id := range itemIDs {
		it, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		if it.Status != models.ItemAvailable {
			taken = append(taken, id)
		}
	}
	if len(missing) > 0 {
		return nil, &ItemsNotFoundError{IDs: missing}
	}
	if len(taken) > 0 {
		return nil, &ItemsNotAvailableError{IDs: taken}
	}

	// 条件更新：status 仍是 AVAILABLE 的行才翻转。
	// 行数少于请求数 = 读后有人抢先占用。
	res := tx.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id IN ? AND status = ?", itemIDs, models.ItemAvailable).
		Update("status", target)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected != int64(len(itemIDs)) {
		return nil, ErrConcurrentModification
	}
	return byID, nil
}

// ReleaseBatch 把一批库存放回 AVAILABLE，归还/取消流程用。
func (r *Repo) ReleaseBatch(ctx context.Context, tx *gorm.DB, itemIDs []int64) error {
	if len(itemIDs) == 0 {
		return nil
	}
	res := tx.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id IN ?", itemIDs).
		Update("status", models.ItemAvailable)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(itemIDs)) {
		var found []int64
		if err := tx.WithContext(ctx).
			Model(&models.InventoryItem{}).
			Where("id IN ?", itemIDs).
			Pluck("id", &found).Error; err != nil {
			return err
		}
		known := make(map[int64]bool, len(found))
		for _, id := range found {
			known[id] = true
		}
		var missing []int64
		for _, id := range itemIDs {
			if !known[id] {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return &ItemsNotFoundError{IDs: missing}
		}
	}
	return nil
}

// ── 库存 CRUD（薄封装） ─────────────────────────────────

func (r *Repo) CreateInventoryItem(ctx context.Context, it *models.InventoryItem) error {
	if it.Status == "" {
		it.Status = models.ItemAvailable
	}
	return r.DB.WithContext(ctx).Create(it).Error
}

func (r *Repo) FindInventoryItemByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	var it models.InventoryItem
	if err := r.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

type InventoryQuery struct {
	LocationID int64
	Status     string
}

func (r *Repo) ListInventory(ctx context.Context, q InventoryQuery) ([]models.InventoryItem, error) {
	tx := r.DB.WithContext(ctx).Model(&models.InventoryItem{}).Order("id")
	if q.LocationID != 0 {
		tx = tx.Where("location_id = ?", q.LocationID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	var items []models.InventoryItem
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repo) DeleteInventoryItem(ctx context.Context, id int64) error {
	// 被行项引用的库存不许删
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&models.RentalItem{}).
		Where("inventory_item_id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return &InvalidRequestError{Reason: fmt.Sprintf("inventory item %d is referenced by rentals", id)}
	}
	res := r.DB.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

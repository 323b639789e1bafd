package models

import "time"

const InventoryItemTable = "inventory_item"

// ItemStatus 只有三个取值，状态机：
// AVAILABLE → RENTED / RESERVED（仅 Ledger 可写），反向仅 release。
type ItemStatus string

const (
	ItemAvailable ItemStatus = "AVAILABLE"
	ItemRented    ItemStatus = "RENTED"
	ItemReserved  ItemStatus = "RESERVED"
)

// InventoryItem 是某部电影在某门店、某介质上的一份实体拷贝。
type InventoryItem struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID    int64      `gorm:"not null;index" json:"movie_id"`
	FormatID   int64      `gorm:"not null" json:"format_id"`
	LocationID int64      `gorm:"not null;index" json:"location_id"`
	Status     ItemStatus `gorm:"size:20;not null;default:'AVAILABLE'" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (InventoryItem) TableName() string { return InventoryItemTable }

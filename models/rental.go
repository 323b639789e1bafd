package models

import "time"

const RentalTable = "rental"
const RentalItemTable = "rental_item"

type RentalStatus string

const (
	RentalReserved  RentalStatus = "RESERVED"
	RentalOpen      RentalStatus = "OPEN"
	RentalReturned  RentalStatus = "RETURNED"
	RentalLate      RentalStatus = "LATE"
	RentalCancelled RentalStatus = "CANCELLED"
)

// Rental 同时承载租借与预约，按 Status 区分。
// Items 在创建时快照固定，之后目录变更不影响历史记录。
type Rental struct {
	ID          int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  int64        `gorm:"not null;index" json:"customer_id"`
	LocationID  int64        `gorm:"not null" json:"location_id"`
	EmployeeID  *int64       `json:"employee_id,omitempty"`
	PromoCodeID *int64       `json:"promo_code_id,omitempty"`
	Status      RentalStatus `gorm:"size:20;not null;index" json:"status"`

	ReservedAt *time.Time `json:"reserved_at,omitempty"`
	RentedAt   *time.Time `json:"rented_at,omitempty"`
	DueAt      *time.Time `gorm:"index" json:"due_at,omitempty"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []RentalItem `gorm:"foreignKey:RentalID" json:"items,omitempty"`
}

// RentalItem 行号从 1 起，(RentalID, LineNo) 即行项 ID。
// MovieID/FormatID 为创建时从库存复制的快照。
type RentalItem struct {
	RentalID        int64 `gorm:"primaryKey;autoIncrement:false" json:"rental_id"`
	LineNo          int   `gorm:"primaryKey;autoIncrement:false" json:"line_no"`
	InventoryItemID int64 `gorm:"not null;index" json:"inventory_item_id"`
	MovieID         int64 `gorm:"not null" json:"movie_id"`
	FormatID        int64 `gorm:"not null" json:"format_id"`
}

func (Rental) TableName() string     { return RentalTable }
func (RentalItem) TableName() string { return RentalItemTable }

// Active 表示仍占用库存的状态（非终态）。
func (s RentalStatus) Active() bool {
	return s == RentalReserved || s == RentalOpen || s == RentalLate
}

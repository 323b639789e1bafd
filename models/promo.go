package models

import "time"

const PromoCodeTable = "promo_code"

type PromoCode struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code         string    `gorm:"size:255;uniqueIndex;not null" json:"code"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	PercentOff   *float64  `json:"percent_off,omitempty"`
	AmountOffDKK *float64  `json:"amount_off_dkk,omitempty"`
	StartsAt     time.Time `gorm:"not null" json:"starts_at"`
	EndsAt       time.Time `gorm:"not null" json:"ends_at"`
}

func (PromoCode) TableName() string { return PromoCodeTable }

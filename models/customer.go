package models

import "time"

const CustomerTable = "customer"
const EmployeeTable = "employee"

type Customer struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"size:255;not null" json:"first_name"`
	LastName    string    `gorm:"size:255;not null" json:"last_name"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"size:15;uniqueIndex;not null" json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type Employee struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string `gorm:"size:255;not null" json:"first_name"`
	LastName    string `gorm:"size:255;not null" json:"last_name"`
	PhoneNumber string `gorm:"size:15;not null" json:"phone_number"`
	Email       string `gorm:"size:255;not null" json:"email"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
}

func (Customer) TableName() string { return CustomerTable }
func (Employee) TableName() string { return EmployeeTable }

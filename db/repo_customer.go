package db

import (
	"context"
	"strings"
	"time"

	"movie_rental_api/models"

	"gorm.io/gorm"
)

// Customers

func (r *Repo) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *Repo) FindCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

type ListCustomersResult struct {
	Customers []models.Customer `json:"customers"`
	Total     int64             `json:"total"`
}

// 分页 + 关键词（匹配姓名/邮箱）
func (r *Repo) ListCustomers(ctx context.Context, q string, page, size int) (ListCustomersResult, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	tx := r.DB.WithContext(ctx).Model(&models.Customer{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListCustomersResult{}, err
	}

	var cs []models.Customer
	if err := tx.
		Order("id").
		Offset((page - 1) * size).
		Limit(size).
		Find(&cs).Error; err != nil {
		return ListCustomersResult{}, err
	}
	return ListCustomersResult{Customers: cs, Total: total}, nil
}

func (r *Repo) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	return r.DB.WithContext(ctx).Save(c).Error
}

func (r *Repo) DeleteCustomer(ctx context.Context, id int64) error {
	res := r.DB.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Employees

func (r *Repo) FindEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	var e models.Employee
	if err := r.DB.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var es []models.Employee
	err := r.DB.WithContext(ctx).Order("id").Find(&es).Error
	return es, err
}

// API users

func (r *Repo) CreateApiUser(ctx context.Context, u *models.ApiUser) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *Repo) FindApiUserByID(ctx context.Context, id int64) (*models.ApiUser, error) {
	var u models.ApiUser
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindApiUserByUsername(ctx context.Context, username string) (*models.ApiUser, error) {
	var u models.ApiUser
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) TouchApiUserSeen(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Model(&models.ApiUser{}).
		Where("id = ?", id).
		Update("last_seen_at", time.Now().UTC()).Error
}

// Package orderrepo provides data transfer objects and mapping functions for
// order persistence.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// CreatedAt is filled by the column default, never by GORM, and is read back
// after every insert.
type OrderDTO struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     int64     `gorm:"not null;index"`
	TotalPrice float64   `gorm:"type:double precision;not null;check:check_total_price_non_negative,total_price >= 0"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now();autoCreateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
	}
}

func toDomain(dto *OrderDTO) *order.Order {
	id := dto.ID
	return &order.Order{
		ID:         &id,
		UserID:     dto.UserID,
		TotalPrice: dto.TotalPrice,
		CreatedAt:  dto.CreatedAt,
	}
}

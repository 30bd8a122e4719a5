package productrepo

import (
	"shop/internal/core/domain/model/product"
)

// ProductDTO is the storage shape of a product. The case-insensitive unique
// index on name and the owner foreign key are created by the migrations
// package since struct tags cannot express them.
type ProductDTO struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description string  `gorm:"type:varchar(255);not null;default:''"`
	Price       float64 `gorm:"type:double precision;not null;check:check_price_non_negative,price >= 0"`
	Stock       int     `gorm:"not null;check:check_stock_non_negative,stock >= 0"`
	OwnerID     *int64  `gorm:"index"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		OwnerID:     p.OwnerID,
	}
}

func toDomain(dto *ProductDTO) *product.Product {
	id := dto.ID
	return &product.Product{
		ID:          &id,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Stock:       dto.Stock,
		OwnerID:     dto.OwnerID,
	}
}

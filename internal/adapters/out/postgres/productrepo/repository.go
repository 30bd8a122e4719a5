// Package productrepo persists products. Product names are unique without
// regard to case, so every name comparison goes through lower().
package productrepo

import (
	"context"

	"shop/internal/adapters/out/postgres/gormrepo"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "product"

var _ ports.ProductRepository = (*GormProductRepository)(nil)

type GormProductRepository struct {
	base *gormrepo.Repository[ProductDTO, product.Product]
}

func NewGormProductRepository(db *gorm.DB, session *gormrepo.Session, opts ...gormrepo.Option) *GormProductRepository {
	return &GormProductRepository{
		base: gormrepo.New(db, session, entity, toDomain, opts...),
	}
}

func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) (*product.Product, error) {
	if p.ID != nil {
		return nil, errs.NewValueIsInvalidError("id")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(p)
	return r.base.Save(ctx, "add", &dto, func(tx *gorm.DB, row *ProductDTO) error {
		var n int64
		if err := tx.Model(&ProductDTO{}).Where("lower(name) = lower(?)", row.Name).Count(&n).Error; err != nil {
			return err
		}

		if n > 0 {
			return errs.NewObjectAlreadyExistsError("name", row.Name)
		}

		return tx.Create(row).Error
	})
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	return r.base.Exec(ctx, gormrepo.OpDelete, id, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", id).Delete(&ProductDTO{})
	})
}

func (r *GormProductRepository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	return r.base.Exec(ctx, "update_price", id, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&ProductDTO{}).Where("id = ?", id).Update("price", price)
	})
}

func (r *GormProductRepository) UpdateStock(ctx context.Context, id int64, stock int) error {
	return r.base.Exec(ctx, "update_stock", id, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&ProductDTO{}).Where("id = ?", id).Update("stock", stock)
	})
}

func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	return r.base.FetchOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

func (r *GormProductRepository) GetByName(ctx context.Context, name string) (*product.Product, error) {
	return r.base.FetchOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("lower(name) = lower(?)", name)
	})
}

func (r *GormProductRepository) ListAll(
	ctx context.Context,
	filter ports.ProductFilter,
	page ports.Page,
) ([]*product.Product, error) {
	return r.base.FetchMany(ctx, filtered(filter), page)
}

func (r *GormProductRepository) CountAll(ctx context.Context, filter ports.ProductFilter) (int64, error) {
	return r.base.Count(ctx, filtered(filter))
}

func filtered(filter ports.ProductFilter) gormrepo.Query {
	return func(db *gorm.DB) *gorm.DB {
		if filter.NameContains != "" {
			db = db.Where("name ILIKE ?", gormrepo.ContainsPattern(filter.NameContains))
		}
		if filter.MinPrice != nil {
			db = db.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("price <= ?", *filter.MaxPrice)
		}
		if filter.OwnerID != nil {
			db = db.Where("owner_id = ?", *filter.OwnerID)
		}

		return db
	}
}

package orderrepo

import (
	"context"

	"shop/internal/adapters/out/postgres/gormrepo"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "order"

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	base *gormrepo.Repository[OrderDTO, order.Order]
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, session *gormrepo.Session, opts ...gormrepo.Option) *GormOrderRepository {
	return &GormOrderRepository{
		base: gormrepo.New(db, session, entity, toDomain, opts...),
	}
}

// Add saves a new order and returns it with the server-assigned creation
// time. The existence of the user is checked by the caller, and an order
// that already carries an ID is rejected.
func (r *GormOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	if o.ID != nil {
		return nil, errs.NewValueIsInvalidError("id")
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(o)
	return r.base.Save(ctx, "add", &dto, func(tx *gorm.DB, row *OrderDTO) error {
		return tx.Omit("CreatedAt").Create(row).Error
	})
}

// Delete removes an order by ID.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	return r.base.Exec(ctx, gormrepo.OpDelete, id, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", id).Delete(&OrderDTO{})
	})
}

// UpdateTotal replaces the order total. Setting the current value again
// still counts as a matched row.
func (r *GormOrderRepository) UpdateTotal(ctx context.Context, id int64, total float64) error {
	return r.base.Exec(ctx, "update_total", id, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&OrderDTO{}).Where("id = ?", id).Update("total_price", total)
	})
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.base.FetchOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

// ListAll retrieves orders, optionally for one user.
func (r *GormOrderRepository) ListAll(
	ctx context.Context,
	filter ports.OrderFilter,
	page ports.Page,
) ([]*order.Order, error) {
	return r.base.FetchMany(ctx, filtered(filter), page)
}

func (r *GormOrderRepository) CountAll(ctx context.Context, filter ports.OrderFilter) (int64, error) {
	return r.base.Count(ctx, filtered(filter))
}

func filtered(filter ports.OrderFilter) gormrepo.Query {
	return func(db *gorm.DB) *gorm.DB {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}

		return db
	}
}

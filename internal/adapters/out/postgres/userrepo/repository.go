package userrepo

import (
	"context"

	"shop/internal/adapters/out/postgres/gormrepo"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "user"

var _ ports.UserRepository = (*GormUserRepository)(nil)

// GormUserRepository implements ports.UserRepository. Passing a session binds
// it to a unit of work; a nil session makes every write commit on its own.
type GormUserRepository struct {
	base *gormrepo.Repository[UserDTO, user.User]
}

func NewGormUserRepository(db *gorm.DB, session *gormrepo.Session, opts ...gormrepo.Option) *GormUserRepository {
	return &GormUserRepository{
		base: gormrepo.New(db, session, entity, toDomain, opts...),
	}
}

// Add checks username and email inside the write's transaction before
// inserting. A concurrent insert that slips past the check is still reported
// as a conflict by the unique indexes. IDs come from the users sequence only.
func (r *GormUserRepository) Add(ctx context.Context, u *user.User) (*user.User, error) {
	if u.ID != nil {
		return nil, errs.NewValueIsInvalidError("id")
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(u)
	return r.base.Save(ctx, "add", &dto, func(tx *gorm.DB, row *UserDTO) error {
		if err := ensureFree(tx, "username", row.Username); err != nil {
			return err
		}
		if err := ensureFree(tx, "email", row.Email); err != nil {
			return err
		}

		return tx.Create(row).Error
	})
}

func ensureFree(tx *gorm.DB, column, value string) error {
	var n int64
	if err := tx.Model(&UserDTO{}).Where(column+" = ?", value).Count(&n).Error; err != nil {
		return err
	}

	if n > 0 {
		return errs.NewObjectAlreadyExistsError(column, value)
	}

	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	return r.base.Exec(ctx, gormrepo.OpDelete, id, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", id).Delete(&UserDTO{})
	})
}

func (r *GormUserRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	return r.base.Exec(ctx, "update_email", id, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&UserDTO{}).Where("id = ?", id).Update("email", email)
	})
}

func (r *GormUserRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	return r.base.Exec(ctx, "update_username", id, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&UserDTO{}).Where("id = ?", id).Update("username", username)
	})
}

func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	return r.base.FetchOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

// GetByUsername matches the username exactly, case included.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.base.FetchOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("username = ?", username)
	})
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.base.FetchOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	})
}

func (r *GormUserRepository) ListAll(ctx context.Context, filter ports.UserFilter, page ports.Page) ([]*user.User, error) {
	return r.base.FetchMany(ctx, filtered(filter), page)
}

func (r *GormUserRepository) CountAll(ctx context.Context, filter ports.UserFilter) (int64, error) {
	return r.base.Count(ctx, filtered(filter))
}

func filtered(filter ports.UserFilter) gormrepo.Query {
	return func(db *gorm.DB) *gorm.DB {
		if filter.UsernameContains != "" {
			db = db.Where("username ILIKE ?", gormrepo.ContainsPattern(filter.UsernameContains))
		}
		if filter.EmailContains != "" {
			db = db.Where("email ILIKE ?", gormrepo.ContainsPattern(filter.EmailContains))
		}

		return db
	}
}

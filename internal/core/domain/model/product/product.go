package product

import (
	"errors"
	"unicode/utf8"

	"shop/internal/pkg/errs"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 255
)

// Product is an item offered for sale. OwnerID is nil for products that
// were not created by a particular user.
type Product struct {
	ID          *int64
	Name        string
	Description string
	Price       float64
	Stock       int
	OwnerID     *int64
}

func New(name, description string, price float64, stock int, ownerID *int64) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		OwnerID:     ownerID,
	}
}

func (p *Product) IsPersisted() bool {
	return p.ID != nil
}

// IsOwnedBy reports whether userID may manage the product. Unowned products
// are managed by any user.
func (p *Product) IsOwnedBy(userID int64) bool {
	return p.OwnerID == nil || *p.OwnerID == userID
}

// Validate checks structural shape only.
func (p *Product) Validate() error {
	var nameErr error
	switch n := utf8.RuneCountInString(p.Name); {
	case n == 0:
		nameErr = errs.NewValueIsRequiredError("name")
	case n > MaxNameLength:
		nameErr = errs.NewValueIsOutOfRangeError("name", n, 1, MaxNameLength)
	}

	var descriptionErr error
	if n := utf8.RuneCountInString(p.Description); n > MaxDescriptionLength {
		descriptionErr = errs.NewValueIsOutOfRangeError("description", n, 0, MaxDescriptionLength)
	}

	return errors.Join(nameErr, descriptionErr)
}

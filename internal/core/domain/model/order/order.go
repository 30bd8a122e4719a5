package order

import (
	"time"

	"shop/internal/pkg/errs"
)

type Order struct {
	ID         *int64
	UserID     int64
	TotalPrice float64
	CreatedAt  time.Time
}

func New(userID int64, totalPrice float64) *Order {
	return &Order{
		UserID:     userID,
		TotalPrice: totalPrice,
	}
}

func (o *Order) IsPersisted() bool {
	return o.ID != nil
}

// IsOwnedBy reports whether the order was placed by userID.
func (o *Order) IsOwnedBy(userID int64) bool {
	return o.UserID == userID
}

func (o *Order) Validate() error {
	if o.UserID <= 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	return nil
}

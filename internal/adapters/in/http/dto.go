package http

import (
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/model/user"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email"    validate:"omitempty,email,max=100"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"max=255"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Stock       *int     `json:"stock"       validate:"required,gte=0"`
}

type updateProductRequest struct {
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock *int     `json:"stock" validate:"omitempty,gte=0"`
}

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	OwnerID     *int64  `json:"owner_id,omitempty"`
}

type createOrderRequest struct {
	UserID     int64    `json:"user_id"     validate:"required,gt=0"`
	TotalPrice *float64 `json:"total_price" validate:"required,gte=0"`
}

type updateOrderRequest struct {
	TotalPrice *float64 `json:"total_price" validate:"required,gte=0"`
}

type orderResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func idOf(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{ID: idOf(u.ID), Username: u.Username, Email: u.Email}
}

func toProductResponse(p *product.Product) productResponse {
	return productResponse{
		ID:          idOf(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		OwnerID:     p.OwnerID,
	}
}

func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:         idOf(o.ID),
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
}

func mapAll[T, R any](items []*T, convert func(*T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}

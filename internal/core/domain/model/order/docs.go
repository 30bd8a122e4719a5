// Package order defines the Order entity.
//
// An order belongs to exactly one user. The user must exist when the order is
// created, and a user cannot be removed while any of their orders remain.
// CreatedAt is assigned by the store and becomes visible after the insert.
package order

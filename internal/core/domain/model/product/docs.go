// Package product defines the Product entity.
//
// Product names are unique when compared case-insensitively. That rule, the
// non-negative price and stock, and the owner reference are all backed by
// storage constraints created by the migrations package.
package product

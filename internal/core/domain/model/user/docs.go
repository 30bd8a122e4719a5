// Package user defines the User entity of the shop.
//
// A user is a plain record: the persistence layer assigns its identifier and
// the storage engine enforces uniqueness of both username and email. The
// entity itself only checks structural shape (required fields present and
// within column limits); business rules belong to the command constructors.
package user

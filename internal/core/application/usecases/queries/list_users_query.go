package queries

import (
	"errors"

	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"
	"shop/internal/pkg/guard"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves one page of users together with the number of
// users matching the same filter.
//
// Example:
//
//	query := NewListUsersQuery(2, 50, ports.UserFilter{UsernameContains: "jane"})
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("showing %d of %d users\n", len(result.Users), result.Total)
type ListUsersQuery struct {
	filter ports.UserFilter
	page   ports.Page

	guard guard.ConstructorGuard
}

// NewListUsersQuery turns 1-based page numbers into a window. perPage is
// capped at MaxPerPage.
func NewListUsersQuery(page, perPage int, filter ports.UserFilter) ListUsersQuery {
	return ListUsersQuery{
		filter: filter,
		page:   newPage(page, perPage),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Filter() ports.UserFilter {
	return q.filter
}

func (q ListUsersQuery) Page() ports.Page {
	return q.page
}

// ListUsersQueryResponse holds one page and the total match count.
type ListUsersQueryResponse struct {
	Users []*user.User
	Total int64
}

func newPage(page, perPage int) ports.Page {
	return ports.NewPage(page, min(perPage, MaxPerPage), DefaultPerPage)
}

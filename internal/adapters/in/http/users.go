package http

import (
	"net/http"
	"strconv"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const headerTotalCount = "X-Total-Count"

// createUser handles POST /users. Registration does not need a token.
func (s *Server) createUser(c echo.Context) error {
	var req createUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	created, err := s.useCases.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(created))
}

// listUsers handles GET /users?page=&per_page=&username=&email=.
func (s *Server) listUsers(c echo.Context) error {
	var filter ports.UserFilter
	params, err := bindList(c, func(b *echo.ValueBinder) {
		b.String("username", &filter.UsernameContains).String("email", &filter.EmailContains)
	})
	if err != nil {
		return err
	}

	result, err := s.useCases.ListUsers.Handle(
		c.Request().Context(),
		queries.NewListUsersQuery(params.page, params.perPage, filter),
	)
	if err != nil {
		return err
	}

	c.Response().Header().Set(headerTotalCount, strconv.FormatInt(result.Total, 10))
	return c.JSON(http.StatusOK, mapAll(result.Users, toUserResponse))
}

func (s *Server) getUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(id)
	if err != nil {
		return err
	}

	found, err := s.useCases.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(found))
}

func (s *Server) updateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserCommand(actorID(c), id, req.Username, req.Email)
	if err != nil {
		return err
	}

	if err = s.useCases.UpdateUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteUserCommand(actorID(c), id)
	if err != nil {
		return err
	}

	if err = s.useCases.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

package http

import (
	"net/http"

	"shop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// login handles POST /login.
func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	query, err := queries.NewAuthenticateUserQuery(req.Username, req.Password)
	if err != nil {
		return err
	}

	result, err := s.useCases.Authenticate.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: result.Token, ExpiresAt: result.ExpiresAt})
}

package http

import (
	"net/http"
	"strconv"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/ports"

	"github.com/labstack/echo/v4"
)

func (s *Server) createOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(actorID(c), req.UserID, *req.TotalPrice)
	if err != nil {
		return err
	}

	created, err := s.useCases.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

// listOrders handles GET /orders?user_id=.
func (s *Server) listOrders(c echo.Context) error {
	var userID int64
	params, err := bindList(c, func(b *echo.ValueBinder) {
		b.Int64("user_id", &userID)
	})
	if err != nil {
		return err
	}

	result, err := s.useCases.ListOrders.Handle(
		c.Request().Context(),
		queries.NewListOrdersQuery(params.page, params.perPage, ports.OrderFilter{UserID: optional(c, "user_id", userID)}),
	)
	if err != nil {
		return err
	}

	c.Response().Header().Set(headerTotalCount, strconv.FormatInt(result.Total, 10))
	return c.JSON(http.StatusOK, mapAll(result.Orders, toOrderResponse))
}

func (s *Server) getOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	found, err := s.useCases.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(found))
}

func (s *Server) updateOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(actorID(c), id, *req.TotalPrice)
	if err != nil {
		return err
	}

	if err = s.useCases.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(actorID(c), id)
	if err != nil {
		return err
	}

	if err = s.useCases.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

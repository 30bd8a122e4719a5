package http

import (
	"net/http"
	"strconv"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/ports"

	"github.com/labstack/echo/v4"
)

func (s *Server) createProduct(c echo.Context) error {
	var req createProductRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(actorID(c), req.Name, req.Description, *req.Price, *req.Stock)
	if err != nil {
		return err
	}

	created, err := s.useCases.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProductResponse(created))
}

// listProducts handles GET /products?name=&min_price=&max_price=&owner_id=.
func (s *Server) listProducts(c echo.Context) error {
	var (
		filter             ports.ProductFilter
		minPrice, maxPrice float64
		ownerID            int64
	)
	params, err := bindList(c, func(b *echo.ValueBinder) {
		b.String("name", &filter.NameContains).
			Float64("min_price", &minPrice).
			Float64("max_price", &maxPrice).
			Int64("owner_id", &ownerID)
	})
	if err != nil {
		return err
	}
	filter.MinPrice = optional(c, "min_price", minPrice)
	filter.MaxPrice = optional(c, "max_price", maxPrice)
	filter.OwnerID = optional(c, "owner_id", ownerID)

	query, err := queries.NewListProductsQuery(params.page, params.perPage, filter)
	if err != nil {
		return err
	}

	result, err := s.useCases.ListProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	c.Response().Header().Set(headerTotalCount, strconv.FormatInt(result.Total, 10))
	return c.JSON(http.StatusOK, mapAll(result.Products, toProductResponse))
}

func (s *Server) getProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}

	found, err := s.useCases.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(found))
}

func (s *Server) updateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(actorID(c), id, req.Price, req.Stock)
	if err != nil {
		return err
	}

	if err = s.useCases.UpdateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(actorID(c), id)
	if err != nil {
		return err
	}

	if err = s.useCases.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

package http

import (
	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context) (int64, error) {
	var id int64
	err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError()
	return id, err
}

// bindBody decodes the JSON body into req and runs its validate tags.
func bindBody(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return err
	}
	return c.Validate(req)
}

type listParams struct {
	page    int
	perPage int
}

func bindList(c echo.Context, extra func(b *echo.ValueBinder)) (listParams, error) {
	var p listParams
	b := echo.QueryParamsBinder(c).
		Int("page", &p.page).
		Int("per_page", &p.perPage)
	if extra != nil {
		extra(b)
	}
	return p, b.BindError()
}

// optional returns a pointer to v only when the query parameter was sent.
func optional[T any](c echo.Context, name string, v T) *T {
	if !c.QueryParams().Has(name) {
		return nil
	}
	return &v
}

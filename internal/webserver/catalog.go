package webserver

import (
	"github.com/labstack/echo/v4"
)

func (s *WebServer) listProducts(c echo.Context) error {
	q := c.QueryParam("q")
	products := s.inventory.Search(q)
	return ok(c, map[string]interface{}{
		"products": products,
		"total":    len(products),
	})
}

func (s *WebServer) getProduct(c echo.Context) error {
	p, err := s.inventory.FindByID(c.Param("id"))
	if err != nil {
		return failStore(c, err)
	}
	return ok(c, p)
}

package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

type cartItemPayload struct {
	ProductID string      `json:"product_id"`
	Qty       interface{} `json:"qty"`
}

type cartView struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
	Total float64     `json:"total"`
}

func (s *WebServer) cartViewNow() cartView {
	return cartView{
		Items: s.cart.Items(),
		Count: s.cart.Count(),
		Total: s.cart.Total(),
	}
}

func (s *WebServer) getCart(c echo.Context) error {
	return ok(c, s.cartViewNow())
}

func (s *WebServer) addCartItem(c echo.Context) error {
	var payload cartItemPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart item")
	}
	if payload.ProductID == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "product_id is required")
	}

	// Coerce whatever the UI sent into a positive quantity; an omitted or
	// malformed qty means one unit, as the store page does.
	qty := cast.ToInt(payload.Qty)
	if qty < 1 {
		qty = 1
	}

	if err := s.cart.Add(payload.ProductID, qty); err != nil {
		return failStore(c, err)
	}
	return ok(c, s.cartViewNow())
}

func (s *WebServer) setCartItemQty(c echo.Context) error {
	var payload cartItemPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse quantity")
	}

	// Zero and negative quantities are legal here: they remove the line.
	qty := cast.ToInt(payload.Qty)
	if err := s.cart.SetQty(c.Param("id"), qty); err != nil {
		return failStore(c, err)
	}
	return ok(c, s.cartViewNow())
}

func (s *WebServer) removeCartItem(c echo.Context) error {
	if err := s.cart.Remove(c.Param("id")); err != nil {
		return failStore(c, err)
	}
	return ok(c, s.cartViewNow())
}

func (s *WebServer) clearCart(c echo.Context) error {
	if err := s.cart.Clear(); err != nil {
		return failStore(c, err)
	}
	return ok(c, s.cartViewNow())
}

package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *WebServer) checkout(c echo.Context) error {
	invoice, err := s.cart.Checkout()
	if err != nil {
		return failStore(c, err)
	}
	s.setLastInvoice(invoice)
	return ok(c, invoice)
}

func (s *WebServer) getInvoice(c echo.Context) error {
	invoice := s.LastInvoice()
	if invoice == nil {
		return fail(c, http.StatusNotFound, "NO_INVOICE", "No checkout has happened yet")
	}
	return ok(c, invoice)
}

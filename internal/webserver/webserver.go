// Package webserver exposes the storefront over HTTP: a JSON API for the
// catalog, the cart and checkout, plus the embedded single-page UI. It is
// a thin controller; all bookkeeping rules live in internal/store.
package webserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/gualmart/storefront/config"
	"github.com/gualmart/storefront/internal/app"
	"github.com/gualmart/storefront/internal/domain"
	"github.com/gualmart/storefront/internal/store"
	"github.com/gualmart/storefront/pkg/metrics"
)

type WebServer struct {
	cfg       *config.AppConfig
	root      *echo.Echo
	inventory *store.Inventory
	cart      *store.Cart

	invoiceMu   sync.Mutex
	lastInvoice *domain.Invoice
}

func New(application *app.Application) *WebServer {
	s := &WebServer{
		cfg:       application.Config(),
		inventory: application.Inventory(),
		cart:      application.Cart(),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			metrics.Incr(metrics.MetricHTTPRequests)
			return next(c)
		}
	})
	s.root = e
	s.initRoutes()
	return s
}

func (s *WebServer) initRoutes() {
	s.root.GET("/", s.indexPage)

	api := s.root.Group("/api")
	api.GET("/products", s.listProducts)
	api.GET("/products/:id", s.getProduct)
	api.GET("/cart", s.getCart)
	api.POST("/cart/items", s.addCartItem)
	api.PUT("/cart/items/:id", s.setCartItemQty)
	api.DELETE("/cart/items/:id", s.removeCartItem)
	api.DELETE("/cart", s.clearCart)
	api.POST("/checkout", s.checkout)
	api.GET("/invoice", s.getInvoice)
	api.GET("/invoice/pdf", s.invoicePDF)
	api.GET("/export/products.csv", s.exportProductsCSV)
}

// Start runs the HTTP listener until the context is cancelled.
func (s *WebServer) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.S().Infof("starting storefront web server on %s", addr)

	go func() {
		<-ctx.Done()
		_ = s.root.Shutdown(context.Background())
	}()

	err := s.root.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

type apiResponse struct {
	Code string      `json:"code"`
	Msg  string      `json:"msg,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, apiResponse{Code: "OK", Data: data})
}

func fail(c echo.Context, status int, code, msg string) error {
	return c.JSON(status, apiResponse{Code: code, Msg: msg})
}

// failStore maps bookkeeping errors onto the API error envelope. Business
// failures are client errors, never 5xx.
func failStore(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product or cart item not found")
	case errors.Is(err, store.ErrInsufficientStock):
		return fail(c, http.StatusConflict, "INSUFFICIENT_STOCK", "Not enough stock available")
	case errors.Is(err, store.ErrInvalidQuantity):
		return fail(c, http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be a positive integer")
	case errors.Is(err, store.ErrEmptyCart):
		return fail(c, http.StatusBadRequest, "EMPTY_CART", "The cart is empty")
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func (s *WebServer) setLastInvoice(inv *domain.Invoice) {
	s.invoiceMu.Lock()
	s.lastInvoice = inv
	s.invoiceMu.Unlock()
}

// LastInvoice returns the invoice of the most recent checkout, nil when
// none happened since startup.
func (s *WebServer) LastInvoice() *domain.Invoice {
	s.invoiceMu.Lock()
	defer s.invoiceMu.Unlock()
	return s.lastInvoice
}

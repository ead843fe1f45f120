package webserver

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static/index.html
var staticFS embed.FS

func (s *WebServer) indexPage(c echo.Context) error {
	data, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
	return c.HTMLBlob(http.StatusOK, data)
}

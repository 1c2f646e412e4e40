package sitemeta

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// renderHTML renders cmp into memory and only then writes it as a 200
// text/html response, so a failed render still reaches the error handler.
func renderHTML(c echo.Context, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return fmt.Errorf("sitemeta: render: %w", err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

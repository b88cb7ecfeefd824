package inkwell

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with the given status code. A
// content type set earlier in the chain is left alone; otherwise the
// response is HTML.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	res := c.Response()
	if res.Header().Get(echo.HeaderContentType) == "" {
		res.Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	res.WriteHeader(code)
	return cmp.Render(c.Request().Context(), res)
}

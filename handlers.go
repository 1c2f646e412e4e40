package sitemeta

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) handleExport(format Format) echo.HandlerFunc {
	return func(c echo.Context) error {
		var buf bytes.Buffer
		if err := Export(&buf, a.Meta, format); err != nil {
			return err
		}
		return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
	}
}

func (a *App) handleHead(c echo.Context) error {
	return renderHTML(c, Head(a.Meta, a.homePage()))
}

// handlePerson serves the author's Person JSON-LD, sameAs profiles included.
func (a *App) handlePerson(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/ld+json; charset=utf-8", []byte(PersonJsonLD(a.Meta)))
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes,omitempty"`
	Type  string `json:"type,omitempty"`
}

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description,omitempty"`
	Lang            string         `json:"lang,omitempty"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	ThemeColor      string         `json:"theme_color,omitempty"`
	BackgroundColor string         `json:"background_color,omitempty"`
	Icons           []manifestIcon `json:"icons,omitempty"`
}

// themeColors returns the manifest theme and background colours for t.
// A system theme leaves both to the browser.
func themeColors(t Theme) (string, string) {
	switch t {
	case ThemeDark:
		return "#111827", "#000000"
	case ThemeLight:
		return "#ffffff", "#ffffff"
	default:
		return "", ""
	}
}

func (a *App) manifest() webManifest {
	m := a.Meta
	short := m.HeaderTitle
	if short == "" {
		short = m.Title
	}
	themeColor, background := themeColors(m.Theme)
	wm := webManifest{
		Name:            m.Title,
		ShortName:       short,
		Description:     m.Description,
		Lang:            m.Language,
		StartURL:        "/",
		Display:         "standalone",
		ThemeColor:      themeColor,
		BackgroundColor: background,
	}
	if src := SafeURL(AbsoluteURL(m, m.SiteLogo)); src != "" {
		icon := manifestIcon{Src: src, Type: mime.TypeByExtension(path.Ext(src))}
		if a.logo != nil {
			icon.Sizes = fmt.Sprintf("%dx%d", a.logo.Width, a.logo.Height)
			icon.Type = "image/" + a.logo.Format
		}
		wm.Icons = append(wm.Icons, icon)
	}
	return wm
}

func (a *App) handleManifest(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/manifest+json; charset=utf-8")
	return c.JSON(http.StatusOK, a.manifest())
}

// handleRobots generates robots.txt from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	base := strings.TrimRight(a.Meta.SiteURL, "/")
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", base)
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

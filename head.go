package sitemeta

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// ColorScheme returns the value of the color-scheme meta tag for t.
func ColorScheme(t Theme) string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "light dark"
	}
}

// HomePage returns the PageMeta of the site's landing page.
func HomePage(meta SiteMetadata) PageMeta {
	return PageMeta{
		Title:       meta.Title,
		Description: meta.Description,
		URL:         BuildURL(meta.SiteURL),
		OGType:      "website",
	}
}

// Head returns a templ.Component rendering the <head> tags a page needs:
// title, description, canonical link, OpenGraph and Twitter cards, the
// colour scheme, rel="me" profile links and the WebSite JSON-LD block.
// Empty page fields fall back to the site-wide values.
func Head(meta SiteMetadata, page PageMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		bw := bufio.NewWriter(w)
		writeHead(bw, meta, page)
		return bw.Flush()
	})
}

func writeHead(w *bufio.Writer, meta SiteMetadata, page PageMeta) {
	title := page.Title
	if title == "" {
		title = meta.Title
	} else if meta.Title != "" && title != meta.Title {
		title += " | " + meta.Title
	}
	description := page.Description
	if description == "" {
		description = meta.Description
	}
	canonical := page.URL
	if canonical == "" {
		canonical = BuildURL(meta.SiteURL)
	}
	ogType := page.OGType
	if ogType == "" {
		ogType = "website"
	}
	image := page.Image
	if image == "" {
		image = meta.SocialBanner
	}
	image = SafeURL(AbsoluteURL(meta, image))

	e := templ.EscapeString[string]
	tag := func(attr, key, value string) {
		if value == "" {
			return
		}
		w.WriteString(`<meta ` + attr + `="` + e(key) + `" content="` + e(value) + `">` + "\n")
	}

	w.WriteString("<title>" + e(title) + "</title>\n")
	tag("name", "description", description)
	tag("name", "author", meta.Author)
	tag("name", "color-scheme", ColorScheme(meta.Theme))
	if href := SafeURL(canonical); href != "" {
		w.WriteString(`<link rel="canonical" href="` + e(href) + `">` + "\n")
	}

	tag("property", "og:title", title)
	tag("property", "og:description", description)
	tag("property", "og:url", SafeURL(canonical))
	tag("property", "og:type", ogType)
	tag("property", "og:site_name", meta.Title)
	tag("property", "og:locale", ogLocale(meta.Locale))
	tag("property", "og:image", image)
	if page.ImageWidth > 0 && page.ImageHeight > 0 {
		tag("property", "og:image:width", strconv.Itoa(page.ImageWidth))
		tag("property", "og:image:height", strconv.Itoa(page.ImageHeight))
	}

	tag("name", "twitter:card", "summary_large_image")
	tag("name", "twitter:title", title)
	tag("name", "twitter:description", description)
	tag("name", "twitter:image", image)

	for _, l := range SocialLinks(meta) {
		if l.Name == "mail" {
			continue
		}
		if href := SafeURL(l.URL); href != "" {
			w.WriteString(`<link rel="me" href="` + e(href) + `">` + "\n")
		}
	}

	// json.Marshal escapes <, > and &, so the block cannot close the script early.
	w.WriteString(`<script type="application/ld+json">` + WebsiteJsonLD(meta) + "</script>\n")
}

// ogLocale converts "en-US" to the OpenGraph form "en_US".
func ogLocale(locale string) string {
	return strings.ReplaceAll(locale, "-", "_")
}

package sitemeta

// Theme is the colour scheme the site renders with by default.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
)

// Themes lists every accepted Theme value.
func Themes() []Theme {
	return []Theme{ThemeSystem, ThemeDark, ThemeLight}
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeSystem, ThemeDark, ThemeLight:
		return true
	}
	return false
}

// SiteMetadata is the site-wide configuration record read by the site
// generator's templates. Field names on the wire are fixed by the tags.
type SiteMetadata struct {
	Title        string `json:"title" yaml:"title"`
	Author       string `json:"author" yaml:"author"`
	HeaderTitle  string `json:"headerTitle" yaml:"headerTitle"`
	Description  string `json:"description" yaml:"description"`
	Language     string `json:"language" yaml:"language"`
	Theme        Theme  `json:"theme" yaml:"theme"`
	SiteURL      string `json:"siteUrl" yaml:"siteUrl"`
	SiteRepo     string `json:"siteRepo" yaml:"siteRepo"`
	SiteLogo     string `json:"siteLogo" yaml:"siteLogo"`
	SocialBanner string `json:"socialBanner" yaml:"socialBanner"`
	Mastodon     string `json:"mastodon" yaml:"mastodon"`
	Email        string `json:"email" yaml:"email"`
	GitHub       string `json:"github" yaml:"github"`
	LinkedIn     string `json:"linkedin" yaml:"linkedin"`
	Instagram    string `json:"instagram" yaml:"instagram"`
	Locale       string `json:"locale" yaml:"locale"`
}

// Field is a single wire-name/value pair of a SiteMetadata.
type Field struct {
	Name  string
	Value string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> fragment.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, defaults to the site's socialBanner
	ImageWidth  int
	ImageHeight int
}

// SocialLink is a named profile link rendered in headers, footers and JSON-LD.
type SocialLink struct {
	Name string
	URL  string
}

// ImageInfo describes a probed local image asset.
type ImageInfo struct {
	Path   string
	Format string
	Width  int
	Height int
}

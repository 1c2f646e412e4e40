package sitemeta

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AbsoluteURL resolves ref (for example siteLogo or socialBanner) against
// meta.SiteURL. Absolute refs are returned unchanged.
func AbsoluteURL(meta SiteMetadata, ref string) string {
	if ref == "" {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil || r.IsAbs() {
		return ref
	}
	base, err := url.Parse(meta.SiteURL)
	if err != nil || !base.IsAbs() {
		return ref
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(r).String()
}

// SocialLinks returns the configured profile links in display order,
// skipping empty ones. The email address is turned into a mailto link.
func SocialLinks(meta SiteMetadata) []SocialLink {
	candidates := []SocialLink{
		{Name: "mastodon", URL: meta.Mastodon},
		{Name: "github", URL: meta.GitHub},
		{Name: "linkedin", URL: meta.LinkedIn},
		{Name: "instagram", URL: meta.Instagram},
	}
	var links []SocialLink
	for _, l := range candidates {
		if strings.TrimSpace(l.URL) != "" {
			links = append(links, l)
		}
	}
	if email := strings.TrimSpace(meta.Email); email != "" {
		links = append(links, SocialLink{Name: "mail", URL: "mailto:" + email})
	}
	return links
}

// SafeURL returns raw when it is a rooted path or an http(s)/mailto URL,
// and "" otherwise.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") && !strings.HasPrefix(val, "//") {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto":
		return val
	default:
		return ""
	}
}

func person(meta SiteMetadata) map[string]interface{} {
	p := map[string]interface{}{
		"@type": "Person",
		"name":  meta.Author,
	}
	var sameAs []string
	for _, l := range SocialLinks(meta) {
		if l.Name == "mail" {
			continue
		}
		if u := SafeURL(l.URL); u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if u := SafeURL(meta.SiteRepo); u != "" {
		sameAs = append(sameAs, u)
	}
	if len(sameAs) > 0 {
		p["sameAs"] = sameAs
	}
	return p
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(meta SiteMetadata) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     meta.Title,
		"url":      BuildURL(meta.SiteURL),
	}
	if meta.Description != "" {
		data["description"] = meta.Description
	}
	if meta.Language != "" {
		data["inLanguage"] = meta.Language
	}
	if meta.Author != "" {
		data["author"] = person(meta)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// PersonJsonLD returns a JSON-LD string for the site author as a Person,
// linking every social profile through sameAs.
func PersonJsonLD(meta SiteMetadata) string {
	data := person(meta)
	data["@context"] = "https://schema.org"
	data["url"] = BuildURL(meta.SiteURL)
	if meta.Email != "" {
		data["email"] = "mailto:" + meta.Email
	}
	if logo := AbsoluteURL(meta, meta.SiteLogo); logo != "" {
		data["image"] = logo
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

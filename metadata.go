package sitemeta

// Default returns the site's built-in metadata. Each call builds a fresh
// value, so callers can never observe each other's copies.
func Default() SiteMetadata {
	return SiteMetadata{
		Title:        "Chalvin Wiradhika",
		Author:       "Chalvin Wiradhika",
		HeaderTitle:  "Chalvin Wiradhika",
		Description:  "Chalvin Wiradhika's Website",
		Language:     "en-us",
		Theme:        ThemeSystem,
		SiteURL:      "https://chalvinwz.vercel.app",
		SiteRepo:     "https://github.com/chalvinwz/personal-website",
		SiteLogo:     "/static/images/logo.png",
		SocialBanner: "/static/images/twitter-card.png",
		Mastodon:     "https://mastodon.social/@mastodonuser",
		Email:        "chalvinwz@gmail.com",
		GitHub:       "https://github.com/chalvinwz",
		LinkedIn:     "https://www.linkedin.com/in/chalvinwiradhika/",
		Instagram:    "https://www.instagram.com/chalvinwz",
		Locale:       "en-US",
	}
}

// Fields returns every field as wire-name/value pairs in declaration order.
func (m SiteMetadata) Fields() []Field {
	return []Field{
		{"title", m.Title},
		{"author", m.Author},
		{"headerTitle", m.HeaderTitle},
		{"description", m.Description},
		{"language", m.Language},
		{"theme", string(m.Theme)},
		{"siteUrl", m.SiteURL},
		{"siteRepo", m.SiteRepo},
		{"siteLogo", m.SiteLogo},
		{"socialBanner", m.SocialBanner},
		{"mastodon", m.Mastodon},
		{"email", m.Email},
		{"github", m.GitHub},
		{"linkedin", m.LinkedIn},
		{"instagram", m.Instagram},
		{"locale", m.Locale},
	}
}

// overlay copies every non-empty field of src onto m.
func (m *SiteMetadata) overlay(src SiteMetadata) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&m.Title, src.Title)
	set(&m.Author, src.Author)
	set(&m.HeaderTitle, src.HeaderTitle)
	set(&m.Description, src.Description)
	set(&m.Language, src.Language)
	if src.Theme != "" {
		m.Theme = src.Theme
	}
	set(&m.SiteURL, src.SiteURL)
	set(&m.SiteRepo, src.SiteRepo)
	set(&m.SiteLogo, src.SiteLogo)
	set(&m.SocialBanner, src.SocialBanner)
	set(&m.Mastodon, src.Mastodon)
	set(&m.Email, src.Email)
	set(&m.GitHub, src.GitHub)
	set(&m.LinkedIn, src.LinkedIn)
	set(&m.Instagram, src.Instagram)
	set(&m.Locale, src.Locale)
}

package sitemeta

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func renderHead(t *testing.T, meta SiteMetadata, page PageMeta) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Head(meta, page).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestHeadHomePage(t *testing.T) {
	meta := Default()
	out := renderHead(t, meta, HomePage(meta))

	for _, want := range []string{
		"<title>Chalvin Wiradhika</title>",
		`<meta name="description" content="Chalvin Wiradhika&#39;s Website">`,
		`<meta name="color-scheme" content="light dark">`,
		`<link rel="canonical" href="https://chalvinwz.vercel.app">`,
		`<meta property="og:type" content="website">`,
		`<meta property="og:locale" content="en_US">`,
		`<meta property="og:image" content="https://chalvinwz.vercel.app/static/images/twitter-card.png">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<link rel="me" href="https://mastodon.social/@mastodonuser">`,
		`<script type="application/ld+json">{`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("head missing %s\n%s", want, out)
		}
	}
	if strings.Contains(out, "og:image:width") {
		t.Error("og:image:width should only appear when the banner size is known")
	}
	if strings.Contains(out, "mailto:") {
		t.Error("email should not be rendered as rel=me")
	}
}

func TestHeadArticlePage(t *testing.T) {
	meta := Default()
	meta.Theme = ThemeDark
	out := renderHead(t, meta, PageMeta{
		Title:       "Hello <World>",
		Description: "First post",
		URL:         BuildURL(meta.SiteURL, "blog", "hello"),
		OGType:      "article",
		Image:       "/static/images/hello.png",
		ImageWidth:  1200,
		ImageHeight: 630,
	})

	for _, want := range []string{
		"<title>Hello &lt;World&gt; | Chalvin Wiradhika</title>",
		`<meta name="description" content="First post">`,
		`<meta name="color-scheme" content="dark">`,
		`<link rel="canonical" href="https://chalvinwz.vercel.app/blog/hello/">`,
		`<meta property="og:type" content="article">`,
		`<meta property="og:image" content="https://chalvinwz.vercel.app/static/images/hello.png">`,
		`<meta property="og:image:width" content="1200">`,
		`<meta property="og:image:height" content="630">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("head missing %s\n%s", want, out)
		}
	}
}

func TestHeadDropsUnsafeLinks(t *testing.T) {
	meta := Default()
	meta.GitHub = "javascript:alert(1)"
	out := renderHead(t, meta, HomePage(meta))
	if strings.Contains(out, "javascript:") {
		t.Errorf("unsafe link rendered:\n%s", out)
	}
}

func TestColorScheme(t *testing.T) {
	tests := []struct {
		theme Theme
		want  string
	}{
		{ThemeSystem, "light dark"},
		{ThemeDark, "dark"},
		{ThemeLight, "light"},
		{"", "light dark"},
	}
	for _, tt := range tests {
		if got := ColorScheme(tt.theme); got != tt.want {
			t.Errorf("ColorScheme(%q) = %q, want %q", tt.theme, got, tt.want)
		}
	}
}

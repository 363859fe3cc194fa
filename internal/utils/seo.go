package utils

import (
	"cuisto-web/domain"
	"strings"
)

// LocalizedURL joins the site url, locale and a path such as "/recipes".
func LocalizedURL(siteURL, locale, path string) string {
	return strings.TrimRight(siteURL, "/") + "/" + locale + path
}

// BuildSEO fills the canonical link of path for locale and one alternate
// per supported locale.
func BuildSEO(siteURL, locale, path, title, description, ogType string, images []string) domain.SEO {
	alternates := make(map[string]string, len(domain.SupportedLocales))
	for _, l := range domain.SupportedLocales {
		alternates[l] = LocalizedURL(siteURL, l, path)
	}
	if images == nil {
		images = []string{}
	}
	return domain.SEO{
		Title:       title,
		Description: description,
		Canonical:   LocalizedURL(siteURL, locale, path),
		Alternates:  alternates,
		OGLocale:    domain.OGLocale(locale),
		OGType:      ogType,
		Images:      images,
	}
}

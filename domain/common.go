package domain

import (
	"errors"
)

const (
	LocaleEN      = "en"
	LocaleFR      = "fr"
	DefaultLocale = LocaleEN
)

var (
	SupportedLocales = []string{LocaleEN, LocaleFR}

	MessageSuccessPing          = "pong"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedQueryParams    = "invalid query parameters"
	MessageFailedUnknownLocale  = "unknown locale"

	ErrUnknownLocale   = errors.New("unknown locale")
	ErrInvalidPage     = errors.New("invalid page")
	ErrStoreNotReady   = errors.New("data store not configured")
	ErrInvalidCategory = errors.New("invalid category id")
)

type (
	// SEO carries the canonical link and per-locale alternates of a page.
	SEO struct {
		Title       string            `json:"title"`
		Description string            `json:"description"`
		Canonical   string            `json:"canonical"`
		Alternates  map[string]string `json:"alternates"`
		OGLocale    string            `json:"og_locale"`
		OGType      string            `json:"og_type"`
		Images      []string          `json:"images"`
	}

	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}
)

// OGLocale maps a site locale to its OpenGraph locale.
func OGLocale(locale string) string {
	if locale == LocaleFR {
		return "fr_FR"
	}
	return "en_US"
}

func IsSupportedLocale(locale string) bool {
	for _, l := range SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

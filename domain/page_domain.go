package domain

import "errors"

var (
	MessageSuccessGetPage = "success get page"
	MessageFailedGetPage  = "page not found"
	MessageStoreNotReady  = "data store not configured"

	ErrPageNotFound = errors.New("page not found")
)

// LegalPage is the metadata of a static legal page. Its body is owned by
// the presentation layer.
type LegalPage struct {
	Title       string
	Description string
}

var LegalPages = map[string]LegalPage{
	"privacy": {
		Title:       "Privacy Policy | Cuistudio",
		Description: "Privacy Policy for Cuistudio - Learn how we collect, use, and protect your personal information.",
	},
	"terms": {
		Title:       "Terms and Conditions | Cuisto",
		Description: "Terms and Conditions for Cuisto - Read our terms of service and usage policies.",
	},
}

type PageResponse struct {
	Page string `json:"page"`
	SEO  SEO    `json:"seo"`
}

// Package sitemap renders sitemap.xml for every locale of the site.
package sitemap

import (
	"context"
	"cuisto-web/domain"
	"cuisto-web/internal/utils"
	"cuisto-web/pkg/blog"
	"cuisto-web/pkg/recipe"
	"encoding/xml"
	"github.com/rs/zerolog"
	"strconv"
	"time"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type (
	Page struct {
		Path       string
		Priority   float64
		ChangeFreq string
	}

	URL struct {
		Loc        string `xml:"loc"`
		LastMod    string `xml:"lastmod"`
		ChangeFreq string `xml:"changefreq"`
		Priority   string `xml:"priority"`
	}

	URLSet struct {
		XMLName xml.Name `xml:"urlset"`
		Xmlns   string   `xml:"xmlns,attr"`
		URLs    []URL    `xml:"url"`
	}

	SitemapService interface {
		Build(ctx context.Context) URLSet
		Render(ctx context.Context) ([]byte, error)
	}

	sitemapService struct {
		recipeRepository recipe.RecipeRepository
		blogRepository   blog.BlogRepository
		siteURL          string
		logger           zerolog.Logger
		now              func() time.Time
	}
)

var StaticPages = []Page{
	{Path: "", Priority: 1.0, ChangeFreq: "weekly"},
	{Path: "/privacy", Priority: 0.3, ChangeFreq: "monthly"},
	{Path: "/terms", Priority: 0.3, ChangeFreq: "monthly"},
	{Path: "/recipes", Priority: 0.9, ChangeFreq: "daily"},
	{Path: "/blog", Priority: 0.8, ChangeFreq: "weekly"},
}

func NewSitemapService(recipeRepository recipe.RecipeRepository, blogRepository blog.BlogRepository, siteURL string, logger zerolog.Logger) SitemapService {
	return &sitemapService{
		recipeRepository: recipeRepository,
		blogRepository:   blogRepository,
		siteURL:          siteURL,
		logger:           logger.With().Str("component", "sitemap").Logger(),
		now:              time.Now,
	}
}

// Build lists static pages, then recipes, then blog posts, each once per
// locale. A failing dynamic group is logged and left out.
func (s *sitemapService) Build(ctx context.Context) URLSet {
	now := s.now()
	set := URLSet{Xmlns: xmlns, URLs: []URL{}}

	for _, page := range StaticPages {
		set.URLs = append(set.URLs, s.localized(page.Path, now, page.ChangeFreq, page.Priority)...)
	}

	if s.recipeRepository != nil {
		recipes, err := s.recipeRepository.GetPublishedSlugs(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("recipe slugs unavailable, sitemap lists static pages only")
		}
		for _, r := range recipes {
			if r.Slug == nil || *r.Slug == "" {
				continue
			}
			set.URLs = append(set.URLs, s.localized("/recipes/"+*r.Slug, lastModified(r.UpdatedAt, now), "weekly", 0.8)...)
		}
	}

	if s.blogRepository != nil {
		posts, err := s.blogRepository.GetPublishedSlugs(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("blog slugs unavailable, sitemap lists static pages only")
		}
		for _, p := range posts {
			set.URLs = append(set.URLs, s.localized("/blog/"+p.Slug, lastModified(p.UpdatedAt, now), "monthly", 0.7)...)
		}
	}

	return set
}

func (s *sitemapService) Render(ctx context.Context) ([]byte, error) {
	body, err := xml.MarshalIndent(s.Build(ctx), "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func (s *sitemapService) localized(path string, modified time.Time, changeFreq string, priority float64) []URL {
	urls := make([]URL, 0, len(domain.SupportedLocales))
	for _, locale := range domain.SupportedLocales {
		urls = append(urls, URL{
			Loc:        utils.LocalizedURL(s.siteURL, locale, path),
			LastMod:    modified.UTC().Format(time.RFC3339),
			ChangeFreq: changeFreq,
			Priority:   strconv.FormatFloat(priority, 'f', 1, 64),
		})
	}
	return urls
}

func lastModified(t, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t
}

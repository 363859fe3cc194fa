package handlers

import (
	"cuisto-web/domain"
	"cuisto-web/internal/api/presenters"
	"cuisto-web/internal/middleware"
	"cuisto-web/internal/utils"
	"cuisto-web/pkg/sitemap"
	"github.com/gofiber/fiber/v2"
)

type (
	PageHandler interface {
		RedirectHome(c *fiber.Ctx) error
		Ping(c *fiber.Ctx) error
		GetLegalPage(c *fiber.Ctx) error
		GetSitemap(c *fiber.Ctx) error
	}

	pageHandler struct {
		sitemapService sitemap.SitemapService
		siteURL        string
	}
)

func NewPageHandler(sitemapService sitemap.SitemapService, siteURL string) PageHandler {
	return &pageHandler{
		sitemapService: sitemapService,
		siteURL:        siteURL,
	}
}

func (h *pageHandler) RedirectHome(c *fiber.Ctx) error {
	locale := middleware.NegotiateLocale("", c.Get(fiber.HeaderAcceptLanguage))
	return c.Redirect("/api/v1/"+locale+"/home", fiber.StatusTemporaryRedirect)
}

func (h *pageHandler) Ping(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPing)
}

func (h *pageHandler) GetLegalPage(c *fiber.Ctx) error {
	name := c.Params("page")
	page, ok := domain.LegalPages[name]
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPage, domain.ErrPageNotFound)
	}

	res := domain.PageResponse{
		Page: name,
		SEO:  utils.BuildSEO(h.siteURL, middleware.Locale(c), "/"+name, page.Title, page.Description, "website", nil),
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPage)
}

func (h *pageHandler) GetSitemap(c *fiber.Ctx) error {
	body, err := h.sitemapService.Render(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(body)
}

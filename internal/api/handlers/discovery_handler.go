package handlers

import (
	"cuisto-web/domain"
	"cuisto-web/internal/api/presenters"
	"cuisto-web/internal/middleware"
	"cuisto-web/internal/utils"
	"cuisto-web/pkg/discovery"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var homeSEO = map[string][2]string{
	domain.LocaleEN: {"Cuisto | Your recipes, organized", "Save recipes from videos, websites and photos, then cook them step by step."},
	domain.LocaleFR: {"Cuisto | Vos recettes, organisées", "Enregistrez vos recettes depuis des vidéos, des sites et des photos, puis cuisinez-les pas à pas."},
}

type (
	DiscoveryHandler interface {
		GetHome(c *fiber.Ctx) error
		GetDiscovery(c *fiber.Ctx) error
		GetPopularRecipes(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
	}

	discoveryHandler struct {
		discoveryService discovery.DiscoveryService
		validator        *validator.Validate
		siteURL          string
	}
)

func NewDiscoveryHandler(discoveryService discovery.DiscoveryService, validator *validator.Validate, siteURL string) DiscoveryHandler {
	return &discoveryHandler{
		discoveryService: discoveryService,
		validator:        validator,
		siteURL:          siteURL,
	}
}

func (h *discoveryHandler) GetHome(c *fiber.Ctx) error {
	locale := middleware.Locale(c)
	ctx := c.UserContext()

	var res domain.HomeResponse
	var g errgroup.Group
	g.Go(func() error {
		res.Discovery = h.discoveryService.GetDiscoverySections(ctx)
		return nil
	})
	g.Go(func() error {
		res.Categories = h.discoveryService.GetCategories(ctx)
		return nil
	})
	_ = g.Wait()

	text, ok := homeSEO[locale]
	if !ok {
		text = homeSEO[domain.DefaultLocale]
	}
	res.SEO = utils.BuildSEO(h.siteURL, locale, "", text[0], text[1], "website", nil)

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHome)
}

func (h *discoveryHandler) GetDiscovery(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.discoveryService.GetDiscoverySections(c.UserContext()), fiber.StatusOK, domain.MessageSuccessGetDiscovery)
}

func (h *discoveryHandler) GetPopularRecipes(c *fiber.Ctx) error {
	req := new(domain.PopularRecipesRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryParams, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryParams, err)
	}

	var categoryID *uuid.UUID
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryParams, domain.ErrInvalidCategory)
		}
		categoryID = &id
	}

	res := h.discoveryService.GetPopularRecipes(c.UserContext(), categoryID, req.Limit, req.Offset)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPopularRecipes)
}

func (h *discoveryHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.discoveryService.GetCategories(c.UserContext()), fiber.StatusOK, domain.MessageSuccessGetCategories)
}

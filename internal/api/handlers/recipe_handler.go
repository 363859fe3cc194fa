package handlers

import (
	"cuisto-web/domain"
	"cuisto-web/internal/api/presenters"
	"cuisto-web/internal/middleware"
	"cuisto-web/pkg/discovery"
	"cuisto-web/pkg/recipe"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"strings"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService    recipe.RecipeService
		discoveryService discovery.DiscoveryService
		validator        *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, discoveryService discovery.DiscoveryService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:    recipeService,
		discoveryService: discoveryService,
		validator:        validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	req := domain.RecipeListRequest{
		Category: strings.TrimSpace(c.Query("category")),
		Tag:      strings.TrimSpace(c.Query("tag")),
		Page:     c.QueryInt("page", 1),
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryParams, err)
	}

	res, err := h.recipeService.ListRecipes(c.UserContext(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	if !res.Filtering {
		sections := h.discoveryService.GetDiscoverySections(c.UserContext())
		res.Discovery = &sections
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeDetail(c.UserContext(), c.Params("slug"), middleware.Locale(c))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

package handlers

import (
	"cuisto-web/domain"
	"cuisto-web/internal/api/presenters"
	"cuisto-web/internal/middleware"
	"cuisto-web/pkg/blog"
	"errors"
	"github.com/gofiber/fiber/v2"
)

type (
	BlogHandler interface {
		GetPosts(c *fiber.Ctx) error
		GetPostDetail(c *fiber.Ctx) error
	}

	blogHandler struct {
		blogService blog.BlogService
	}
)

func NewBlogHandler(blogService blog.BlogService) BlogHandler {
	return &blogHandler{
		blogService: blogService,
	}
}

func (h *blogHandler) GetPosts(c *fiber.Ctx) error {
	res, err := h.blogService.ListPosts(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPosts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPosts)
}

func (h *blogHandler) GetPostDetail(c *fiber.Ctx) error {
	res, err := h.blogService.GetPost(c.UserContext(), c.Params("slug"), middleware.Locale(c))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPostDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPostDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPostDetail)
}

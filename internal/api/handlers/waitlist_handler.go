package handlers

import (
	"cuisto-web/domain"
	"cuisto-web/internal/api/presenters"
	"cuisto-web/pkg/waitlist"
	"errors"
	"github.com/gofiber/fiber/v2"
	"strings"
)

type (
	WaitlistHandler interface {
		Join(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
	}

	waitlistHandler struct {
		waitlistService waitlist.WaitlistService
	}
)

func NewWaitlistHandler(waitlistService waitlist.WaitlistService) WaitlistHandler {
	return &waitlistHandler{
		waitlistService: waitlistService,
	}
}

func (h *waitlistHandler) Join(c *fiber.Ctx) error {
	req := new(domain.WaitlistRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.waitlistService.Join(c.UserContext(), *req, domain.WaitlistClient{
		IP:        clientIP(c),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailRequired):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageEmailRequired, err)
		case errors.Is(err, domain.ErrEmailInvalid):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageEmailInvalid, err)
		case errors.Is(err, domain.ErrStoreNotReady):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageWaitlistUnavailable, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageWaitlistFailed, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, res.Message)
}

func (h *waitlistHandler) Unsubscribe(c *fiber.Ctx) error {
	err := h.waitlistService.Unsubscribe(c.UserContext(), c.Query("token"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUnsubscribeFailed, err)
		case errors.Is(err, domain.ErrStoreNotReady):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageWaitlistUnavailable, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageWaitlistFailed, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageUnsubscribed)
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		if first := strings.TrimSpace(strings.Split(forwarded, ",")[0]); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(c.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	return "unknown"
}

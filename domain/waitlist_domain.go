package domain

import "errors"

const DefaultWaitlistSource = "landing"

var (
	MessageWaitlistJoined      = "You're on the list! We'll let you know when Cuistudio is ready."
	MessageWaitlistAlready     = "You're already on the list! We'll be in touch soon."
	MessageWaitlistUnavailable = "Service temporarily unavailable. Please try again later."
	MessageWaitlistFailed      = "Something went wrong. Please try again."
	MessageEmailRequired       = "Email is required"
	MessageEmailInvalid        = "Please enter a valid email address"
	MessageUnsubscribed        = "You have been removed from the waitlist."
	MessageUnsubscribeFailed   = "This unsubscribe link is invalid or has expired."

	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("invalid email address")
	ErrAlreadyOnList = errors.New("email already on the waitlist")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)

type (
	WaitlistRequest struct {
		Email  string `json:"email"`
		Source string `json:"source"`
	}

	// WaitlistClient is request metadata recorded with a signup.
	WaitlistClient struct {
		IP        string
		UserAgent string
	}

	WaitlistResult struct {
		Message       string `json:"message"`
		AlreadyOnList bool   `json:"already_on_list"`
	}
)

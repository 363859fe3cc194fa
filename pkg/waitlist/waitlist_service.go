package waitlist

import (
	"context"
	"cuisto-web/domain"
	"cuisto-web/entities"
	"cuisto-web/internal/metrics"
	"cuisto-web/internal/utils"
	"cuisto-web/internal/utils/mailing"
	"cuisto-web/pkg/jwt"
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	maxSourceLength = 64
	welcomeSubject  = "Welcome to the Cuistudio waitlist"
)

type (
	WaitlistService interface {
		Join(ctx context.Context, req domain.WaitlistRequest, client domain.WaitlistClient) (domain.WaitlistResult, error)
		Unsubscribe(ctx context.Context, token string) error
	}

	// WaitlistDeps groups the collaborators of the waitlist. A nil
	// Repository means the data store is not configured.
	WaitlistDeps struct {
		Repository WaitlistRepository
		JWT        jwt.JWTService
		Mailer     mailing.Mailer
		Validator  *validator.Validate
		Logger     zerolog.Logger
		HashKey    string
		AppURL     string
	}

	waitlistService struct {
		waitlistRepository WaitlistRepository
		jwtService         jwt.JWTService
		mailer             mailing.Mailer
		validator          *validator.Validate
		logger             zerolog.Logger
		hashKey            []byte
		appURL             string

		// dispatch runs the welcome mail off the request path.
		dispatch func(func())
	}
)

func NewWaitlistService(deps WaitlistDeps) WaitlistService {
	v := deps.Validator
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &waitlistService{
		waitlistRepository: deps.Repository,
		jwtService:         deps.JWT,
		mailer:             deps.Mailer,
		validator:          v,
		logger:             deps.Logger.With().Str("component", "waitlist").Logger(),
		hashKey:            hashKey(deps.HashKey),
		appURL:             strings.TrimRight(deps.AppURL, "/"),
		dispatch:           func(f func()) { go f() },
	}
}

func (s *waitlistService) Join(ctx context.Context, req domain.WaitlistRequest, client domain.WaitlistClient) (domain.WaitlistResult, error) {
	email, err := s.normalizeEmail(req.Email)
	if err != nil {
		metrics.WaitlistSignups.WithLabelValues("invalid").Inc()
		return domain.WaitlistResult{}, err
	}
	if s.waitlistRepository == nil {
		metrics.WaitlistSignups.WithLabelValues("failed").Inc()
		return domain.WaitlistResult{}, domain.ErrStoreNotReady
	}

	ip := strings.TrimSpace(client.IP)
	if ip == "" {
		ip = "unknown"
	}
	userAgent := strings.TrimSpace(client.UserAgent)
	if userAgent == "" {
		userAgent = "unknown"
	}
	entry := &entities.WaitlistEntry{
		Email:     email,
		Source:    normalizeSource(req.Source),
		IPAddress: s.HashIP(ip),
		UserAgent: userAgent,
	}

	if err := s.waitlistRepository.CreateEntry(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrAlreadyOnList) {
			metrics.WaitlistSignups.WithLabelValues("duplicate").Inc()
			return domain.WaitlistResult{Message: domain.MessageWaitlistAlready, AlreadyOnList: true}, nil
		}
		metrics.WaitlistSignups.WithLabelValues("failed").Inc()
		s.logger.Error().Err(err).Msg("waitlist insert failed")
		return domain.WaitlistResult{}, err
	}

	metrics.WaitlistSignups.WithLabelValues("joined").Inc()
	s.sendWelcome(email)
	return domain.WaitlistResult{Message: domain.MessageWaitlistJoined}, nil
}

// Unsubscribe removes the address a valid token was issued for. Removing
// an address that is no longer on the list succeeds.
func (s *waitlistService) Unsubscribe(ctx context.Context, token string) error {
	if s.jwtService == nil {
		return domain.ErrTokenInvalid
	}
	email, err := s.jwtService.ValidateUnsubscribeToken(token)
	if err != nil {
		return err
	}
	if s.waitlistRepository == nil {
		return domain.ErrStoreNotReady
	}

	removed, err := s.waitlistRepository.DeleteByEmail(ctx, email)
	if err != nil {
		return err
	}
	s.logger.Info().Int64("removed", removed).Msg("waitlist unsubscribe")
	return nil
}

// HashIP returns the keyed BLAKE2b-256 digest of an address, hex encoded.
func (s *waitlistService) HashIP(ip string) string {
	h, err := blake2b.New256(s.hashKey)
	if err != nil {
		sum := blake2b.Sum256([]byte(ip))
		return hex.EncodeToString(sum[:])
	}
	h.Write([]byte(ip))
	return hex.EncodeToString(h.Sum(nil))
}

func (s *waitlistService) normalizeEmail(raw string) (string, error) {
	if raw == "" {
		return "", domain.ErrEmailRequired
	}
	// The pattern refuses whitespace, so padded input is invalid.
	if !utils.IsValidEmail(raw) {
		return "", domain.ErrEmailInvalid
	}
	email := strings.ToLower(raw)
	if err := s.validator.Var(email, "email,max=254"); err != nil {
		return "", domain.ErrEmailInvalid
	}
	return email, nil
}

func (s *waitlistService) sendWelcome(email string) {
	if s.mailer == nil || !s.mailer.Enabled() || s.jwtService == nil {
		return
	}

	s.dispatch(func() {
		token, err := s.jwtService.GenerateUnsubscribeToken(email, jwt.UnsubscribeTokenTTL)
		if err != nil {
			metrics.MailFailures.Inc()
			s.logger.Error().Err(err).Msg("unsubscribe token generation failed")
			return
		}
		if err := s.mailer.SendMail(email, welcomeSubject, s.welcomeBody(token)); err != nil {
			metrics.MailFailures.Inc()
			s.logger.Error().Err(err).Msg("welcome mail failed")
		}
	})
}

func (s *waitlistService) welcomeBody(token string) string {
	link := s.appURL + "/api/waitlist/unsubscribe?token=" + url.QueryEscape(token)
	return fmt.Sprintf(`<p>Thanks for joining the Cuistudio waitlist!</p>
<p>We'll let you know as soon as the app is ready.</p>
<p style="font-size:12px;color:#888">Not interested anymore? <a href="%s">Unsubscribe</a>.</p>`, link)
}

func normalizeSource(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return domain.DefaultWaitlistSource
	}
	if len(source) <= maxSourceLength {
		return source
	}
	n := maxSourceLength
	for n > 0 && !utf8.RuneStart(source[n]) {
		n--
	}
	return source[:n]
}

// hashKey fits the configured secret into a BLAKE2b key.
func hashKey(secret string) []byte {
	if secret == "" {
		return nil
	}
	if len(secret) <= blake2b.Size {
		return []byte(secret)
	}
	sum := blake2b.Sum512([]byte(secret))
	return sum[:]
}

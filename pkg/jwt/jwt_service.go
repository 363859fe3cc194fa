package jwt

import (
	"cuisto-web/domain"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"time"
)

const (
	purposeUnsubscribe = "waitlist_unsubscribe"

	// UnsubscribeTokenTTL is how long a welcome mail unsubscribe link stays valid.
	UnsubscribeTokenTTL = 30 * 24 * time.Hour
)

type (
	JWTService interface {
		GenerateUnsubscribeToken(email string, duration time.Duration) (string, error)
		ValidateUnsubscribeToken(token string) (string, error)
	}

	waitlistClaim struct {
		Email   string `json:"email"`
		Purpose string `json:"purpose"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "CUISTO",
		now:       time.Now,
	}
}

func (j *jwtService) GenerateUnsubscribeToken(email string, duration time.Duration) (string, error) {
	if j.secretKey == "" {
		return "", errors.New("jwt secret not configured")
	}
	now := j.now()
	claims := waitlistClaim{
		email,
		purposeUnsubscribe,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

// ValidateUnsubscribeToken returns the email the token was issued for.
func (j *jwtService) ValidateUnsubscribeToken(token string) (string, error) {
	if j.secretKey == "" || token == "" {
		return "", domain.ErrTokenInvalid
	}
	t_Token, err := jwt.ParseWithClaims(token, &waitlistClaim{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*waitlistClaim)
	if !ok || claims.Purpose != purposeUnsubscribe || claims.Issuer != j.issuer || claims.Email == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Email, nil
}

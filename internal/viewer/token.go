// Package viewer validates the storefront session tokens that identify who is
// looking at a list.
package viewer

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "babylist/pkg/domain-errors"
	"babylist/pkg/requestcontext"
)

// Claims are the storefront session claims.
type Claims struct {
	CustomerID string `json:"customer_id"`
	ListCode   string `json:"list_code,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and validates viewer tokens with a shared HMAC key.
type TokenService struct {
	signingKey []byte
	issuer     string
}

func NewTokenService(signingKey, issuer string) *TokenService {
	return &TokenService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
	}
}

// Issue signs a token for viewer. Used by the storefront and in tests.
func (s *TokenService) Issue(v requestcontext.ViewerInfo, expiresIn time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		CustomerID: v.ID,
		ListCode:   v.ListCode,
		CardNumber: v.CardNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

// Validate parses a token and returns the viewer it identifies.
func (s *TokenService) Validate(tokenString string) (requestcontext.ViewerInfo, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return requestcontext.ViewerInfo{}, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return requestcontext.ViewerInfo{}, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.CustomerID == "" {
		return requestcontext.ViewerInfo{}, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	return requestcontext.ViewerInfo{
		ID:         claims.CustomerID,
		ListCode:   claims.ListCode,
		CardNumber: claims.CardNumber,
	}, nil
}

package auth

import (
	"errors"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the access token payload.
type Claims struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	AreaID string `json:"area_id,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 access tokens.
type Issuer struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(key, issuer string, ttl time.Duration) *Issuer {
	return &Issuer{
		key:    []byte(key),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (i *Issuer) Issue(p domain.Principal) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)

	claims := Claims{
		Email:  p.Email,
		Role:   string(p.Role),
		AreaID: p.AreaID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   p.ID.String(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Parse validates a token and returns the principal it carries.
func (i *Issuer) Parse(tokenStr string) (domain.Principal, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return i.key, nil
	})
	if err != nil {
		return domain.Principal{}, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Principal{}, errors.New("invalid token")
	}
	if i.issuer != "" && claims.Issuer != i.issuer {
		return domain.Principal{}, errors.New("issuer mismatch")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Principal{}, errors.New("invalid subject")
	}

	return domain.Principal{
		ID:     id,
		Email:  claims.Email,
		Role:   domain.Role(claims.Role),
		AreaID: claims.AreaID,
	}, nil
}

package jwt

import (
	"errors"
	"time"

	"loginflow/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrWrongKind    = errors.New("unexpected token kind")
)

type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Kind  Kind   `json:"kind"`
	jwt.RegisteredClaims
}

// Pair is what a successful login hands back to the caller.
type Pair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type Subject struct {
	ID    string
	Email string
	Role  string
}

type Issuer struct {
	secretKey  []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      clock.Clock
}

func NewIssuer(secretKey, issuer string, accessTTL, refreshTTL time.Duration, clk clock.Clock) *Issuer {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Issuer{
		secretKey:  []byte(secretKey),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		clock:      clk,
	}
}

// IssuePair signs an access and a refresh token. refreshTTL overrides the
// issuer default when positive, which is how remember-me sessions last longer.
func (s *Issuer) IssuePair(sub Subject, refreshTTL time.Duration) (Pair, error) {
	if refreshTTL <= 0 {
		refreshTTL = s.refreshTTL
	}
	now := s.clock.Now()

	access, err := s.sign(sub, KindAccess, now, now.Add(s.accessTTL))
	if err != nil {
		return Pair{}, err
	}
	refreshExpiry := now.Add(refreshTTL)
	refresh, err := s.sign(sub, KindRefresh, now, refreshExpiry)
	if err != nil {
		return Pair{}, err
	}

	return Pair{AccessToken: access, RefreshToken: refresh, ExpiresAt: refreshExpiry}, nil
}

func (s *Issuer) sign(sub Subject, kind Kind, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		Email: sub.Email,
		Role:  sub.Role,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Validate checks signature, expiry and kind.
func (s *Issuer) Validate(tokenString string, want Kind) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != want {
		return nil, ErrWrongKind
	}

	return claims, nil
}

// Inspect decodes claims without verifying the signature. The gateway and
// CLI use it to read expiry from tokens they cannot verify.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

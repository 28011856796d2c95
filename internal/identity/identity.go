package identity

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"live-auction/internal/liveerrors"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the opaque caller behind a connection
type Identity struct {
	UserID   string
	Username string
	Guest    bool
}

// GuestIdentity is used for connections without a credential
func GuestIdentity() Identity {
	return Identity{Username: "guest", Guest: true}
}

// Claims represents JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Resolver turns a request credential into an Identity. A missing credential
// resolves to a guest; an invalid one is rejected.
type Resolver struct {
	secret []byte
}

// NewResolver creates an HS256 resolver. With an empty secret every
// credential is ignored and callers are guests.
func NewResolver(secret string) *Resolver {
	return &Resolver{secret: []byte(secret)}
}

// Anonymous reports whether no secret is configured, in which case every
// caller is a guest and guests declare who they bid for
func (r *Resolver) Anonymous() bool {
	return len(r.secret) == 0
}

// Resolve reads the token from the "token" query parameter or a Bearer header
func (r *Resolver) Resolve(req *http.Request) (Identity, error) {
	token := tokenFromRequest(req)
	if token == "" || len(r.secret) == 0 {
		return GuestIdentity(), nil
	}

	claims, err := r.validate(token)
	if err != nil {
		return Identity{}, err
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return Identity{}, fmt.Errorf("identity: %w - token carries no user", liveerrors.ErrUnauthorized)
	}

	username := claims.Username
	if username == "" {
		username = userID
	}
	return Identity{UserID: userID, Username: username}, nil
}

func (r *Resolver) validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("identity: %w - token has expired", liveerrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("identity: %w - invalid token", liveerrors.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("identity: %w - invalid token", liveerrors.ErrUnauthorized)
	}
	return claims, nil
}

// IssueToken signs a token for userID; used by tests and local tooling
func (r *Resolver) IssueToken(userID, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   userID,
		Username: username,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
}

func tokenFromRequest(req *http.Request) string {
	if token := req.URL.Query().Get("token"); token != "" {
		return token
	}
	auth := req.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

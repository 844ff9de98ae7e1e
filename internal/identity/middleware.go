package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"tiffin/internal/domain"
)

type contextKey struct{}

var actorKey contextKey

// ActorFrom returns the authenticated actor bound to ctx by Middleware.
func ActorFrom(ctx context.Context) (*domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(*domain.Actor)
	return actor, ok
}

// WithActor binds an actor to ctx. Exposed for tests and internal callers.
func WithActor(ctx context.Context, actor *domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// Middleware resolves the current actor from an HS256 bearer token. Requests
// without a valid token are rejected before any handler runs.
func Middleware(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				http.Error(w, `{"message":"missing bearer token"}`, http.StatusUnauthorized)
				return
			}

			actor, err := ParseToken(tokenString, secret)
			if err != nil {
				logger.Debug("rejecting token", zap.Error(err))
				http.Error(w, `{"message":"invalid token"}`, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// ParseToken validates tokenString and extracts the actor claims.
func ParseToken(tokenString, secret string) (*domain.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	actor := &domain.Actor{
		ID:    stringClaim(claims, "sub"),
		Name:  stringClaim(claims, "name"),
		Email: stringClaim(claims, "email"),
		Role:  domain.Role(stringClaim(claims, "role")),
	}
	if actor.ID == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}
	if !actor.Role.IsValid() {
		actor.Role = domain.RoleCustomer
	}

	return actor, nil
}

// RequireRole guards a route subtree. The switch over roles is exhaustive so
// adding a role forces a decision here.
func RequireRole(allowed ...domain.Role) func(http.Handler) http.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFrom(r.Context())
			if !ok {
				http.Error(w, `{"message":"missing actor"}`, http.StatusUnauthorized)
				return
			}

			switch actor.Role {
			case domain.RoleCustomer, domain.RoleRestaurant, domain.RoleDabbawala, domain.RoleAdmin:
				if _, ok := allowedSet[actor.Role]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, `{"message":"role not allowed"}`, http.StatusForbidden)
		})
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

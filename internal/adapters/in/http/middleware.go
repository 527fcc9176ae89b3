package http

import (
	"strings"

	"darkstore/internal/core/domain/model/user"
	"darkstore/internal/core/ports"
	"darkstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// authenticate resolves the bearer token to a stored profile and makes it
// available to handlers. The role is always read from the stored profile,
// never from anything the client sent.
func authenticate(gateway ports.AuthGateway, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				return writeError(ctx, errs.NewUnauthorizedError("missing bearer token"))
			}

			userID, err := gateway.ResolveToken(ctx.Request().Context(), token)
			if err != nil {
				return writeError(ctx, err)
			}

			profile, err := users.Get(ctx.Request().Context(), userID)
			if err != nil {
				return writeError(ctx, errs.NewUnauthorizedErrorWithCause("no profile for token", err))
			}

			ctx.Set(principalContextKey, profile)
			return next(ctx)
		}
	}
}

// principal returns the authenticated profile stashed by the middleware.
func principal(ctx echo.Context) *user.User {
	profile, _ := ctx.Get(principalContextKey).(*user.User)
	return profile
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

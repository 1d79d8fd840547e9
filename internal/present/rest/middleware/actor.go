package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/totegamma/logistics-backend/internal/domain"
)

var tracer = otel.Tracer("middleware")

const HeaderActor = "X-Actor"

// TokenVerifier turns a bearer token into the acting identity.
type TokenVerifier interface {
	Enabled() bool
	Actor(ctx context.Context, token string) (string, error)
}

type ActorMiddleware struct {
	auth         TokenVerifier
	defaultActor string
}

func NewActorMiddleware(auth TokenVerifier, defaultActor string) *ActorMiddleware {
	return &ActorMiddleware{
		auth:         auth,
		defaultActor: defaultActor,
	}
}

// IdentifyActor attributes the request to the subject of a valid bearer
// token, then to the X-Actor header, then to the configured default.
// An invalid token is not an error; the request simply falls through.
func (m *ActorMiddleware) IdentifyActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Actor.Middleware.IdentifyActor")
		defer span.End()

		actor := m.fromBearer(c, ctx)
		if actor == "" {
			actor = strings.TrimSpace(c.Request().Header.Get(HeaderActor))
		}
		if actor == "" {
			actor = m.defaultActor
		}

		span.SetAttributes(attribute.String("Actor", actor))
		ctx = domain.WithActor(ctx, actor)

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func (m *ActorMiddleware) fromBearer(c echo.Context, ctx context.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" || m.auth == nil || !m.auth.Enabled() {
		return ""
	}

	span := trace.SpanFromContext(ctx)
	split := strings.Split(authHeader, " ")
	if len(split) != 2 {
		span.RecordError(fmt.Errorf("invalid authentication header"))
		return ""
	}

	authType, token := split[0], split[1]
	if authType != "Bearer" {
		span.RecordError(fmt.Errorf("only Bearer is acceptable"))
		return ""
	}

	actor, err := m.auth.Actor(ctx, token)
	if err != nil {
		span.RecordError(errors.Wrap(err, "ActorMiddleware.IdentifyActor: auth.Actor failed"))
		return ""
	}
	return actor
}

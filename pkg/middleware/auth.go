package middleware

import (
	"context"
	"net/http"
	"strings"

	"pt-booking/internal/data/repository"
	"pt-booking/internal/policy"
	"pt-booking/pkg/utils"

	"go.uber.org/zap"
)

// Authenticator resolves the Bearer session token into an actor.
type Authenticator struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
	log      *zap.Logger
}

func NewAuthenticator(sessions repository.SessionRepository, users repository.UserRepository, log *zap.Logger) *Authenticator {
	return &Authenticator{
		sessions: sessions,
		users:    users,
		log:      log.With(zap.String("middleware", "auth")),
	}
}

// Require rejects requests without a valid session.
func (a *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			utils.ResponseUnauthorized(w, "Missing or invalid authorization token. Use: Bearer <token>")
			return
		}

		ctx, err := a.resolve(r.Context(), token)
		if err != nil {
			a.log.Error("Failed to validate session", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		if ctx == nil {
			utils.ResponseUnauthorized(w, "Invalid or expired session")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the actor when the session is valid and carries on
// anonymously otherwise.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := a.resolve(r.Context(), token)
		if err != nil {
			a.log.Warn("Optional session lookup failed", zap.Error(err))
		}
		if ctx == nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolve returns nil when the token names no live session of an
// active account.
func (a *Authenticator) resolve(ctx context.Context, token string) (context.Context, error) {
	session, err := a.sessions.FindValidSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		a.log.Debug("Invalid or expired session")
		return nil, nil
	}

	user, err := a.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		a.log.Warn("Session for missing or inactive user", zap.String("user_id", session.UserID.String()))
		return nil, nil
	}

	actor, err := policy.NewActor(user)
	if err != nil {
		a.log.Warn("Session user has no booking role",
			zap.String("user_id", user.ID.String()),
			zap.String("role", string(user.Role)))
		return nil, nil
	}

	ctx = utils.SetUserContext(ctx, user.ID)
	ctx = utils.SetTokenContext(ctx, token)
	return policy.WithActor(ctx, actor), nil
}

// RequireTrainer bounces clients back to their booking list.
func RequireTrainer(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := policy.ActorFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !policy.IsTrainer(actor) {
				log.Warn("Trainer-only route requested by client",
					zap.String("user_id", actor.ID().String()),
					zap.String("path", r.URL.Path))
				utils.ResponseRedirect(w, BookingsPath, "Only trainers can view this page")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// BookingsPath is where unauthorized booking actions are redirected
const BookingsPath = "/api/bookings"

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

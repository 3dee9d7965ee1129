package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pt-booking/internal/data/entity"
	repomocks "pt-booking/internal/mocks/repository"
	"pt-booking/internal/policy"
	"pt-booking/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	sessions *repomocks.MockSessionRepository
	users    *repomocks.MockUserRepository
	auth     *Authenticator
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &authFixture{
		sessions: repomocks.NewMockSessionRepository(ctrl),
		users:    repomocks.NewMockUserRepository(ctrl),
	}
	f.auth = NewAuthenticator(f.sessions, f.users, zap.NewNop())
	return f
}

func (f *authFixture) expectUser(token string, u *entity.User) {
	f.sessions.EXPECT().FindValidSession(gomock.Any(), token).
		Return(&entity.Session{UserID: u.ID}, nil)
	f.users.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil)
}

func user(role entity.UserRole) *entity.User {
	return &entity.User{
		Base:      entity.Base{ID: uuid.New()},
		Username:  "sean",
		FirstName: "Sean",
		LastName:  "Kelly",
		Email:     "sean@example.ie",
		Role:      role,
		IsActive:  true,
	}
}

// captureActor records what the downstream handler saw
func captureActor(seen *policy.Actor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen, _ = policy.ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func get(h http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequire_ResolvesActor(t *testing.T) {
	f := newAuthFixture(t)
	u := user(entity.RoleTrainer)
	f.expectUser("tok", u)

	var seen policy.Actor
	var token string
	h := f.auth.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = policy.ActorFromContext(r.Context())
		token, _ = utils.GetTokenFromContext(r.Context())
	}))

	rec := get(h, "bearer tok")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, policy.Trainer{UserID: u.ID, DisplayName: "Sean Kelly"}, seen)
	assert.Equal(t, "tok", token)
}

func TestRequire_Rejects(t *testing.T) {
	f := newAuthFixture(t)

	var seen policy.Actor
	h := f.auth.Require(captureActor(&seen))

	assert.Equal(t, http.StatusUnauthorized, get(h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(h, "Basic abc").Code)

	f.sessions.EXPECT().FindValidSession(gomock.Any(), "expired").Return(nil, nil)
	assert.Equal(t, http.StatusUnauthorized, get(h, "Bearer expired").Code)

	inactive := user(entity.RoleClient)
	inactive.IsActive = false
	f.expectUser("inactive", inactive)
	assert.Equal(t, http.StatusUnauthorized, get(h, "Bearer inactive").Code)

	f.sessions.EXPECT().FindValidSession(gomock.Any(), "boom").Return(nil, errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, get(h, "Bearer boom").Code)

	assert.Nil(t, seen)
}

func TestOptional_AnonymousPassesThrough(t *testing.T) {
	f := newAuthFixture(t)

	var seen policy.Actor
	h := f.auth.Optional(captureActor(&seen))

	assert.Equal(t, http.StatusOK, get(h, "").Code)
	assert.Nil(t, seen)

	f.sessions.EXPECT().FindValidSession(gomock.Any(), "boom").Return(nil, errors.New("db down"))
	assert.Equal(t, http.StatusOK, get(h, "Bearer boom").Code)
	assert.Nil(t, seen)

	u := user(entity.RoleClient)
	f.expectUser("tok", u)
	assert.Equal(t, http.StatusOK, get(h, "Bearer tok").Code)
	require.NotNil(t, seen)
	assert.False(t, policy.IsTrainer(seen))
}

func TestRequireTrainer(t *testing.T) {
	var seen policy.Actor
	h := RequireTrainer(zap.NewNop())(captureActor(&seen))

	assert.Equal(t, http.StatusUnauthorized, get(h, "").Code)

	client := policy.Client{UserID: uuid.New(), DisplayName: "Aoife Byrne"}
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req = req.WithContext(policy.WithActor(req.Context(), client))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, BookingsPath, rec.Header().Get("Location"))
	assert.Nil(t, seen)

	trainer := policy.Trainer{UserID: uuid.New(), DisplayName: "Sean Kelly"}
	req = httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req = req.WithContext(policy.WithActor(req.Context(), trainer))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, trainer, seen)
}

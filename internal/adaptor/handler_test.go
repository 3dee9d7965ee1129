package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pt-booking/internal/policy"
	"pt-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	trainerActor = policy.Trainer{UserID: uuid.New(), DisplayName: "Sean Kelly"}
	clientActor  = policy.Client{UserID: uuid.New(), DisplayName: "Aoife Byrne", Contact: "0871234567"}
)

// asActor stands in for the session middleware
func asActor(actor policy.Actor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if actor != nil {
				r = r.WithContext(policy.WithActor(r.Context(), actor))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func serve(t *testing.T, router *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var env utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

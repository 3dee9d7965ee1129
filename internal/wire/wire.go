package wire

import (
	"fmt"
	"net/http"

	"pt-booking/internal/adaptor"
	"pt-booking/internal/data/repository"
	"pt-booking/internal/policy"
	"pt-booking/internal/usecase"
	"pt-booking/pkg/middleware"
	"pt-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of the repositories.
func Wiring(repo *repository.Repository, tx repository.Transactor, config *utils.Config, logger *zap.Logger) (*App, error) {
	visibility, err := policy.ParseVisibility(config.Booking.TrainerVisibility)
	if err != nil {
		return nil, fmt.Errorf("booking config: %w", err)
	}
	logger.Info("Booking policy", zap.String("trainer_visibility", string(visibility)))

	service := usecase.NewService(repo, tx, visibility, config, logger)
	handler := adaptor.NewHandler(service, logger)
	auth := middleware.NewAuthenticator(repo.Session, repo.User, logger)

	return &App{
		Router: setupRouter(handler, auth, config, logger),
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	auth *middleware.Authenticator,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSAllowedOrigin))

	wireAuth(r, handler.Auth, auth)
	wireUser(r, handler.User, auth, logger)
	wireBooking(r, handler.Booking, auth)
	wireNotification(r, handler.Notification, auth, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

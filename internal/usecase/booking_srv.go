package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pt-booking/internal/data/entity"
	"pt-booking/internal/data/repository"
	"pt-booking/internal/dto/request"
	"pt-booking/internal/dto/response"
	"pt-booking/internal/policy"
	"pt-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=booking_srv.go -destination=../mocks/usecase/booking_srv.go -package=mocks

type BookingService interface {
	ListBookings(ctx context.Context, actor policy.Actor, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, actor policy.Actor, bookingID string) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, actor policy.Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, actor policy.Actor, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, actor policy.Actor, bookingID string) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, actor policy.Actor, bookingID string) error
}

type bookingService struct {
	repo       *repository.Repository
	tx         repository.Transactor
	visibility policy.Visibility
	now        clock
	log        *zap.Logger
}

func NewBookingService(repo *repository.Repository, tx repository.Transactor, visibility policy.Visibility, log *zap.Logger) BookingService {
	return &bookingService{
		repo:       repo,
		tx:         tx,
		visibility: visibility,
		now:        time.Now,
		log:        log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context, actor policy.Actor, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	filter := repository.BookingFilter{Scope: policy.ScopeFor(actor, s.visibility)}
	if req.Status != nil {
		status := entity.BookingStatus(*req.Status)
		filter.Status = &status
	}

	bookings, err := s.repo.Booking.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("actor_id", actor.ID().String()),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	items := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = response.BookingToResponse(b)
	}

	s.log.Debug("Bookings listed",
		zap.String("actor_id", actor.ID().String()),
		zap.String("role", string(actor.Role())),
		zap.Int("count", len(items)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, actor policy.Actor, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.loadForActor(ctx, s.repo, actor, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, actor policy.Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	draft, err := s.resolveDraft(ctx, actor, bookingForm{
		Date:          &req.Date,
		Time:          &req.Time,
		Status:        req.Status,
		Notes:         &req.Notes,
		ClientID:      req.ClientID,
		ClientName:    &req.ClientName,
		ClientContact: &req.ClientContact,
		TrainerID:     req.TrainerID,
	})
	if err != nil {
		return nil, err
	}

	booking, err := policy.NewBooking(actor, draft, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("actor_id", actor.ID().String()),
		zap.String("role", string(actor.Role())),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, actor policy.Actor, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	var updated *entity.Booking
	err := s.tx.WithinTx(ctx, func(tx *repository.Repository) error {
		current, err := s.loadForActor(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}

		draft, err := s.resolveDraft(ctx, actor, bookingForm{
			Date:          req.Date,
			Time:          req.Time,
			Status:        req.Status,
			Notes:         req.Notes,
			ClientID:      req.ClientID,
			ClientName:    req.ClientName,
			ClientContact: req.ClientContact,
			TrainerID:     req.TrainerID,
		})
		if err != nil {
			return err
		}

		now := s.now()
		updated, err = policy.ApplyEdit(actor, current, draft, now)
		if err != nil {
			return err
		}

		if err := s.save(ctx, tx, updated); err != nil {
			return err
		}

		if policy.IsCancellation(current, updated) {
			return s.notifyCancellation(ctx, tx, actor, current, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", updated.ID.String()),
		zap.String("actor_id", actor.ID().String()),
		zap.String("status", string(updated.Status)),
	)

	resp := response.BookingToResponse(updated)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor policy.Actor, bookingID string) (*response.BookingResponse, error) {
	var result *entity.Booking
	err := s.tx.WithinTx(ctx, func(tx *repository.Repository) error {
		current, err := s.loadForActor(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}

		// cancelling twice is a no-op
		if current.IsCancelled() {
			result = current
			return nil
		}

		now := s.now()
		result = policy.Cancel(current, now)
		if err := s.save(ctx, tx, result); err != nil {
			return err
		}

		return s.notifyCancellation(ctx, tx, actor, current, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", result.ID.String()),
		zap.String("actor_id", actor.ID().String()),
		zap.String("role", string(actor.Role())),
	)

	resp := response.BookingToResponse(result)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, actor policy.Actor, bookingID string) error {
	err := s.tx.WithinTx(ctx, func(tx *repository.Repository) error {
		current, err := s.loadForActor(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}

		if err := tx.Booking.Delete(ctx, current.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return policy.ErrNotFound
			}
			return fmt.Errorf("delete booking: %w", err)
		}

		return s.notifyCancellation(ctx, tx, actor, current, s.now())
	})
	if err != nil {
		return err
	}

	s.log.Info("Booking deleted",
		zap.String("booking_id", bookingID),
		zap.String("actor_id", actor.ID().String()),
	)
	return nil
}

// ==================== HELPER METHODS ====================

// loadForActor returns the booking only when actor may address it.
// Malformed ids, missing rows and foreign rows all look the same.
func (s *bookingService) loadForActor(ctx context.Context, repo *repository.Repository, actor policy.Actor, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, policy.ErrNotFound
	}

	booking, err := repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return nil, policy.ErrNotFound
	}

	if !policy.CanAccess(actor, booking, s.visibility) {
		s.log.Warn("Booking access denied",
			zap.String("booking_id", bookingID),
			zap.String("actor_id", actor.ID().String()),
			zap.String("role", string(actor.Role())),
		)
		return nil, policy.ErrForbidden
	}

	return booking, nil
}

func (s *bookingService) save(ctx context.Context, repo *repository.Repository, booking *entity.Booking) error {
	if err := repo.Booking.Update(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return policy.ErrNotFound
		}
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

func (s *bookingService) notifyCancellation(ctx context.Context, repo *repository.Repository, actor policy.Actor, before *entity.Booking, now time.Time) error {
	notice, ok := policy.CancellationNotice(actor, before, now)
	if !ok {
		return nil
	}

	if err := repo.Notification.Create(ctx, notice); err != nil {
		return fmt.Errorf("notify trainer: %w", err)
	}

	s.log.Info("Trainer notified of cancellation",
		zap.String("booking_id", before.ID.String()),
		zap.String("trainer_id", notice.RecipientID.String()),
	)
	return nil
}

// bookingForm is the raw submission shared by create and edit
type bookingForm struct {
	Date          *string
	Time          *string
	Status        *string
	Notes         *string
	ClientID      *string
	ClientName    *string
	ClientContact *string
	TrainerID     *string
}

// resolveDraft parses the form and loads the accounts it references.
// Fields an actor may not set are dropped here.
func (s *bookingService) resolveDraft(ctx context.Context, actor policy.Actor, form bookingForm) (policy.Draft, error) {
	var d policy.Draft

	if form.Date != nil {
		date, err := utils.ParseDate(*form.Date)
		if err != nil {
			return d, fieldError("date", "Enter a valid date (YYYY-MM-DD)")
		}
		d.Date = &date
	}
	if form.Time != nil {
		clock, err := utils.ParseClock(*form.Time)
		if err != nil {
			return d, fieldError("time", "Enter a valid time (HH:MM)")
		}
		d.Time = &clock
	}
	d.Notes = form.Notes
	d.ClientContact = form.ClientContact

	if policy.IsTrainer(actor) {
		if form.Status != nil {
			status := entity.BookingStatus(*form.Status)
			if !status.Valid() {
				return d, fieldError("status", "Select a valid status")
			}
			d.Status = &status
		}
		d.ClientName = form.ClientName

		if id := optionalID(form.ClientID); id != "" {
			client, err := s.loadAccount(ctx, id, entity.RoleClient)
			if err != nil {
				return d, err
			}
			if client == nil {
				return d, fieldError("client_id", "Select a valid client")
			}
			d.Client = client
		}
		return d, nil
	}

	if id := optionalID(form.TrainerID); id != "" {
		trainer, err := s.loadAccount(ctx, id, entity.RoleTrainer)
		if err != nil {
			return d, err
		}
		if trainer == nil {
			return d, fieldError("trainer_id", "Select a valid trainer")
		}
		d.Trainer = trainer
	}
	return d, nil
}

// loadAccount returns nil when id is not an active account of role.
func (s *bookingService) loadAccount(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	user, err := s.repo.User.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("load %s account: %w", role, err)
	}
	if user == nil || user.Role != role || !user.IsActive {
		return nil, nil
	}
	return user, nil
}

func optionalID(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.TrimSpace(*raw)
}

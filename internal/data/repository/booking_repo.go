package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pt-booking/internal/data/entity"
	"pt-booking/internal/policy"
	"pt-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows a listing to a policy scope and optionally a status.
type BookingFilter struct {
	Scope  policy.Scope
	Status *entity.BookingStatus
}

//go:generate mockgen -source=booking_repo.go -destination=../../mocks/repository/booking_repo.go -package=mocks

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	List(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	// LatestPending returns the most recently created pending booking in scope
	LatestPending(ctx context.Context, scope policy.Scope) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, trainer_id, client_id, client_name, client_contact,
		date, to_char(time, 'HH24:MI'), notes, status, created_at, updated_at`

func scanBooking(row rowScanner) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.TrainerID,
		&b.ClientID,
		&b.ClientName,
		&b.ClientContact,
		&b.Date,
		&b.Time,
		&b.Notes,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// whereClause renders filter as a WHERE clause with positional args.
func (f BookingFilter) whereClause() (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch s := f.Scope; {
	case s.All:
	case s.TrainerID != nil:
		conds = append(conds, "trainer_id = "+arg(*s.TrainerID))
	case s.ClientID != nil:
		conds = append(conds, fmt.Sprintf(
			"(client_id = %s OR (client_id IS NULL AND lower(btrim(client_name)) = lower(%s)))",
			arg(*s.ClientID), arg(s.ClientName)))
	default:
		// an empty scope matches nothing
		conds = append(conds, "FALSE")
	}

	if f.Status != nil {
		conds = append(conds, "status = "+arg(string(*f.Status)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, trainer_id, client_id, client_name, client_contact,
		                      date, time, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::text::time, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.TrainerID,
		booking.ClientID,
		booking.ClientName,
		booking.ClientContact,
		booking.Date,
		booking.Time,
		booking.Notes,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	where, args := filter.whereClause()
	query := fmt.Sprintf(`SELECT %s FROM bookings %s ORDER BY date DESC, time DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	where, args := filter.whereClause()
	query := `SELECT COUNT(*) FROM bookings ` + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	// created_at is never rewritten
	query := `
		UPDATE bookings
		SET trainer_id = $2, client_id = $3, client_name = $4, client_contact = $5,
		    date = $6, time = $7::text::time, notes = $8, status = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.TrainerID,
		booking.ClientID,
		booking.ClientName,
		booking.ClientContact,
		booking.Date,
		booking.Time,
		booking.Notes,
		booking.Status,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", booking.ID, ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) LatestPending(ctx context.Context, scope policy.Scope) (*entity.Booking, error) {
	pending := entity.BookingStatusPending
	where, args := BookingFilter{Scope: scope, Status: &pending}.whereClause()
	query := `SELECT ` + bookingColumns + ` FROM bookings ` + where + ` ORDER BY created_at DESC LIMIT 1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest pending booking", zap.Error(err))
		return nil, fmt.Errorf("find latest pending booking: %w", err)
	}

	return booking, nil
}

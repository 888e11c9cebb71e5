package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	// ListForAllocation returns the confirmed bookings for one allocation key.
	// Cancelled bookings are excluded so their seat numbers become free again.
	ListForAllocation(ctx context.Context, flightRef string, journeyDate time.Time, class domain.SeatClass) ([]domain.Booking, error)
	// Cancel flips a confirmed booking to cancelled. Cancelling an already
	// cancelled booking is an idempotent no-op that returns the record as is.
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, flight_ref, flight_name, flight_code, departure, destination, email, mobile, passengers, seats, total_price, journey_date, journey_time, seat_class, booking_date, status`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	passengers, err := json.Marshal(booking.Passengers)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `INSERT INTO bookings (id, user_id, flight_ref, flight_name, flight_code, departure, destination, email, mobile, passengers, seats, total_price, journey_date, journey_time, seat_class, booking_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		booking.ID, booking.User, booking.Flight, booking.FlightName, booking.FlightID, booking.Departure, booking.Destination,
		booking.Email, booking.Mobile, passengers, booking.Seats, booking.TotalPrice, booking.JourneyDate, booking.JourneyTime,
		booking.SeatClass, booking.BookingDate, booking.Status)
	return err
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("booking " + id + " not found")
		}
		return nil, err
	}
	return booking, nil
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY booking_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) ListForAllocation(ctx context.Context, flightRef string, journeyDate time.Time, class domain.SeatClass) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings
		WHERE flight_ref=$1 AND journey_date=$2::date AND seat_class=$3 AND status=$4
		ORDER BY booking_date`,
		flightRef, journeyDate, class, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1 FOR UPDATE`, id)
	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("booking " + id + " not found")
		}
		return nil, err
	}

	if booking.Cancelled() {
		return booking, tx.Commit(ctx)
	}

	if _, err := tx.Exec(ctx, `UPDATE bookings SET status=$1 WHERE id=$2`, domain.BookingStatusCancelled, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusCancelled
	return booking, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var passengers []byte
	if err := row.Scan(&b.ID, &b.User, &b.Flight, &b.FlightName, &b.FlightID, &b.Departure, &b.Destination, &b.Email, &b.Mobile,
		&passengers, &b.Seats, &b.TotalPrice, &b.JourneyDate, &b.JourneyTime, &b.SeatClass, &b.BookingDate, &b.Status); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(passengers, &b.Passengers); err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)

package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, spec domain.FlightSpec) (*domain.Flight, error)
	Update(ctx context.Context, flightID string, spec domain.FlightSpec) (*domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	GetByFlightID(ctx context.Context, flightID string) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, flight_name, flight_code, origin, destination, departure_time, arrival_time, base_price, total_seats, created_at, updated_at`

func (r *PGFlightRepository) Create(ctx context.Context, spec domain.FlightSpec) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO flights (id, flight_name, flight_code, origin, destination, departure_time, arrival_time, base_price, total_seats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+flightColumns,
		uuid.NewString(), spec.FlightName, spec.FlightID, spec.Origin, spec.Destination, spec.DepartureTime, spec.ArrivalTime, spec.BasePrice, spec.TotalSeats)

	flight, err := scanFlight(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.NewConflict("flight " + spec.FlightID + " already exists")
		}
		return nil, err
	}
	return flight, nil
}

// Update replaces every mutable field of the flight identified by its
// operator-facing flight code. All-or-nothing: there is no partial merge.
func (r *PGFlightRepository) Update(ctx context.Context, flightID string, spec domain.FlightSpec) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `UPDATE flights
		SET flight_name=$2, flight_code=$3, origin=$4, destination=$5, departure_time=$6, arrival_time=$7, base_price=$8, total_seats=$9, updated_at=now()
		WHERE flight_code=$1
		RETURNING `+flightColumns,
		flightID, spec.FlightName, spec.FlightID, spec.Origin, spec.Destination, spec.DepartureTime, spec.ArrivalTime, spec.BasePrice, spec.TotalSeats)

	flight, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("flight " + flightID + " not found")
		}
		return nil, err
	}
	return flight, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	flight, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("flight " + id + " not found")
		}
		return nil, err
	}
	return flight, nil
}

func (r *PGFlightRepository) GetByFlightID(ctx context.Context, flightID string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE flight_code=$1`, flightID)
	flight, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("flight " + flightID + " not found")
		}
		return nil, err
	}
	return flight, nil
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *flight)
	}
	return flights, rows.Err()
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightName, &f.FlightID, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime, &f.BasePrice, &f.TotalSeats, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)

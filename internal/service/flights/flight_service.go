package flights

import (
	"context"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Create(ctx context.Context, spec domain.FlightSpec) (*domain.Flight, error)
	Update(ctx context.Context, flightID string, spec domain.FlightSpec) (*domain.Flight, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, spec domain.FlightSpec) (*domain.Flight, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	// Pre-check the operator-facing code; the unique index on flight_code
	// backstops the race between check and insert.
	if _, err := s.repo.GetByFlightID(ctx, spec.FlightID); err == nil {
		return nil, domain.NewConflict("flight " + spec.FlightID + " already exists")
	} else if domain.KindOf(err) != domain.KindNotFound {
		return nil, err
	}

	flight, err := s.repo.Create(ctx, spec)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, flightID string, spec domain.FlightSpec) (*domain.Flight, error) {
	if flightID == "" {
		return nil, domain.NewInvalidRequest("flightId is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	flight, err := s.repo.Update(ctx, flightID, spec)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return flight, nil
}

var _ FlightUseCase = (*FlightService)(nil)

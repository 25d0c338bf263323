package usecase

import (
	"context"

	"fyyur/internal/data/entity"
	"fyyur/internal/data/repository"
	"fyyur/internal/dto/request"
	"fyyur/internal/dto/response"
	"fyyur/internal/listing"
	"fyyur/pkg/utils"

	"go.uber.org/zap"
)

type ShowService interface {
	ListShows(ctx context.Context) ([]response.ShowResponse, error)
	CreateShow(ctx context.Context, req *request.ShowRequest) (*response.ShowResponse, error)
}

type showService struct {
	repo  *repository.Repository
	clock listing.Clock
	log   *zap.Logger
}

func NewShowService(repo *repository.Repository, clock listing.Clock, log *zap.Logger) ShowService {
	return &showService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "show")),
	}
}

// ListShows returns every show, past and upcoming, ordered by start time.
func (s *showService) ListShows(ctx context.Context) ([]response.ShowResponse, error) {
	shows, err := s.repo.Show.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get shows", zap.Error(err))
		return nil, storageError("get shows", err)
	}

	out := make([]response.ShowResponse, len(shows))
	for i, show := range shows {
		out[i] = response.ShowToResponse(show)
	}
	return out, nil
}

// CreateShow books an artist at a venue. Both must exist; a start time that
// does not parse is reported against start_time.
func (s *showService) CreateShow(ctx context.Context, req *request.ShowRequest) (*response.ShowResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create show validation failed", zap.Error(err))
		return nil, err
	}

	fields := make(map[string]string)

	venueID, err := utils.ParseID(req.VenueID)
	if err != nil {
		fields["venue_id"] = "Must be a valid venue ID"
	}
	artistID, err := utils.ParseID(req.ArtistID)
	if err != nil {
		fields["artist_id"] = "Must be a valid artist ID"
	}
	startTime, err := listing.ParseStartTime(req.StartTime)
	if err != nil {
		fields["start_time"] = err.Error() + ", use " + listing.DisplayLayout
	}
	if len(fields) > 0 {
		verr := &ValidationError{Fields: fields}
		s.log.Warn("Create show validation failed", zap.Error(verr))
		return nil, verr
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		s.log.Error("Failed to get venue for show", zap.Error(err), zap.Int64("venue_id", venueID))
		return nil, storageError("get venue", err)
	}
	if venue == nil {
		fields["venue_id"] = "No venue with this ID"
	}

	artist, err := s.repo.Artist.FindByID(ctx, artistID)
	if err != nil {
		s.log.Error("Failed to get artist for show", zap.Error(err), zap.Int64("artist_id", artistID))
		return nil, storageError("get artist", err)
	}
	if artist == nil {
		fields["artist_id"] = "No artist with this ID"
	}
	if len(fields) > 0 {
		verr := &ValidationError{Fields: fields}
		s.log.Warn("Create show references missing records", zap.Error(verr))
		return nil, verr
	}

	now := s.clock.Now()
	show := &entity.Show{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		StartTime: startTime,
		VenueID:   venueID,
		ArtistID:  artistID,
	}

	if err := s.repo.Show.Create(ctx, show); err != nil {
		s.log.Error("Failed to create show",
			zap.Error(err),
			zap.Int64("venue_id", venueID),
			zap.Int64("artist_id", artistID),
		)
		return nil, storageError("create show", err)
	}

	s.log.Info("Show created",
		zap.Int64("show_id", show.ID),
		zap.Int64("venue_id", venueID),
		zap.Int64("artist_id", artistID),
		zap.Time("start_time", startTime),
	)

	resp := response.ShowToResponse(&entity.ShowDetail{
		Show:            *show,
		VenueName:       venue.Name,
		VenueImageLink:  venue.ImageLink,
		ArtistName:      artist.Name,
		ArtistImageLink: artist.ImageLink,
	})
	return &resp, nil
}

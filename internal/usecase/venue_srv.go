package usecase

import (
	"context"
	"errors"

	"fyyur/internal/data/entity"
	"fyyur/internal/data/repository"
	"fyyur/internal/dto/request"
	"fyyur/internal/dto/response"
	"fyyur/internal/listing"
	"fyyur/pkg/utils"

	"go.uber.org/zap"
)

type VenueService interface {
	ListByLocation(ctx context.Context) ([]response.LocationGroupResponse, error)
	Search(ctx context.Context, term string) (*response.SearchResponse, error)
	GetVenue(ctx context.Context, venueID int64) (*response.VenueDetailResponse, error)
	GetVenueForm(ctx context.Context, venueID int64) (*request.VenueRequest, error)

	CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueResponse, error)
	UpdateVenue(ctx context.Context, venueID int64, req *request.VenueRequest) (*response.VenueResponse, error)
	DeleteVenue(ctx context.Context, venueID int64) error
}

type venueService struct {
	repo  *repository.Repository
	clock listing.Clock
	log   *zap.Logger
}

func NewVenueService(repo *repository.Repository, clock listing.Clock, log *zap.Logger) VenueService {
	return &venueService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "venue")),
	}
}

// loadListings fetches every venue with its show times attached.
func (s *venueService) loadListings(ctx context.Context) ([]listing.Listing, error) {
	venues, err := s.repo.Venue.FindAll(ctx)
	if err != nil {
		return nil, storageError("get venues", err)
	}

	shows, err := s.repo.Show.FindAll(ctx)
	if err != nil {
		return nil, storageError("get shows", err)
	}

	return venueListings(venues, shows), nil
}

func (s *venueService) ListByLocation(ctx context.Context) ([]response.LocationGroupResponse, error) {
	listings, err := s.loadListings(ctx)
	if err != nil {
		s.log.Error("Failed to load venues", zap.Error(err))
		return nil, err
	}

	groups := listing.GroupVenuesByLocation(listings, s.clock.Now())

	s.log.Info("Venues grouped",
		zap.Int("venue_count", len(listings)),
		zap.Int("group_count", len(groups)),
	)

	return response.LocationGroupsToResponse(groups), nil
}

func (s *venueService) Search(ctx context.Context, term string) (*response.SearchResponse, error) {
	listings, err := s.loadListings(ctx)
	if err != nil {
		s.log.Error("Failed to load venues for search", zap.Error(err), zap.String("term", term))
		return nil, err
	}

	result := response.SearchToResponse(listing.SearchByName(listings, term, s.clock.Now()))

	s.log.Info("Venues searched",
		zap.String("term", term),
		zap.Int("count", result.Count),
	)

	return &result, nil
}

func (s *venueService) GetVenue(ctx context.Context, venueID int64) (*response.VenueDetailResponse, error) {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	shows, err := s.repo.Show.FindByVenueID(ctx, venueID)
	if err != nil {
		s.log.Error("Failed to get shows for venue",
			zap.Error(err),
			zap.Int64("venue_id", venueID),
		)
		return nil, storageError("get venue shows", err)
	}

	partition := listing.PartitionShows(venueSideShows(shows), s.clock.Now())
	detail := response.VenueToDetailResponse(venue, partition)
	return &detail, nil
}

func (s *venueService) GetVenueForm(ctx context.Context, venueID int64) (*request.VenueRequest, error) {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	return &request.VenueRequest{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              utils.StringValue(venue.Phone),
		Genres:             listing.DecodeGenres(venue.Genres),
		ImageLink:          utils.StringValue(venue.ImageLink),
		FacebookLink:       utils.StringValue(venue.FacebookLink),
		Website:            utils.StringValue(venue.Website),
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: utils.StringValue(venue.SeekingDescription),
	}, nil
}

func (s *venueService) CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create venue validation failed", zap.Error(err))
		return nil, err
	}

	now := s.clock.Now()
	venue := &entity.Venue{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyVenueRequest(venue, req)

	if err := s.repo.Venue.Create(ctx, venue); err != nil {
		s.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, storageError("create venue", err)
	}

	s.log.Info("Venue created",
		zap.Int64("venue_id", venue.ID),
		zap.String("name", venue.Name),
		zap.String("city", venue.City),
	)

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

// UpdateVenue overwrites every editable field of an existing venue, after
// the same validation CreateVenue applies. A missing venue is reported
// before any field error.
func (s *venueService) UpdateVenue(ctx context.Context, venueID int64, req *request.VenueRequest) (*response.VenueResponse, error) {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		s.log.Warn("Update venue validation failed", zap.Error(err), zap.Int64("venue_id", venueID))
		return nil, err
	}

	applyVenueRequest(venue, req)
	venue.UpdatedAt = s.clock.Now()

	if err := s.repo.Venue.Update(ctx, venue); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("venue", venueID)
		}
		s.log.Error("Failed to update venue",
			zap.Error(err),
			zap.Int64("venue_id", venueID),
		)
		return nil, storageError("update venue", err)
	}

	s.log.Info("Venue updated",
		zap.Int64("venue_id", venueID),
		zap.String("name", venue.Name),
	)

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, venueID int64) error {
	if err := s.repo.Venue.Delete(ctx, venueID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return notFound("venue", venueID)
		}
		s.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.Int64("venue_id", venueID),
		)
		return storageError("delete venue", err)
	}

	s.log.Info("Venue deleted", zap.Int64("venue_id", venueID))
	return nil
}

func (s *venueService) findVenue(ctx context.Context, venueID int64) (*entity.Venue, error) {
	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		s.log.Error("Failed to get venue by ID",
			zap.Error(err),
			zap.Int64("venue_id", venueID),
		)
		return nil, storageError("get venue", err)
	}
	if venue == nil {
		return nil, notFound("venue", venueID)
	}
	return venue, nil
}

func applyVenueRequest(venue *entity.Venue, req *request.VenueRequest) {
	venue.Name = req.Name
	venue.City = req.City
	venue.State = req.State
	venue.Address = req.Address
	venue.Phone = utils.StringPtr(req.Phone)
	venue.Genres = listing.EncodeGenres(req.Genres)
	venue.ImageLink = utils.StringPtr(req.ImageLink)
	venue.FacebookLink = utils.StringPtr(req.FacebookLink)
	venue.Website = utils.StringPtr(req.Website)
	venue.SeekingTalent = req.SeekingTalent
	venue.SeekingDescription = utils.StringPtr(req.SeekingDescription)
}

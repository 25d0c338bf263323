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

type ArtistService interface {
	ListArtists(ctx context.Context) ([]response.ArtistResponse, error)
	Search(ctx context.Context, term string) (*response.SearchResponse, error)
	GetArtist(ctx context.Context, artistID int64) (*response.ArtistDetailResponse, error)
	GetArtistForm(ctx context.Context, artistID int64) (*request.ArtistRequest, error)

	CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.ArtistResponse, error)
	UpdateArtist(ctx context.Context, artistID int64, req *request.ArtistRequest) (*response.ArtistResponse, error)
	DeleteArtist(ctx context.Context, artistID int64) error
}

type artistService struct {
	repo  *repository.Repository
	clock listing.Clock
	log   *zap.Logger
}

func NewArtistService(repo *repository.Repository, clock listing.Clock, log *zap.Logger) ArtistService {
	return &artistService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "artist")),
	}
}

// ListArtists returns every artist as id and name, ordered by name.
func (s *artistService) ListArtists(ctx context.Context) ([]response.ArtistResponse, error) {
	artists, err := s.repo.Artist.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get artists", zap.Error(err))
		return nil, storageError("get artists", err)
	}

	out := make([]response.ArtistResponse, len(artists))
	for i, a := range artists {
		out[i] = response.ArtistToResponse(a)
	}
	return out, nil
}

func (s *artistService) Search(ctx context.Context, term string) (*response.SearchResponse, error) {
	artists, err := s.repo.Artist.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get artists for search", zap.Error(err), zap.String("term", term))
		return nil, storageError("get artists", err)
	}

	shows, err := s.repo.Show.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get shows for search", zap.Error(err), zap.String("term", term))
		return nil, storageError("get shows", err)
	}

	found := listing.SearchByName(artistListings(artists, shows), term, s.clock.Now())
	result := response.SearchToResponse(found)

	s.log.Info("Artists searched",
		zap.String("term", term),
		zap.Int("count", result.Count),
	)

	return &result, nil
}

func (s *artistService) GetArtist(ctx context.Context, artistID int64) (*response.ArtistDetailResponse, error) {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	shows, err := s.repo.Show.FindByArtistID(ctx, artistID)
	if err != nil {
		s.log.Error("Failed to get shows for artist",
			zap.Error(err),
			zap.Int64("artist_id", artistID),
		)
		return nil, storageError("get artist shows", err)
	}

	partition := listing.PartitionShows(artistSideShows(shows), s.clock.Now())
	detail := response.ArtistToDetailResponse(artist, partition)
	return &detail, nil
}

func (s *artistService) GetArtistForm(ctx context.Context, artistID int64) (*request.ArtistRequest, error) {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	return &request.ArtistRequest{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              utils.StringValue(artist.Phone),
		Genres:             listing.DecodeGenres(artist.Genres),
		ImageLink:          utils.StringValue(artist.ImageLink),
		FacebookLink:       utils.StringValue(artist.FacebookLink),
		Website:            utils.StringValue(artist.Website),
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: utils.StringValue(artist.SeekingDescription),
	}, nil
}

func (s *artistService) CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.ArtistResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create artist validation failed", zap.Error(err))
		return nil, err
	}

	now := s.clock.Now()
	artist := &entity.Artist{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyArtistRequest(artist, req)

	if err := s.repo.Artist.Create(ctx, artist); err != nil {
		s.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, storageError("create artist", err)
	}

	s.log.Info("Artist created",
		zap.Int64("artist_id", artist.ID),
		zap.String("name", artist.Name),
	)

	resp := response.ArtistToResponse(artist)
	return &resp, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, artistID int64, req *request.ArtistRequest) (*response.ArtistResponse, error) {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		s.log.Warn("Update artist validation failed", zap.Error(err), zap.Int64("artist_id", artistID))
		return nil, err
	}

	applyArtistRequest(artist, req)
	artist.UpdatedAt = s.clock.Now()

	if err := s.repo.Artist.Update(ctx, artist); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("artist", artistID)
		}
		s.log.Error("Failed to update artist",
			zap.Error(err),
			zap.Int64("artist_id", artistID),
		)
		return nil, storageError("update artist", err)
	}

	s.log.Info("Artist updated", zap.Int64("artist_id", artistID))

	resp := response.ArtistToResponse(artist)
	return &resp, nil
}

// DeleteArtist removes the artist; its shows go with it.
func (s *artistService) DeleteArtist(ctx context.Context, artistID int64) error {
	if err := s.repo.Artist.Delete(ctx, artistID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return notFound("artist", artistID)
		}
		s.log.Error("Failed to delete artist",
			zap.Error(err),
			zap.Int64("artist_id", artistID),
		)
		return storageError("delete artist", err)
	}

	s.log.Info("Artist deleted", zap.Int64("artist_id", artistID))
	return nil
}

func (s *artistService) findArtist(ctx context.Context, artistID int64) (*entity.Artist, error) {
	artist, err := s.repo.Artist.FindByID(ctx, artistID)
	if err != nil {
		s.log.Error("Failed to get artist by ID",
			zap.Error(err),
			zap.Int64("artist_id", artistID),
		)
		return nil, storageError("get artist", err)
	}
	if artist == nil {
		return nil, notFound("artist", artistID)
	}
	return artist, nil
}

func applyArtistRequest(artist *entity.Artist, req *request.ArtistRequest) {
	artist.Name = req.Name
	artist.City = req.City
	artist.State = req.State
	artist.Phone = utils.StringPtr(req.Phone)
	artist.Genres = listing.EncodeGenres(req.Genres)
	artist.ImageLink = utils.StringPtr(req.ImageLink)
	artist.FacebookLink = utils.StringPtr(req.FacebookLink)
	artist.Website = utils.StringPtr(req.Website)
	artist.SeekingVenue = req.SeekingVenue
	artist.SeekingDescription = utils.StringPtr(req.SeekingDescription)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"fyyur/internal/data/entity"
	"fyyur/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id int64) (*entity.Venue, error)
	FindAll(ctx context.Context) ([]*entity.Venue, error)
	Update(ctx context.Context, venue *entity.Venue) error
	Delete(ctx context.Context, id int64) error
}

type venueRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewVenueRepository(db database.Querier, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

const venueColumns = `id, name, address, city, state, phone, genres, image_link, facebook_link,
		website, seeking_talent, seeking_description, created_at, updated_at`

func scanVenue(row pgx.Row) (*entity.Venue, error) {
	var venue entity.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Address,
		&venue.City,
		&venue.State,
		&venue.Phone,
		&venue.Genres,
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.Website,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (name, address, city, state, phone, genres, image_link, facebook_link,
			website, seeking_talent, seeking_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		venue.Name,
		venue.Address,
		venue.City,
		venue.State,
		venue.Phone,
		venue.Genres,
		venue.ImageLink,
		venue.FacebookLink,
		venue.Website,
		venue.SeekingTalent,
		venue.SeekingDescription,
		venue.CreatedAt,
		venue.UpdatedAt,
	).Scan(&venue.ID)

	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", venue.Name),
			zap.String("city", venue.City),
		)
		return fmt.Errorf("create venue %s: %w", venue.Name, err)
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id int64) (*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.Int64("venue_id", id),
		)
		return nil, fmt.Errorf("find venue by ID %d: %w", id, err)
	}

	return venue, nil
}

// FindAll returns every venue ordered by state then city.
func (r *venueRepository) FindAll(ctx context.Context) ([]*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY state, city, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all venues", zap.Error(err))
		return nil, fmt.Errorf("find all venues: %w", err)
	}
	defer rows.Close()

	var venues []*entity.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate venue rows: %w", err)
	}

	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, address = $3, city = $4, state = $5, phone = $6, genres = $7,
			image_link = $8, facebook_link = $9, website = $10, seeking_talent = $11,
			seeking_description = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Address,
		venue.City,
		venue.State,
		venue.Phone,
		venue.Genres,
		venue.ImageLink,
		venue.FacebookLink,
		venue.Website,
		venue.SeekingTalent,
		venue.SeekingDescription,
		venue.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update venue",
			zap.Error(err),
			zap.Int64("venue_id", venue.ID),
		)
		return fmt.Errorf("update venue %d: %w", venue.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update venue %d: %w", venue.ID, ErrNoRows)
	}

	return nil
}

// Delete removes the venue; its shows go with it through ON DELETE CASCADE.
func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM venues WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.Int64("venue_id", id),
		)
		return fmt.Errorf("delete venue %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete venue %d: %w", id, ErrNoRows)
	}

	r.log.Info("Venue deleted", zap.Int64("venue_id", id))
	return nil
}

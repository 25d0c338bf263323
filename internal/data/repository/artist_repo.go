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

type ArtistRepository interface {
	Create(ctx context.Context, artist *entity.Artist) error
	FindByID(ctx context.Context, id int64) (*entity.Artist, error)
	FindAll(ctx context.Context) ([]*entity.Artist, error)
	Update(ctx context.Context, artist *entity.Artist) error
	Delete(ctx context.Context, id int64) error
}

type artistRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewArtistRepository(db database.Querier, log *zap.Logger) ArtistRepository {
	return &artistRepository{
		db:  db,
		log: log.With(zap.String("repository", "artist")),
	}
}

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
		website, seeking_venue, seeking_description, created_at, updated_at`

func scanArtist(row pgx.Row) (*entity.Artist, error) {
	var artist entity.Artist
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.Genres,
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.Website,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	query := `
		INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
			website, seeking_venue, seeking_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.Genres,
		artist.ImageLink,
		artist.FacebookLink,
		artist.Website,
		artist.SeekingVenue,
		artist.SeekingDescription,
		artist.CreatedAt,
		artist.UpdatedAt,
	).Scan(&artist.ID)

	if err != nil {
		r.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("name", artist.Name),
		)
		return fmt.Errorf("create artist %s: %w", artist.Name, err)
	}

	return nil
}

func (r *artistRepository) FindByID(ctx context.Context, id int64) (*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find artist by ID",
			zap.Error(err),
			zap.Int64("artist_id", id),
		)
		return nil, fmt.Errorf("find artist by ID %d: %w", id, err)
	}

	return artist, nil
}

// FindAll returns every artist ordered by name.
func (r *artistRepository) FindAll(ctx context.Context) ([]*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all artists", zap.Error(err))
		return nil, fmt.Errorf("find all artists: %w", err)
	}
	defer rows.Close()

	var artists []*entity.Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			r.log.Error("Failed to scan artist row", zap.Error(err))
			return nil, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, artist)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate artist rows: %w", err)
	}

	return artists, nil
}

func (r *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, genres = $6, image_link = $7,
			facebook_link = $8, website = $9, seeking_venue = $10, seeking_description = $11,
			updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		artist.ID,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.Genres,
		artist.ImageLink,
		artist.FacebookLink,
		artist.Website,
		artist.SeekingVenue,
		artist.SeekingDescription,
		artist.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update artist",
			zap.Error(err),
			zap.Int64("artist_id", artist.ID),
		)
		return fmt.Errorf("update artist %d: %w", artist.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update artist %d: %w", artist.ID, ErrNoRows)
	}

	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM artists WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete artist",
			zap.Error(err),
			zap.Int64("artist_id", id),
		)
		return fmt.Errorf("delete artist %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete artist %d: %w", id, ErrNoRows)
	}

	r.log.Info("Artist deleted", zap.Int64("artist_id", id))
	return nil
}

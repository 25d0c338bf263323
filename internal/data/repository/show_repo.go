package repository

import (
	"context"
	"fmt"

	"fyyur/internal/data/entity"
	"fyyur/pkg/database"

	"go.uber.org/zap"
)

type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	FindAll(ctx context.Context) ([]*entity.ShowDetail, error)
	FindByVenueID(ctx context.Context, venueID int64) ([]*entity.ShowDetail, error)
	FindByArtistID(ctx context.Context, artistID int64) ([]*entity.ShowDetail, error)
}

type showRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewShowRepository(db database.Querier, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

const showDetailQuery = `
	SELECT s.id, s.start_time, s.venue_id, s.artist_id, s.created_at, s.updated_at,
		v.name, v.image_link, a.name, a.image_link
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id
`

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	query := `
		INSERT INTO shows (start_time, venue_id, artist_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		show.StartTime,
		show.VenueID,
		show.ArtistID,
		show.CreatedAt,
		show.UpdatedAt,
	).Scan(&show.ID)

	if err != nil {
		r.log.Error("Failed to create show",
			zap.Error(err),
			zap.Int64("venue_id", show.VenueID),
			zap.Int64("artist_id", show.ArtistID),
			zap.Time("start_time", show.StartTime),
		)
		return fmt.Errorf("create show for venue %d artist %d: %w", show.VenueID, show.ArtistID, err)
	}

	return nil
}

func (r *showRepository) FindAll(ctx context.Context) ([]*entity.ShowDetail, error) {
	return r.findDetails(ctx, "find all shows", showDetailQuery+` ORDER BY s.start_time, s.id`)
}

func (r *showRepository) FindByVenueID(ctx context.Context, venueID int64) ([]*entity.ShowDetail, error) {
	return r.findDetails(ctx, "find shows by venue ID",
		showDetailQuery+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

func (r *showRepository) FindByArtistID(ctx context.Context, artistID int64) ([]*entity.ShowDetail, error) {
	return r.findDetails(ctx, "find shows by artist ID",
		showDetailQuery+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

func (r *showRepository) findDetails(ctx context.Context, op, query string, args ...any) ([]*entity.ShowDetail, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err), zap.Any("args", args))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var shows []*entity.ShowDetail
	for rows.Next() {
		var show entity.ShowDetail
		err := rows.Scan(
			&show.ID,
			&show.StartTime,
			&show.VenueID,
			&show.ArtistID,
			&show.CreatedAt,
			&show.UpdatedAt,
			&show.VenueName,
			&show.VenueImageLink,
			&show.ArtistName,
			&show.ArtistImageLink,
		)
		if err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &show)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate show rows: %w", err)
	}

	return shows, nil
}

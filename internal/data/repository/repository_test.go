package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyyur/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var created = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func venueRow(id int64, name string) []any {
	return []any{
		id, name, "1015 Folsom Street", "San Francisco", "CA", strPtr("123-123-1234"),
		"Jazz,Reggae", (*string)(nil), (*string)(nil), strPtr("https://www.themusicalhop.com"),
		true, (*string)(nil), created, created,
	}
}

func TestVenueRepository_FindByID(t *testing.T) {
	db := &fakeDB{rows: [][]any{venueRow(1, "The Musical Hop")}}
	repo := NewVenueRepository(db, zap.NewNop())

	venue, err := repo.FindByID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, venue)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, "Jazz,Reggae", venue.Genres)
	assert.Nil(t, venue.ImageLink)
	assert.True(t, venue.SeekingTalent)
	assert.Equal(t, []any{int64(1)}, db.args)
}

func TestVenueRepository_FindByID_Missing(t *testing.T) {
	repo := NewVenueRepository(&fakeDB{}, zap.NewNop())

	venue, err := repo.FindByID(context.Background(), 5)

	assert.NoError(t, err)
	assert.Nil(t, venue)
}

func TestVenueRepository_FindByID_Failure(t *testing.T) {
	boom := errors.New("conn reset")
	repo := NewVenueRepository(&fakeDB{rowErr: boom}, zap.NewNop())

	_, err := repo.FindByID(context.Background(), 5)

	assert.ErrorIs(t, err, boom)
}

func TestVenueRepository_FindAll(t *testing.T) {
	db := &fakeDB{rows: [][]any{venueRow(1, "The Musical Hop"), venueRow(3, "Park Square")}}
	repo := NewVenueRepository(db, zap.NewNop())

	venues, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, int64(3), venues[1].ID)
	assert.Contains(t, db.lastSQL, "ORDER BY state, city, id")
}

func TestVenueRepository_Create(t *testing.T) {
	db := &fakeDB{rows: [][]any{{int64(12)}}}
	repo := NewVenueRepository(db, zap.NewNop())
	venue := &entity.Venue{Name: "The Musical Hop", Genres: "Jazz"}

	require.NoError(t, repo.Create(context.Background(), venue))

	assert.Equal(t, int64(12), venue.ID)
	assert.Equal(t, "The Musical Hop", db.args[0])
	assert.Len(t, db.args, 13)
}

func TestVenueRepository_UpdateAndDelete(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		err  error
		want error
	}{
		{"affected", "UPDATE 1", nil, nil},
		{"no match", "UPDATE 0", nil, ErrNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewVenueRepository(&fakeDB{tag: tt.tag}, zap.NewNop())

			err := repo.Update(context.Background(), &entity.Venue{Base: entity.Base{ID: 1}})
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}

	repo := NewVenueRepository(&fakeDB{tag: "DELETE 0"}, zap.NewNop())
	assert.ErrorIs(t, repo.Delete(context.Background(), 9), ErrNoRows)

	repo = NewVenueRepository(&fakeDB{tag: "DELETE 1"}, zap.NewNop())
	assert.NoError(t, repo.Delete(context.Background(), 9))
}

func TestArtistRepository_FindAll_OrderedByName(t *testing.T) {
	row := []any{
		int64(4), "Guns N Petals", "San Francisco", "CA", strPtr("326-123-5000"), "Rock n Roll",
		(*string)(nil), (*string)(nil), (*string)(nil), true, strPtr("Looking for shows"), created, created,
	}
	db := &fakeDB{rows: [][]any{row}}
	repo := NewArtistRepository(db, zap.NewNop())

	artists, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.True(t, artists[0].SeekingVenue)
	assert.Equal(t, "Looking for shows", *artists[0].SeekingDescription)
	assert.Contains(t, db.lastSQL, "ORDER BY name, id")
}

func TestShowRepository_FindByVenueID(t *testing.T) {
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	db := &fakeDB{rows: [][]any{{
		int64(1), start, int64(2), int64(4), created, created,
		"The Musical Hop", (*string)(nil), "Guns N Petals", strPtr("https://img.example/gnp.jpg"),
	}}}
	repo := NewShowRepository(db, zap.NewNop())

	shows, err := repo.FindByVenueID(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, start, shows[0].StartTime)
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, "https://img.example/gnp.jpg", *shows[0].ArtistImageLink)
	assert.Contains(t, db.lastSQL, "s.venue_id = $1")
	assert.Equal(t, []any{int64(2)}, db.args)
}

func TestShowRepository_QueryFailure(t *testing.T) {
	boom := errors.New("relation \"shows\" does not exist")
	repo := NewShowRepository(&fakeDB{err: boom}, zap.NewNop())

	_, err := repo.FindAll(context.Background())

	assert.ErrorIs(t, err, boom)
}

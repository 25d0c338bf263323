package usecase

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"fyyur/internal/data/entity"
	"fyyur/internal/data/repository"
	"fyyur/internal/listing"

	"go.uber.org/zap"
)

var (
	testNow    = time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)
	errBackend = errors.New("connection refused")
)

// store is an in-memory stand-in for the three repositories.
type store struct {
	venues  map[int64]*entity.Venue
	artists map[int64]*entity.Artist
	shows   []*entity.Show
	nextID  int64
	failAll bool
}

func newStore() *store {
	return &store{
		venues:  make(map[int64]*entity.Venue),
		artists: make(map[int64]*entity.Artist),
	}
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *store) repository() *repository.Repository {
	return &repository.Repository{
		Venue:  fakeVenueRepo{s},
		Artist: fakeArtistRepo{s},
		Show:   fakeShowRepo{s},
	}
}

func newTestService(s *store) *Service {
	return NewService(s.repository(), listing.FixedClock(testNow), zap.NewNop())
}

func (s *store) addVenue(name, city, state string) *entity.Venue {
	v := &entity.Venue{Base: entity.Base{ID: s.id()}, Name: name, City: city, State: state, Address: "1 Main St", Genres: "Jazz"}
	s.venues[v.ID] = v
	return v
}

func (s *store) addArtist(name, city, state string) *entity.Artist {
	a := &entity.Artist{Base: entity.Base{ID: s.id()}, Name: name, City: city, State: state, Genres: "Jazz"}
	s.artists[a.ID] = a
	return a
}

func (s *store) addShow(venueID, artistID int64, start time.Time) {
	s.shows = append(s.shows, &entity.Show{Base: entity.Base{ID: s.id()}, VenueID: venueID, ArtistID: artistID, StartTime: start})
}

func (s *store) details(keep func(*entity.Show) bool) []*entity.ShowDetail {
	var out []*entity.ShowDetail
	for _, show := range s.shows {
		if !keep(show) {
			continue
		}
		v, a := s.venues[show.VenueID], s.artists[show.ArtistID]
		out = append(out, &entity.ShowDetail{
			Show:            *show,
			VenueName:       v.Name,
			VenueImageLink:  v.ImageLink,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
		})
	}
	slices.SortFunc(out, func(x, y *entity.ShowDetail) int { return x.StartTime.Compare(y.StartTime) })
	return out
}

type fakeVenueRepo struct{ s *store }

func (r fakeVenueRepo) Create(_ context.Context, v *entity.Venue) error {
	if r.s.failAll {
		return errBackend
	}
	v.ID = r.s.id()
	r.s.venues[v.ID] = v
	return nil
}

func (r fakeVenueRepo) FindByID(_ context.Context, id int64) (*entity.Venue, error) {
	if r.s.failAll {
		return nil, errBackend
	}
	v, ok := r.s.venues[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r fakeVenueRepo) FindAll(_ context.Context) ([]*entity.Venue, error) {
	if r.s.failAll {
		return nil, errBackend
	}
	out := make([]*entity.Venue, 0, len(r.s.venues))
	for _, v := range r.s.venues {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *entity.Venue) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r fakeVenueRepo) Update(_ context.Context, v *entity.Venue) error {
	if r.s.failAll {
		return errBackend
	}
	if _, ok := r.s.venues[v.ID]; !ok {
		return repository.ErrNoRows
	}
	r.s.venues[v.ID] = v
	return nil
}

func (r fakeVenueRepo) Delete(_ context.Context, id int64) error {
	if r.s.failAll {
		return errBackend
	}
	if _, ok := r.s.venues[id]; !ok {
		return repository.ErrNoRows
	}
	delete(r.s.venues, id)
	r.s.shows = slices.DeleteFunc(r.s.shows, func(show *entity.Show) bool { return show.VenueID == id })
	return nil
}

type fakeArtistRepo struct{ s *store }

func (r fakeArtistRepo) Create(_ context.Context, a *entity.Artist) error {
	if r.s.failAll {
		return errBackend
	}
	a.ID = r.s.id()
	r.s.artists[a.ID] = a
	return nil
}

func (r fakeArtistRepo) FindByID(_ context.Context, id int64) (*entity.Artist, error) {
	if r.s.failAll {
		return nil, errBackend
	}
	a, ok := r.s.artists[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r fakeArtistRepo) FindAll(_ context.Context) ([]*entity.Artist, error) {
	if r.s.failAll {
		return nil, errBackend
	}
	out := make([]*entity.Artist, 0, len(r.s.artists))
	for _, a := range r.s.artists {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *entity.Artist) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r fakeArtistRepo) Update(_ context.Context, a *entity.Artist) error {
	if r.s.failAll {
		return errBackend
	}
	if _, ok := r.s.artists[a.ID]; !ok {
		return repository.ErrNoRows
	}
	r.s.artists[a.ID] = a
	return nil
}

func (r fakeArtistRepo) Delete(_ context.Context, id int64) error {
	if r.s.failAll {
		return errBackend
	}
	if _, ok := r.s.artists[id]; !ok {
		return repository.ErrNoRows
	}
	delete(r.s.artists, id)
	r.s.shows = slices.DeleteFunc(r.s.shows, func(show *entity.Show) bool { return show.ArtistID == id })
	return nil
}

type fakeShowRepo struct{ s *store }

func (r fakeShowRepo) Create(_ context.Context, show *entity.Show) error {
	if r.s.failAll {
		return errBackend
	}
	show.ID = r.s.id()
	r.s.shows = append(r.s.shows, show)
	return nil
}

func (r fakeShowRepo) FindAll(_ context.Context) ([]*entity.ShowDetail, error) {
	if r.s.failAll {
		return nil, errBackend
	}
	return r.s.details(func(*entity.Show) bool { return true }), nil
}

func (r fakeShowRepo) FindByVenueID(_ context.Context, venueID int64) ([]*entity.ShowDetail, error) {
	if r.s.failAll {
		return nil, errBackend
	}
	return r.s.details(func(show *entity.Show) bool { return show.VenueID == venueID }), nil
}

func (r fakeShowRepo) FindByArtistID(_ context.Context, artistID int64) ([]*entity.ShowDetail, error) {
	if r.s.failAll {
		return nil, errBackend
	}
	return r.s.details(func(show *entity.Show) bool { return show.ArtistID == artistID }), nil
}

package resolve

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jonnymurillo288/ProducerMap/genius"
	"github.com/stretchr/testify/require"
)

// fakeAPI scripts search/lookup behavior and records every call.
type fakeAPI struct {
	hits      []genius.Hit
	searchErr error

	songs   map[int64]*genius.Song
	songErr map[int64]error

	searchCalls int
	songCalls   []int64
}

func (f *fakeAPI) Search(_ context.Context, _ string) ([]genius.Hit, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.hits, nil
}

func (f *fakeAPI) Song(_ context.Context, id int64) (*genius.Song, error) {
	f.songCalls = append(f.songCalls, id)
	if err, ok := f.songErr[id]; ok {
		return nil, err
	}
	if s, ok := f.songs[id]; ok {
		return s, nil
	}
	return nil, errors.New("no such song")
}

func hit(id int64, title, artist string) genius.Hit {
	return genius.Hit{
		Type: "song",
		Result: genius.SongStub{
			ID:            id,
			Title:         title,
			PrimaryArtist: genius.Artist{Name: artist},
		},
	}
}

func credited(id int64, title string) *genius.Song {
	return &genius.Song{
		ID:    id,
		Title: title,
		CustomPerformances: []genius.Performance{
			{Label: "Producer", Artists: []genius.Artist{{ID: 100 + id, Name: "Prod"}}},
		},
	}
}

func uncredited(id int64, title string) *genius.Song {
	return &genius.Song{ID: id, Title: title}
}

// testResolver returns a resolver with sleeps recorded, not slept.
func testResolver(api SongAPI, cfg Config) (*Resolver, *[]time.Duration) {
	r := NewResolver(api, cfg)
	var slept []time.Duration
	r.sleep = func(d time.Duration) { slept = append(slept, d) }
	return r, &slept
}

// ------------------------------------------------------
// Candidate selection
// ------------------------------------------------------

func TestResolve_SkipsTranslatedEditions(t *testing.T) {
	api := &fakeAPI{
		hits: []genius.Hit{
			hit(1, "FANCY (English Translation)", "Genius Translations"),
			hit(2, "FANCY", "TWICE"),
		},
		songs: map[int64]*genius.Song{2: credited(2, "FANCY")},
	}
	r, _ := testResolver(api, Config{})

	res, err := r.Resolve(context.Background(), "FANCY", "TWICE")
	require.NoError(t, err)
	require.EqualValues(t, 2, res.SongID)

	// The translation hit must never cost a detail fetch.
	require.Equal(t, []int64{2}, api.songCalls)
}

func TestResolve_FirstCreditedCandidateWins(t *testing.T) {
	api := &fakeAPI{
		hits: []genius.Hit{
			hit(1, "Bad Boy", "Red Velvet"),
			hit(2, "Bad Boy", "Red Velvet"),
		},
		songs: map[int64]*genius.Song{
			1: uncredited(1, "Bad Boy"),
			2: credited(2, "Bad Boy"),
		},
	}
	r, _ := testResolver(api, Config{})

	res, err := r.Resolve(context.Background(), "Bad Boy", "Red Velvet")
	require.NoError(t, err)
	require.EqualValues(t, 2, res.SongID)
	require.NotNil(t, res.Details)
}

func TestResolve_DetailFailureMakesCandidateUnusable(t *testing.T) {
	api := &fakeAPI{
		hits: []genius.Hit{
			hit(1, "Always", "ZEROBASEONE"),
			hit(2, "Always", "ZEROBASEONE"),
		},
		songs:   map[int64]*genius.Song{2: credited(2, "Always")},
		songErr: map[int64]error{1: errors.New("boom")},
	}
	r, _ := testResolver(api, Config{})

	res, err := r.Resolve(context.Background(), "Always", "ZEROBASEONE")
	require.NoError(t, err)
	require.EqualValues(t, 2, res.SongID)
}

func TestResolve_ScanBoundIsConfigurable(t *testing.T) {
	api := &fakeAPI{
		hits: []genius.Hit{
			hit(1, "A", "X"),
			hit(2, "B", "X"),
			hit(3, "C", "X"),
		},
		songs: map[int64]*genius.Song{
			1: uncredited(1, "A"),
			2: uncredited(2, "B"),
			3: credited(3, "C"),
		},
	}
	r, _ := testResolver(api, Config{MaxHits: 2})

	res, err := r.Resolve(context.Background(), "A", "X")
	require.NoError(t, err)

	// Only hits 1 and 2 were scanned; neither qualified, so the
	// resolver fell back to the first hit (one extra fetch of id 1).
	require.EqualValues(t, 1, res.SongID)
	require.Equal(t, []int64{1, 2, 1}, api.songCalls)
}

// ------------------------------------------------------
// Fallback
// ------------------------------------------------------

func TestResolve_FallbackToFirstHitWithoutCredits(t *testing.T) {
	api := &fakeAPI{
		hits: []genius.Hit{
			hit(1, "Appetizer", "Jay Park"),
		},
		songs: map[int64]*genius.Song{1: uncredited(1, "Appetizer")},
	}
	r, _ := testResolver(api, Config{})

	res, err := r.Resolve(context.Background(), "Appetizer", "Jay Park")
	require.NoError(t, err)
	require.EqualValues(t, 1, res.SongID)
	require.Equal(t, "Appetizer", res.SongName)
	require.Equal(t, "Jay Park", res.Artist)
	require.NotNil(t, res.Details)
}

func TestResolve_FallbackSurvivesDetailFailure(t *testing.T) {
	api := &fakeAPI{
		hits:    []genius.Hit{hit(1, "Appetizer", "Jay Park")},
		songErr: map[int64]error{1: errors.New("boom")},
	}
	r, _ := testResolver(api, Config{})

	res, err := r.Resolve(context.Background(), "Appetizer", "Jay Park")
	require.NoError(t, err)
	require.EqualValues(t, 1, res.SongID)
	require.Nil(t, res.Details)
}

func TestResolve_FallbackEvenWhenFirstHitIsTranslation(t *testing.T) {
	// The marker filter guards the scan, not the fallback: if nothing
	// credited is found the first hit is used regardless of its title.
	api := &fakeAPI{
		hits: []genius.Hit{
			hit(1, "DALLA DALLA (Romanized)", "Genius Romanizations"),
			hit(2, "DALLA DALLA", "ITZY"),
		},
		songs: map[int64]*genius.Song{
			1: uncredited(1, "DALLA DALLA (Romanized)"),
			2: uncredited(2, "DALLA DALLA"),
		},
	}
	r, _ := testResolver(api, Config{})

	res, err := r.Resolve(context.Background(), "DALLA DALLA", "ITZY")
	require.NoError(t, err)
	require.EqualValues(t, 1, res.SongID)
}

// ------------------------------------------------------
// Failure modes
// ------------------------------------------------------

func TestResolve_SearchErrorAbortsQuery(t *testing.T) {
	api := &fakeAPI{searchErr: errors.New("genius down")}
	r, _ := testResolver(api, Config{})

	_, err := r.Resolve(context.Background(), "X", "Y")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestResolve_ZeroHitsIsNotFound(t *testing.T) {
	api := &fakeAPI{}
	r, _ := testResolver(api, Config{})

	_, err := r.Resolve(context.Background(), "X", "Y")
	require.ErrorIs(t, err, ErrNotFound)
}

// ------------------------------------------------------
// Pacing
// ------------------------------------------------------

func TestResolve_PausesOnlyAfterFetchCheckCycles(t *testing.T) {
	api := &fakeAPI{
		hits: []genius.Hit{
			hit(1, "Song (English Translation)", "Genius Translations"), // title skip, no pause
			hit(2, "Song", "Artist"),                                    // fetch, no credits, pause
			hit(3, "Song", "Artist"),                                    // fetch, credited, selected
		},
		songs: map[int64]*genius.Song{
			2: uncredited(2, "Song"),
			3: credited(3, "Song"),
		},
	}
	r, slept := testResolver(api, Config{CandidateDelay: 300 * time.Millisecond})

	_, err := r.Resolve(context.Background(), "Song", "Artist")
	require.NoError(t, err)
	require.Equal(t, []time.Duration{300 * time.Millisecond}, *slept)
}

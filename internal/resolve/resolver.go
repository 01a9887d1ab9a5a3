package resolve

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Jonnymurillo288/ProducerMap/genius"
	"github.com/Jonnymurillo288/ProducerMap/producers"
)

// SongAPI is the slice of the Genius client the resolver needs. The
// HTTP handlers wire in *genius.Client; tests wire in a fake.
type SongAPI interface {
	Search(ctx context.Context, query string) ([]genius.Hit, error)
	Song(ctx context.Context, id int64) (*genius.Song, error)
}

// ErrNotFound means the search produced zero hits for a query.
var ErrNotFound = errors.New("song not found")

// DefaultMaxHits bounds how many search hits are scanned per query.
const DefaultMaxHits = 10

// Config exposes the scan bound and pacing delays so the heuristic is
// testable under mocked time instead of hard-coded sleeps.
type Config struct {
	MaxHits        int           // search hits scanned per query
	CandidateDelay time.Duration // pause between candidate detail fetches
	QueryDelay     time.Duration // pause after each batch query
}

// DefaultConfig returns the production pacing values.
func DefaultConfig() Config {
	return Config{
		MaxHits:        DefaultMaxHits,
		CandidateDelay: 300 * time.Millisecond,
		QueryDelay:     500 * time.Millisecond,
	}
}

// Resolution is the outcome of resolving one (title, artist) query:
// the edition that was selected plus its detail record. Details is nil
// when the fallback fetch failed; extraction then yields no producers.
type Resolution struct {
	SongID   int64
	SongName string
	Artist   string
	Details  *genius.Song
}

// Resolver picks the original, credited edition of a song among the
// search hits Genius returns for a (title, artist) query.
type Resolver struct {
	api   SongAPI
	cfg   Config
	sleep func(time.Duration)
}

// NewResolver builds a resolver around the given API. A zero MaxHits
// falls back to DefaultMaxHits; zero delays mean no pacing.
func NewResolver(api SongAPI, cfg Config) *Resolver {
	if cfg.MaxHits <= 0 {
		cfg.MaxHits = DefaultMaxHits
	}
	return &Resolver{
		api:   api,
		cfg:   cfg,
		sleep: time.Sleep,
	}
}

// Resolve finds the best edition of a song:
//
//  1. Search Genius with "<title> <artist>" as free text.
//  2. Scan the top hits in returned order, skipping translated or
//     romanized titles, and select the first candidate whose detail
//     record carries producer credits.
//  3. If nothing qualifies, fall back to the very first hit with a
//     best-effort detail fetch.
//
// A failed detail fetch makes that one candidate unusable; only a
// failed search aborts the query.
func (r *Resolver) Resolve(ctx context.Context, title, artist string) (*Resolution, error) {
	query := title + " " + artist

	hits, err := r.api.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if len(hits) == 0 {
		return nil, ErrNotFound
	}

	limit := r.cfg.MaxHits
	if len(hits) < limit {
		limit = len(hits)
	}

	for _, h := range hits[:limit] {
		song := h.Result

		// Translated/romanized re-uploads never carry the original
		// credits. Skipping on title alone costs no API call.
		if producers.IsNonCanonicalTitle(song.Title) {
			continue
		}

		details, err := r.api.Song(ctx, song.ID)
		if err == nil && producers.HasCredits(details) {
			log.Printf("found original with credits: %q by %q", song.Title, song.PrimaryArtist.Name)
			return &Resolution{
				SongID:   song.ID,
				SongName: song.Title,
				Artist:   song.PrimaryArtist.Name,
				Details:  details,
			}, nil
		}

		// Courtesy pause between detail fetches only. Pure title
		// skips above never burn an API call, so they never pause.
		r.sleep(r.cfg.CandidateDelay)
	}

	// No scanned candidate qualified: take the top hit as-is. Missing
	// details yield a record with an empty producer list, not an error.
	first := hits[0].Result
	log.Printf("no edition with credits for %q by %q, falling back to top hit", title, artist)

	details, err := r.api.Song(ctx, first.ID)
	if err != nil {
		log.Printf("fallback detail fetch failed for song %d: %v", first.ID, err)
		details = nil
	}

	return &Resolution{
		SongID:   first.ID,
		SongName: first.Title,
		Artist:   first.PrimaryArtist.Name,
		Details:  details,
	}, nil
}

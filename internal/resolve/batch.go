package resolve

import (
	"context"
	"log"
	"time"

	"github.com/Jonnymurillo288/ProducerMap/producers"
	"github.com/google/uuid"
)

// SongQuery is one caller-supplied (title, artist) pair.
type SongQuery struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Processor runs a batch of queries strictly sequentially, pausing
// between queries to respect Genius rate limits. One failed query
// never aborts the batch.
type Processor struct {
	res   *Resolver
	sleep func(time.Duration)
}

// NewProcessor wraps a resolver; the per-query delay comes from the
// resolver's config.
func NewProcessor(res *Resolver) *Processor {
	return &Processor{
		res:   res,
		sleep: time.Sleep,
	}
}

// ProcessAll resolves each query in order and assembles the credit
// records. Unresolved songs are dropped, not nulled, so the output is
// order-preserving with length <= len(queries). The only fatal error
// is context cancellation between queries.
func (p *Processor) ProcessAll(ctx context.Context, queries []SongQuery) ([]producers.SongCredits, error) {
	batchID := uuid.NewString()[:8]
	out := make([]producers.SongCredits, 0, len(queries))

	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		log.Printf("[batch %s] (%d/%d) processing %q by %q", batchID, i+1, len(queries), q.Title, q.Artist)

		res, err := p.res.Resolve(ctx, q.Title, q.Artist)
		if err != nil {
			log.Printf("[batch %s] could not resolve %q by %q: %v", batchID, q.Title, q.Artist, err)
		} else {
			prods := producers.ExtractProducers(res.Details)
			out = append(out, producers.SongCredits{
				SongID:        res.SongID,
				SongName:      res.SongName,
				Artist:        res.Artist,
				Producers:     prods,
				ProducerCount: len(prods),
				CreditsFound:  producers.HasCredits(res.Details),
				MatchScore:    producers.TitleSimilarity(q.Title, res.SongName),
			})
			log.Printf("[batch %s] %q: found %d producer(s)", batchID, res.SongName, len(prods))
		}

		// Rate-limit courtesy: applies after every query, hit or miss.
		p.sleep(p.res.cfg.QueryDelay)
	}

	return out, nil
}

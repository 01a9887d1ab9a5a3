package producers

import (
	"strconv"
	"strings"

	"github.com/Jonnymurillo288/ProducerMap/genius"
)

// ProducerRef identifies one credited producer. ID is the Genius artist
// id in string form so the same person keys maps and JSON objects
// consistently across songs.
type ProducerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SongCredits is one resolved song with its deduplicated producer list.
type SongCredits struct {
	SongID        int64         `json:"song_id"`
	SongName      string        `json:"song_name"`
	Artist        string        `json:"artist"`
	Producers     []ProducerRef `json:"producers"`
	ProducerCount int           `json:"producer_count"`

	// CreditsFound distinguishes "resolved but Genius has no producer
	// credits for any edition" from a song that was never found at all
	// (those are dropped from batch output entirely).
	CreditsFound bool `json:"credits_found"`

	// MatchScore is the normalized-title similarity between the query
	// and the resolved edition. Diagnostic only.
	MatchScore float64 `json:"match_score"`
}

// -------------------------------------------------------
// Credit predicates
// -------------------------------------------------------

// HasCredits reports whether a song detail record carries any producer
// credit signal: a custom performance labeled "...producer..." or a
// non-empty dedicated producer list.
func HasCredits(s *genius.Song) bool {
	if s == nil {
		return false
	}

	for _, perf := range s.CustomPerformances {
		if strings.Contains(strings.ToLower(perf.Label), "producer") {
			return true
		}
	}

	return len(s.ProducerArtists) > 0
}

// -------------------------------------------------------
// Extraction
// -------------------------------------------------------

// ExtractProducers pulls every credited producer out of a song detail
// record, deduplicated by id in first-seen order: custom performance
// rosters first (in label order), then any producer_artists entries not
// already present. A nil record yields an empty, non-nil list.
func ExtractProducers(s *genius.Song) []ProducerRef {
	out := make([]ProducerRef, 0)
	seen := make(map[string]bool)

	if s == nil {
		return out
	}

	for _, perf := range s.CustomPerformances {
		label := strings.ToLower(perf.Label)
		if !strings.Contains(label, "producer") && !strings.Contains(label, "produced") {
			continue
		}
		for _, a := range perf.Artists {
			id := strconv.FormatInt(a.ID, 10)
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, ProducerRef{ID: id, Name: a.Name, URL: a.URL})
		}
	}

	for _, a := range s.ProducerArtists {
		id := strconv.FormatInt(a.ID, 10)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, ProducerRef{ID: id, Name: a.Name, URL: a.URL})
	}

	return out
}

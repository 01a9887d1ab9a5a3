package producers

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// ------------------------------------
// Non-canonical edition markers
// ------------------------------------

// nonCanonicalMarkers flag search hits that are translated or
// romanized re-uploads rather than the credited original. Matching is
// case-insensitive substring on the RESULT title, never the query.
var nonCanonicalMarkers = []string{
	"translation",
	"romanized",
	"english ver",
	"japanese ver",
}

// IsNonCanonicalTitle reports whether a result title denotes a
// translated/romanized edition that should never be selected.
func IsNonCanonicalTitle(title string) bool {
	t := strings.ToLower(title)
	for _, marker := range nonCanonicalMarkers {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}

// ------------------------------------
// Normalization
// ------------------------------------

var reStripPunctuation = regexp.MustCompile(`[.,:;(){}\[\]'"!?]`)

func stripDiacritics(s string) string {
	t := norm.NFD.String(s)
	out := make([]rune, 0, len(t))
	for _, r := range t {
		if unicode.IsMark(r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func normalizeTitle(s string) string {
	s = strings.ToLower(s)
	s = stripDiacritics(s)
	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "—", "-")
	s = reStripPunctuation.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// ------------------------------------
// Similarity
// ------------------------------------

// TitleSimilarity scores how close the resolved edition's title is to
// the title the caller asked for, in [0,1]. Purely informational: it
// never influences which candidate the resolver selects.
func TitleSimilarity(query, resolved string) float64 {
	return levenshtein.Similarity(normalizeTitle(query), normalizeTitle(resolved), nil)
}

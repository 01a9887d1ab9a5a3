package genius

// Artist is the abbreviated artist record Genius embeds everywhere:
// search hits, primary_artist, custom performance rosters, producer lists.
type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SongStub is the trimmed song record inside a search hit. Only the
// fields the resolver reads are mapped.
type SongStub struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	FullTitle     string `json:"full_title"`
	URL           string `json:"url"`
	PrimaryArtist Artist `json:"primary_artist"`
}

// Hit is one entry of the /search response.
type Hit struct {
	Type   string   `json:"type"`
	Result SongStub `json:"result"`
}

// Performance is one labeled credit block on a song page, e.g.
// {"label": "Video Producer", "artists": [...]}.
type Performance struct {
	Label   string   `json:"label"`
	Artists []Artist `json:"artists"`
}

// Song is the full song record returned by /songs/:id.
type Song struct {
	ID                 int64         `json:"id"`
	Title              string        `json:"title"`
	URL                string        `json:"url"`
	PrimaryArtist      Artist        `json:"primary_artist"`
	CustomPerformances []Performance `json:"custom_performances"`
	ProducerArtists    []Artist      `json:"producer_artists"`
	WriterArtists      []Artist      `json:"writer_artists"`
}

// ------------
// Wire envelopes
// ------------

type searchResponse struct {
	Response struct {
		Hits []Hit `json:"hits"`
	} `json:"response"`
}

type songResponse struct {
	Response struct {
		Song *Song `json:"song"`
	} `json:"response"`
}

package main

import (
	"encoding/json"
	"net/http"

	"github.com/Jonnymurillo288/ProducerMap/internal/resolve"
	"github.com/Jonnymurillo288/ProducerMap/producers"
)

// server holds the wired pipeline. Handlers stay thin: validate,
// delegate to the processor / network builder, serialize.
type server struct {
	proc          *resolve.Processor
	apiConfigured bool
}

// ------------------------------------------------------------
// JSON helpers
// ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// validateQueries enforces the request contract before any external
// call is made. Returns a human-readable problem, or "" when valid.
func validateQueries(queries []resolve.SongQuery) string {
	if len(queries) == 0 {
		return "No songs provided"
	}
	for _, q := range queries {
		if q.Title == "" || q.Artist == "" {
			return `Each song must have "title" and "artist" fields`
		}
	}
	return ""
}

// ------------------------------------------------------------
// POST /process-songs
// ------------------------------------------------------------

type processSongsRequest struct {
	Songs []resolve.SongQuery `json:"songs"`
}

type processSongsResponse struct {
	Success             bool                    `json:"success"`
	Songs               []producers.SongCredits `json:"songs"`
	TotalSongs          int                     `json:"total_songs"`
	TotalProducersFound int                     `json:"total_producers_found"`
}

func (s *server) processSongs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req processSongsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateQueries(req.Songs); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	records, err := s.proc.ProcessAll(r.Context(), req.Songs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	total := 0
	for _, rec := range records {
		total += len(rec.Producers)
	}

	writeJSON(w, http.StatusOK, processSongsResponse{
		Success:             true,
		Songs:               records,
		TotalSongs:          len(records),
		TotalProducersFound: total,
	})
}

// ------------------------------------------------------------
// POST /build-network
// ------------------------------------------------------------

type buildNetworkRequest struct {
	Songs []producers.SongCredits `json:"songs"`
}

func (s *server) buildNetwork(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req buildNetworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Songs) == 0 {
		writeError(w, http.StatusBadRequest, "No songs data provided")
		return
	}

	net := producers.BuildNetwork(req.Songs)

	var mostName interface{}
	if node := net.MostCollaborative(); node != nil {
		mostName = node.Name
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"network": net.Nodes,
		"stats": map[string]interface{}{
			"total_producers":                 net.Len(),
			"total_songs_with_collaborations": producers.CountCollaborativeSongs(req.Songs),
			"most_collaborative_producer":     mostName,
		},
	})
}

// ------------------------------------------------------------
// POST /process-and-build
// ------------------------------------------------------------

func (s *server) processAndBuild(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req processSongsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateQueries(req.Songs); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	records, err := s.proc.ProcessAll(r.Context(), req.Songs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	net := producers.BuildNetwork(records)

	var most interface{}
	if node := net.MostCollaborative(); node != nil {
		most = map[string]interface{}{
			"name":                node.Name,
			"collaborators_count": node.UniqueCollaborators,
			"total_songs":         node.TotalSongs,
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"songs":   records,
		"network": net.Nodes,
		"stats": map[string]interface{}{
			"total_songs_processed":           len(records),
			"total_producers":                 net.Len(),
			"total_songs_with_collaborations": producers.CountCollaborativeSongs(records),
			"most_collaborative_producer":     most,
		},
	})
}

// ------------------------------------------------------------
// GET /health
// ------------------------------------------------------------

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"api_configured": s.apiConfigured,
	})
}

// ------------------------------------------------------------
// GET /test-kpop — diagnostic run over a fixed song list
// ------------------------------------------------------------

var kpopTestSongs = []resolve.SongQuery{
	{Title: "Alcohol-Free", Artist: "TWICE"},
	{Title: "Antifragile", Artist: "LE SSERAFIM"},
	{Title: "Always", Artist: "ZEROBASEONE"},
	{Title: "Appetizer", Artist: "Jay Park"},
	{Title: "Bang Bang Bang", Artist: "BIGBANG"},
	{Title: "Bad Boy", Artist: "Red Velvet"},
	{Title: "FANCY", Artist: "TWICE"},
	{Title: "DALLA DALLA", Artist: "ITZY"},
}

func (s *server) testKpop(w http.ResponseWriter, r *http.Request) {
	records, err := s.proc.ProcessAll(r.Context(), kpopTestSongs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	net := producers.BuildNetwork(records)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"songs":   records,
		"network": net.Nodes,
		"stats": map[string]interface{}{
			"total_songs_processed": len(records),
			"total_producers":       net.Len(),
		},
	})
}

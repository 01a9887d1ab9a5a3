package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Jonnymurillo288/ProducerMap/genius"
	"github.com/Jonnymurillo288/ProducerMap/internal/resolve"
	"github.com/Jonnymurillo288/ProducerMap/internal/secret"
)

// withCORS allows the graph frontend to call the API from any origin.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg, err := secret.LoadSecrets()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.Configured() {
		log.Println("WARNING: GENIUS_ACCESS_TOKEN not set — Genius API calls will fail")
	} else {
		log.Println("Genius API token configured")
	}

	client := genius.NewClient(cfg.GeniusAccessToken)
	resolver := resolve.NewResolver(client, resolve.DefaultConfig())

	s := &server{
		proc:          resolve.NewProcessor(resolver),
		apiConfigured: cfg.Configured(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/process-songs", s.processSongs)
	mux.HandleFunc("/build-network", s.buildNetwork)
	mux.HandleFunc("/process-and-build", s.processAndBuild)
	mux.HandleFunc("/health", s.health)
	mux.HandleFunc("/test-kpop", s.testKpop)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Listening on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, withCORS(mux)))
}

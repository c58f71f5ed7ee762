package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/capofinder/capo"
	"github.com/jsphweid/capofinder/chord"
	"github.com/jsphweid/capofinder/constants"
	"github.com/jsphweid/capofinder/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the capo search over HTTP",
	Long:  `Serves POST /capo and GET /chords on the configured address (CAPO_ADDR, default :8080).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := constants.Load()
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not encode response: %v", err)
	}
}

func HandleCapo(w http.ResponseWriter, r *http.Request) {
	var input model.CapoRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not decode request body: " + err.Error()})
		return
	}

	p, err := chord.ParseProgression(input.Chords)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	res := capo.FindCapoPosition(p)
	chords := make([]string, 0)
	if res.Found {
		chords = res.Transposed.Names()
	}
	writeJSON(w, http.StatusOK, model.CapoResponse{
		Id:      uuid.New().String(),
		Found:   res.Found,
		Fret:    res.Fret,
		Chords:  chords,
		Message: capo.Message(res),
	})
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	res := make([]model.PitchClassInfo, 0, chord.NumPitchClasses)
	for _, pc := range chord.All() {
		res = append(res, model.PitchClassInfo{Name: pc.String(), Barre: pc.IsBarreChord()})
	}
	writeJSON(w, http.StatusOK, res)
}

func NewRouter(cfg constants.Config) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/capo", HandleCapo).Methods("POST")
	router.HandleFunc("/chords", HandleChords).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func serve(cfg constants.Config) error {
	log.Printf("Listening on %v", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, NewRouter(cfg)); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

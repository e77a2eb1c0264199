package cmd

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/soravia/notedense/analyzer"
	"github.com/soravia/notedense/constants"
	"github.com/soravia/notedense/fetch"
	"github.com/soravia/notedense/model"
	"github.com/soravia/notedense/osu"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves the density analyzer over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

// HandleAnalyze downloads a beatmap, runs the density analysis and
// responds with the average NPS plus a distribution. Undefined results
// and bad beatmaps are the client's fault (400); failed downloads are
// the upstream's (502).
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxBodyBytes)

	var input model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	if input.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	content, err := fetch.Download(input.URL)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	b, err := osu.Parse(strings.NewReader(content))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	blocks := input.Blocks
	if blocks == 0 && input.Frequency == 0 {
		blocks = constants.DefaultBlockCount
	}

	avg, dist, width, err := analyze(b, blocks, input.Frequency)
	if err != nil {
		if errors.Is(err, analyzer.ErrUndefined) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	res := model.AnalyzeResponse{
		Id:           uuid.New().String(),
		AvgNps:       avg,
		Distribution: toKeyValues(dist, width),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	handler := cors.Default().Handler(router)

	addr := constants.GetListenAddr()
	log.Printf("listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

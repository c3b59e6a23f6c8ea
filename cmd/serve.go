package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wood-couture/market-scout/internal/filter"
	"github.com/wood-couture/market-scout/internal/pipeline"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an HTTP server exposing discovery and lookup",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p, err := initPipeline("serve")
		if err != nil {
			return err
		}

		mux := newServeMux(p)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newServeMux builds the HTTP routes over the pipeline. Split out so the
// routes can be tested without binding a port.
func newServeMux(p *pipeline.Pipeline) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /discover", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Terms        []string `json:"terms"`
			Requirements string   `json:"requirements"`
			Country      string   `json:"country"`
			MaxResults   int      `json:"max_results"`
			Offset       int      `json:"offset"`
			Exclude      []string `json:"exclude"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		if len(req.Terms) == 0 {
			req.Terms = cfg.Search.Terms
		}
		if req.Country == "" {
			req.Country = cfg.Search.Country
		}

		exclude := filter.NewNameSet()
		for _, name := range req.Exclude {
			exclude.Add(name)
		}

		records, err := p.Discover(r.Context(), pipeline.DiscoverParams{
			Terms:        req.Terms,
			Requirements: req.Requirements,
			Country:      req.Country,
			MaxResults:   req.MaxResults,
			Offset:       req.Offset,
			Exclude:      exclude,
		})
		if err != nil {
			zap.L().Error("discover request failed", zap.Error(err))
			http.Error(w, `{"error":"discovery failed"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"companies": records})
	})

	mux.HandleFunc("POST /company", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, `{"error":"name is required"}`, http.StatusBadRequest)
			return
		}

		rec, err := p.Lookup(r.Context(), req.Name)
		if err != nil {
			if eris.Is(err, pipeline.ErrNotFound) {
				http.Error(w, `{"error":"company not found"}`, http.StatusNotFound)
				return
			}
			zap.L().Error("company request failed", zap.String("name", req.Name), zap.Error(err))
			http.Error(w, `{"error":"lookup failed"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rec)
	})

	return mux
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

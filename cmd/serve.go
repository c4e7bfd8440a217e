package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bioseq/alignkit/api/handlers"
	"github.com/bioseq/alignkit/api/middleware"
	"github.com/bioseq/alignkit/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd runs the REST API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the alignkit REST API server",
	Long: `Serve exposes alignment, pattern search and sequence operations
over HTTP. All endpoints accept and return JSON.`,
	Example: "  alignkit serve --addr :8080",
	RunE:    runServe,
}

func init() {
	serveCmd.Flags().String("addr", "localhost:8080", "address to listen on")
	must(viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr")))

	rootCmd.AddCommand(serveCmd)
}

// NewRouter builds the HTTP routes served by alignkit serve.
func NewRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/validate", handlers.ValidateHandler)
			r.Post("/info", handlers.SequenceInfoHandler)
			r.Post("/complement", handlers.ComplementHandler)
			r.Post("/reverse-complement", handlers.ReverseComplementHandler)
			r.Post("/transcribe", handlers.TranscribeHandler)
		})

		r.Route("/alignment", func(r chi.Router) {
			r.Post("/global", handlers.GlobalAlignHandler)
			r.Post("/local", handlers.LocalAlignHandler)
			r.Post("/score", handlers.AlignmentScoreHandler)
		})

		r.Post("/search", handlers.SearchHandler)
	})

	return r
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      NewRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("could not gracefully shutdown: %v", err)
		}
		close(done)
	}()

	log.Printf("alignkit API server starting on http://%s", cfg.Server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-done
	log.Println("server stopped")
	return nil
}

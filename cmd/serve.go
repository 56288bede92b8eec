package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordshift/config"
	"github.com/jsphweid/chordshift/line"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/song"
	"github.com/jsphweid/chordshift/transpose"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the transposer over HTTP",
	Long:  `Serves the transposer over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

type server struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewRouter(cfg *config.Config, logger *zap.Logger) http.Handler {
	s := &server{cfg: cfg, logger: logger}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.withRequestID)
	router.HandleFunc("/transpose", s.handleTranspose).Methods(http.MethodPost)
	router.HandleFunc("/classify", s.handleClassify).Methods(http.MethodPost)
	router.HandleFunc("/song/view", s.handleSongView).Methods(http.MethodPost)
	router.HandleFunc("/song/edit", s.handleSongEdit).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowOrigins,
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(router)
}

func (s *server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("Handled request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func (s *server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Warn("Could not decode request body",
			zap.String("id", r.Header.Get(RequestIDHeader)),
			zap.Error(err))
		s.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not decode request body: " + err.Error()})
		return false
	}
	return true
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Could not encode response", zap.Error(err))
	}
}

func (s *server) handleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	s.writeJSON(w, http.StatusOK, model.TextResponse{Text: transpose.Transpose(input.Text, input.Semitones)})
}

func (s *server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var input model.ClassifyRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	lines := line.Split(input.Text)
	res := make([]model.ClassifiedLine, 0, len(lines))
	for _, l := range lines {
		res = append(res, model.ClassifiedLine{Line: l.Text, Kind: l.Kind.String(), Transposable: l.Kind.Transposable()})
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *server) handleSongView(w http.ResponseWriter, r *http.Request) {
	var input model.SongViewRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	s.writeJSON(w, http.StatusOK, model.TextResponse{Text: song.View(input.Song)})
}

func (s *server) handleSongEdit(w http.ResponseWriter, r *http.Request) {
	var input model.SongEditRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	s.writeJSON(w, http.StatusOK, model.SongResponse{Song: song.ApplyEdit(input.Song, input.Text)})
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("Listening", zap.String("addr", srv.Addr))
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

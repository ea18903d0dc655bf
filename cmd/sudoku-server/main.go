package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	httpadapter "svw.info/sudokusolve/internal/adapters/http"
	"svw.info/sudokusolve/internal/hint"
	"svw.info/sudokusolve/internal/infrastructure/storage"
	"svw.info/sudokusolve/internal/logger"
	"svw.info/sudokusolve/internal/ports"
	"svw.info/sudokusolve/internal/solver"
	"svw.info/sudokusolve/internal/usecase"
	"svw.info/sudokusolve/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Int("bytes", sw.bytes).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	engine := flag.String("solver", "cp", "solver to use: cp|backtrack")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(strings.ToLower(*levelStr))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger.Set(logger.Logger().Level(lvl))
	log := logger.Logger()
	_ = os.MkdirAll(*persist, 0o755)

	// Constraint propagation by default, plain backtracking via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*engine)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewCPSolver()
	}

	// Wire providers → use cases → HTTP adapter
	v := validator.New()
	st := storage.NewFS(*persist)
	hin := hint.NewSingles()
	uc := usecase.NewService(s, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(log, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", *addr).Str("persist", *persist).Str("solver", *engine).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

// Package server exposes the class engine over HTTP for browser-side
// tooling. It owns no state of its own: every request re-reads the target
// file through the source store and parses it from scratch.
package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/classpatch/classpatch/internal/history"
	"github.com/classpatch/classpatch/internal/jsx"
	"github.com/classpatch/classpatch/internal/source"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Server handles class read/update requests against a source store.
type Server struct {
	store  *source.Store
	engine *jsx.Engine
	db     *sql.DB // nil disables the edit journal
	log    *zap.Logger
}

func New(store *source.Store, db *sql.DB, log *zap.Logger) *Server {
	return &Server{store: store, engine: &jsx.Engine{}, db: db, log: log}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/class/get", s.handleGet)
	mux.HandleFunc("POST /api/class/update", s.handleUpdate)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

type classRequest struct {
	File  string `json:"file"`
	Tag   string `json:"tag"`
	Index *int   `json:"index,omitempty"`
	Value string `json:"value,omitempty"`
}

// ordinal maps a missing index to the engine's "no ordinal" marker.
func (r *classRequest) ordinal() int {
	if r.Index == nil {
		return -1
	}
	return *r.Index
}

type getResponse struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}

type updateResponse struct {
	Changed bool `json:"changed"`
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	src, err := s.store.Read(req.File)
	if err != nil {
		s.fileError(w, req.File, err)
		return
	}

	value, found, err := s.engine.GetClassExpression(r.Context(), src, req.Tag, req.ordinal())
	if err != nil {
		s.log.Warn("read failed", zap.String("file", req.File), zap.Error(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.respond(w, getResponse{Value: value, Found: found})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	var oldValue string
	var hadOld bool

	changed, err := s.store.Update(req.File, func(src []byte) ([]byte, error) {
		oldValue, hadOld, _ = s.engine.GetClassExpression(r.Context(), src, req.Tag, req.ordinal())
		return s.engine.UpdateClass(r.Context(), src, req.Tag, req.Value, req.ordinal())
	})
	if err != nil {
		if errors.Is(err, jsx.ErrParse) {
			s.log.Warn("update rejected", zap.String("file", req.File), zap.Error(err))
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.fileError(w, req.File, err)
		return
	}

	if changed && s.db != nil {
		_, err := history.Record(s.db, history.Edit{
			FilePath: req.File,
			TagName:  req.Tag,
			Ordinal:  req.ordinal(),
			OldValue: oldValue,
			HadOld:   hadOld,
			NewValue: req.Value,
		})
		if err != nil {
			s.log.Warn("journal write failed", zap.Error(err))
		}
	}

	s.log.Info("update applied",
		zap.String("file", req.File),
		zap.String("tag", req.Tag),
		zap.Bool("changed", changed))

	s.respond(w, updateResponse{Changed: changed})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (classRequest, bool) {
	var req classRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	if req.File == "" || req.Tag == "" {
		http.Error(w, "file and tag are required", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (s *Server) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("response encode failed", zap.Error(err))
	}
}

func (s *Server) fileError(w http.ResponseWriter, file string, err error) {
	if os.IsNotExist(err) {
		http.Error(w, "file not found: "+file, http.StatusNotFound)
		return
	}
	s.log.Error("file access failed", zap.String("file", file), zap.Error(err))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// Run serves s on addr until ctx is canceled, then drains in-flight
// requests before returning.
func Run(ctx context.Context, addr string, s *Server) error {
	httpServer := &http.Server{Addr: addr, Handler: s.Handler()}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

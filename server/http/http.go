// Package http exposes the toolkit over a JSON HTTP surface: GET /tools for
// discovery and POST /tools/{name} for invocation.
package http

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/w-h-a/timekit"
	"github.com/w-h-a/timekit/server"
)

type httpServer struct {
	options server.Options
	kit     *timekit.TimeKit
	router  *mux.Router
	server  *http.Server
}

func (s *httpServer) Start() error {
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *httpServer) handleDiscover(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"version": "1.0",
		"tools":   s.kit.Tools(),
	})
}

func (s *httpServer) handleInvoke(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	defer r.Body.Close()

	args := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
	}

	content, err := s.kit.Call(r.Context(), name, args)
	if err != nil {
		log.Printf("tool %s rejected: %v", name, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, content)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"error": message})
}

func NewServer(kit *timekit.TimeKit, opts ...server.Option) server.Server {
	options := server.NewOptions(opts...)

	s := &httpServer{
		options: options,
		kit:     kit,
	}

	router := mux.NewRouter()
	router.HandleFunc("/tools", s.handleDiscover).Methods(http.MethodGet)
	router.HandleFunc("/tools/{name}", s.handleInvoke).Methods(http.MethodPost)
	s.router = router

	var handler http.Handler = router
	if ms, ok := MiddlewareFrom(options.Context); ok {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}
	}

	s.server = &http.Server{
		Addr:    options.Address,
		Handler: handler,
	}

	return s
}

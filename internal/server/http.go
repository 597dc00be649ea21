package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"skirmish-server/internal/engine"
	"skirmish-server/internal/version"
	"skirmish-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

type Server struct {
	Engine *engine.GameService
	Port   string
}

func New(engine *engine.GameService, port string) *Server {
	return &Server{
		Engine: engine,
		Port:   port,
	}
}

// Handler builds the route table. Split from Run so tests can mount it on httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	NewDebugHandler(s.Engine).RegisterRoutes(mux)

	// pprof registers itself on the default mux
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	return mux
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	logger.Log.WithFields(logrus.Fields{
		"component": "http",
		"port":      s.Port,
	}).Info("Skirmish server listening")
	return http.ListenAndServe(":"+s.Port, s.Handler())
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS upgrades the connection and starts the pumps of a new spectator.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Engine, conn)
	client.subscribe()

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Debug("version write failed")
	}
}

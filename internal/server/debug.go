package server

import (
	"encoding/json"
	"net/http"

	"skirmish-server/internal/domain"
	"skirmish-server/internal/engine"
	"skirmish-server/pkg/logger"
)

// DebugHandler exposes engine state for local tooling.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/game", h.handleGame)
	mux.HandleFunc("/debug/history", h.handleHistory)
}

// GameSummary is the body of /debug/game.
type GameSummary struct {
	Tick       int            `json:"tick"`
	Seed       int64          `json:"seed"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Outcome    string         `json:"outcome"`
	Actors     int            `json:"actors"`
	ByKind     map[string]int `json:"byKind"`
	Spectators int            `json:"spectators"`
}

// /debug/game - the last frame of the running (or just finished) game
func (h *DebugHandler) handleGame(w http.ResponseWriter, r *http.Request) {
	f, err := h.Service.Current()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	summary := GameSummary{
		Tick:       f.Tick,
		Seed:       f.Seed,
		Outcome:    f.Outcome.String(),
		Actors:     len(f.Actors),
		ByKind:     make(map[string]int),
		Spectators: h.Service.Hub.SubscriberCount(),
	}
	if f.World != nil {
		summary.Width, summary.Height = f.World.Width, f.World.Height
	}
	for _, kind := range []domain.ActorKind{domain.KindWalker, domain.KindDefender, domain.KindSpawner} {
		summary.ByKind[kind.String()] = domain.CountKind(f.Actors, kind)
	}

	writeJSON(w, summary)
}

// HistorySummary is the body of /debug/history.
type HistorySummary struct {
	Seed    int64  `json:"seed"`
	Outcome string `json:"outcome"`
	Ticks   int    `json:"ticks"`
	// Sizes is the actor count after every tick.
	Sizes []int `json:"sizes"`
}

// /debug/history - census of the last finished game
func (h *DebugHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	res, ok := h.Service.LastResult()
	if !ok {
		http.Error(w, "no finished game", http.StatusNotFound)
		return
	}

	sizes := make([]int, 0, len(res.History))
	for _, gen := range res.History {
		sizes = append(sizes, len(gen))
	}

	writeJSON(w, HistorySummary{
		Seed:    res.Seed,
		Outcome: res.Outcome.String(),
		Ticks:   res.Ticks,
		Sizes:   sizes,
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Any origin: the debug page is opened from disk.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug write failed")
	}
}

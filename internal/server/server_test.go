package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"skirmish-server/internal/engine"
	"skirmish-server/internal/network"
	"skirmish-server/pkg/api"
	"skirmish-server/pkg/logger"

	"github.com/gorilla/websocket"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*httptest.Server, *engine.GameService) {
	t.Helper()
	cfg := engine.NewConfig()
	cfg.Seed = 3
	cfg.MaxTurns = 20
	cfg.TickDelay = 0

	svc := engine.NewService(cfg, network.NewBroadcaster())
	ts := httptest.NewServer(New(svc, "0").Handler())
	t.Cleanup(func() {
		svc.StopGame()
		ts.Close()
	})
	return ts, svc
}

func TestHealthAndVersion(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/health: status %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/version")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var info map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatalf("decode /version: %v", err)
	}
	if info["service"] != "skirmish-server" {
		t.Errorf("unexpected version body: %v", info)
	}
}

func TestDebugRoutes_NoGame(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, path := range []string{"/debug/game", "/debug/history"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: want 404 before any game, got %d", path, resp.StatusCode)
		}
	}
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocket_StartStreamsFrames(t *testing.T) {
	ts, svc := newTestServer(t)
	conn := dial(t, ts)

	payload, _ := json.Marshal(api.StartPayload{Width: 8, Height: 8, Starts: 1, Finishes: 1})
	if err := conn.WriteJSON(api.ClientCommand{Action: api.ActionStart, Payload: payload}); err != nil {
		t.Fatal(err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatal(err)
	}
	ticks := 0
	for {
		var frame api.TickFrame
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatalf("read after %d ticks: %v", ticks, err)
		}
		if frame.Type == api.TypeGameOver {
			if frame.Outcome == "" {
				t.Error("final frame must carry the outcome")
			}
			break
		}
		if frame.Type != api.TypeTick || frame.Grid == nil || frame.Grid.Width != 8 {
			t.Fatalf("unexpected frame %+v", frame)
		}
		ticks++
	}
	if ticks == 0 || ticks > 20 {
		t.Errorf("expected between 1 and 20 tick frames, got %d", ticks)
	}

	svc.Wait()
	resp, err := http.Get(ts.URL + "/debug/history")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var hist struct {
		Ticks int   `json:"ticks"`
		Sizes []int `json:"sizes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		t.Fatal(err)
	}
	if hist.Ticks != ticks || len(hist.Sizes) != ticks {
		t.Errorf("history has %d ticks (%d sizes), stream had %d", hist.Ticks, len(hist.Sizes), ticks)
	}
}

func TestWebSocket_InvalidStartIsRejected(t *testing.T) {
	ts, _ := newTestServer(t)
	conn := dial(t, ts)

	payload, _ := json.Marshal(api.StartPayload{Width: 1, Height: 1, Starts: 1, Finishes: 1})
	if err := conn.WriteJSON(api.ClientCommand{Action: api.ActionStart, Payload: payload}); err != nil {
		t.Fatal(err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatal(err)
	}
	var reply api.ErrorFrame
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.Type != api.TypeError || reply.Message == "" {
		t.Errorf("expected an error frame, got %+v", reply)
	}
}

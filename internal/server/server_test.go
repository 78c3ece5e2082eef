package server

import (
	"encoding/json"
	"testing"

	"microcity/internal/sims/city"
)

func testServer() (*Server, *city.City) {
	cfg := city.DefaultConfig()
	cfg.Seed = 42
	cfg.DisastersEnabled = false
	sim := city.NewWithConfig(cfg)
	return New(sim, 30), sim
}

func envelope(t *testing.T, action string, payload any) Envelope {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return Envelope{Type: action, Payload: raw}
}

func findDirt(sim *city.City) (int, int) {
	size := sim.Size()
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			if sim.GetTile(x, y) == 0 {
				return x, y
			}
		}
	}
	return 0, 0
}

func TestApplyToolEnvelope(t *testing.T) {
	s, sim := testServer()
	x, y := findDirt(sim)
	funds := sim.TotalFunds()

	reply := s.apply(envelope(t, ActionTool, ToolPayload{Tool: city.ToolRoad, X: x, Y: y}))
	if reply == nil {
		t.Fatal("tool action produced no reply")
	}

	var env Envelope
	if err := json.Unmarshal(reply, &env); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if env.Type != EventToolResult {
		t.Fatalf("reply type %q, want %q", env.Type, EventToolResult)
	}
	var result ToolResultPayload
	if err := json.Unmarshal(env.Payload, &result); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if result.Result != city.ToolOK {
		t.Fatalf("road on dirt: %v", result.Result)
	}
	if sim.TotalFunds() != funds-int64(city.ToolCost(city.ToolRoad)) {
		t.Fatalf("funds %d after road, want %d", sim.TotalFunds(), funds-10)
	}
}

func TestApplySpeedAndTax(t *testing.T) {
	s, sim := testServer()

	s.apply(envelope(t, ActionSpeed, SpeedPayload{Speed: city.SpeedPaused}))
	if sim.Speed() != city.SpeedPaused {
		t.Fatalf("speed = %d, want paused", sim.Speed())
	}

	s.apply(envelope(t, ActionTax, TaxPayload{Rate: 15}))
	if sim.CityTax() != 15 {
		t.Fatalf("tax = %d, want 15", sim.CityTax())
	}
	s.apply(envelope(t, ActionTax, TaxPayload{Rate: 99}))
	if sim.CityTax() != 20 {
		t.Fatalf("tax clamp = %d, want 20", sim.CityTax())
	}
}

func TestApplyNewGame(t *testing.T) {
	s, sim := testServer()
	for i := 0; i < 50; i++ {
		sim.SimFrame()
	}
	s.apply(envelope(t, ActionNewGame, NewGamePayload{Seed: 1234}))
	if sim.CityTime() != 0 {
		t.Fatalf("city time %d after new game", sim.CityTime())
	}
}

func TestApplyUnknownEnvelope(t *testing.T) {
	s, _ := testServer()
	if reply := s.apply(Envelope{Type: "bogus"}); reply != nil {
		t.Fatal("unknown action produced a reply")
	}
	if reply := s.apply(Envelope{Type: ActionTool, Payload: []byte("not json")}); reply != nil {
		t.Fatal("malformed payload produced a reply")
	}
}

func TestFullStateSnapshot(t *testing.T) {
	s, sim := testServer()
	state := s.fullStateLocked()
	size := sim.Size()
	if state.Width != size.W || state.Height != size.H {
		t.Fatalf("state is %dx%d, want %dx%d", state.Width, state.Height, size.W, size.H)
	}
	if len(state.Tiles) != size.W*size.H {
		t.Fatalf("state carries %d tiles, want %d", len(state.Tiles), size.W*size.H)
	}
	if state.Serial != sim.MapSerial() {
		t.Fatal("state serial out of date")
	}

	if _, err := encodeEnvelope(EventFullState, state); err != nil {
		t.Fatalf("full state does not encode: %v", err)
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	s, _ := testServer()
	lim := s.limiter("10.0.0.1")
	if lim != s.limiter("10.0.0.1") {
		t.Fatal("same IP got two limiters")
	}
	if lim == s.limiter("10.0.0.2") {
		t.Fatal("different IPs share a limiter")
	}

	allowed := 0
	for i := 0; i < 100; i++ {
		if lim.Allow() {
			allowed++
		}
	}
	if allowed == 0 || allowed == 100 {
		t.Fatalf("burst of 100 allowed %d, want partial", allowed)
	}
}

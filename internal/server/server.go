// Package server exposes a running city over a websocket: clients receive
// state broadcasts and submit tool commands, which apply between
// simulation phases under the server lock.
package server

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"microcity/internal/core"
	"microcity/internal/sims/city"
)

// statsEvery is the broadcast cadence in sim frames.
const statsEvery = 15

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

type hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
}

func newHub() *hub {
	return &hub{
		clients:    map[*client]bool{},
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
	}
}

func (h *hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Server owns the simulation and its websocket clients.
type Server struct {
	mu   sync.Mutex
	sim  *city.City
	hub  *hub
	tps  int

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter

	upgrader websocket.Upgrader
}

// New wraps a city in a websocket server ticking at the given TPS.
func New(sim *city.City, tps int) *Server {
	s := &Server{
		sim:      sim,
		hub:      newHub(),
		tps:      tps,
		limiters: map[string]*rate.Limiter{},
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
	sim.OnMessage(func(m city.Message) {
		msg, err := encodeEnvelope(EventMessage, MessagePayload{
			Text: m.Text, X: m.X, Y: m.Y,
			HasCoords: m.HasCoords, Important: m.Important,
		})
		if err == nil {
			s.hub.broadcast <- msg
		}
	})
	return s
}

// ListenAndServe runs the hub, the simulation loop and the HTTP listener.
// It blocks until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	go s.hub.run()
	go s.loop()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.wsHandler)
	log.Printf("city server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

// loop advances the simulation at a fixed rate and pushes periodic
// broadcasts. Tool commands interleave between frames via the mutex.
func (s *Server) loop() {
	stepper := core.NewFixedStep(s.tps)
	frames := 0
	lastSerial := uint64(0)
	for {
		if !stepper.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		s.mu.Lock()
		s.sim.SimFrame()
		frames++
		serial := s.sim.MapSerial()
		var payload []byte
		if frames%statsEvery == 0 {
			var err error
			if serial != lastSerial {
				payload, err = encodeEnvelope(EventFullState, s.fullStateLocked())
				lastSerial = serial
			} else {
				payload, err = encodeEnvelope(EventStats, s.sim.GetStats())
			}
			if err != nil {
				log.Printf("encode broadcast: %v", err)
				payload = nil
			}
		}
		s.mu.Unlock()
		if payload != nil {
			s.hub.broadcast <- payload
		}
	}
}

func (s *Server) fullStateLocked() FullState {
	size := s.sim.Size()
	return FullState{
		Width:  size.W,
		Height: size.H,
		Serial: s.sim.MapSerial(),
		Tiles:  s.sim.GetRegion(0, 0, size.W, size.H),
		Stats:  s.sim.GetStats(),
	}
}

// WithLock runs fn while holding the simulation lock, so external callers
// (autosave, admin jobs) mutate or read state only between frames.
func (s *Server) WithLock(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *Server) limiter(ip string) *rate.Limiter {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()
	lim, ok := s.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(10, 20)
		s.limiters[ip] = lim
	}
	return lim
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	if !s.limiter(ip).Allow() {
		http.Error(w, "rate limit", http.StatusTooManyRequests)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &client{id: uuid.New().String(), conn: conn, send: make(chan []byte, 128)}
	s.hub.register <- c
	go c.writer()
	go s.reader(c)

	s.mu.Lock()
	payload, err := encodeEnvelope(EventFullState, s.fullStateLocked())
	s.mu.Unlock()
	if err == nil {
		c.send <- payload
	}
}

func (c *client) writer() {
	for msg := range c.send {
		c.conn.WriteMessage(websocket.TextMessage, msg)
	}
}

func (s *Server) reader(c *client) {
	defer func() {
		s.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var env Envelope
		if json.Unmarshal(data, &env) != nil {
			continue
		}
		if reply := s.apply(env); reply != nil {
			c.send <- reply
		}
	}
}

// apply executes one client action under the simulation lock and returns
// an optional direct reply.
func (s *Server) apply(env Envelope) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch env.Type {
	case ActionTool:
		var p ToolPayload
		if json.Unmarshal(env.Payload, &p) != nil {
			return nil
		}
		result := s.sim.DoTool(p.Tool, p.X, p.Y)
		reply, err := encodeEnvelope(EventToolResult, ToolResultPayload{
			Tool: p.Tool, X: p.X, Y: p.Y, Result: result,
		})
		if err != nil {
			return nil
		}
		return reply
	case ActionSpeed:
		var p SpeedPayload
		if json.Unmarshal(env.Payload, &p) == nil {
			s.sim.SetSpeed(p.Speed)
		}
	case ActionTax:
		var p TaxPayload
		if json.Unmarshal(env.Payload, &p) == nil {
			s.sim.SetCityTax(p.Rate)
		}
	case ActionDisaster:
		var p DisasterPayload
		if json.Unmarshal(env.Payload, &p) == nil {
			s.applyDisaster(p)
		}
	case ActionNewGame:
		var p NewGamePayload
		if json.Unmarshal(env.Payload, &p) == nil {
			s.sim.NewGame(p.Seed)
		}
	}
	return nil
}

func (s *Server) applyDisaster(p DisasterPayload) {
	switch p.Kind {
	case "fire":
		s.sim.SetFire()
	case "flood":
		s.sim.MakeFlood()
	case "tornado":
		s.sim.MakeTornado()
	case "earthquake":
		s.sim.MakeEarthquake()
	case "monster":
		s.sim.MakeMonster()
	case "meltdown":
		s.sim.MakeMeltdown()
	case "explosion":
		s.sim.MakeExplosion(p.X, p.Y)
	}
}

// Package room implements the multiplayer driver: a registry of rooms,
// each seating up to six players (humans over WebSocket plus scripted
// seats run by the server) around one authoritative table.
package room

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemroom/internal/protocol"
	"github.com/lox/holdemroom/internal/roomid"
)

// Sender is the outbound half of a client connection. Send must not block
// the caller; the websocket layer buffers writes.
type Sender interface {
	Send(msg any) error
	Close() error
}

// Client is one connected player. A client belongs to at most one room.
type Client struct {
	sender Sender
	name   string
	room   *Room
	seatID int
}

// Config controls the tables the registry creates
type Config struct {
	StartingChips int
	SmallBlind    int
	BigBlind      int
	MaxSeats      int
	TurnTimeout   time.Duration // 0 disables the turn clock
	Seed          int64
	Logger        *log.Logger
	Clock         quartz.Clock
	IDGen         *roomid.Generator
}

// Registry tracks every open room. It owns room creation and lookup; all
// per-table work happens under the individual room's lock.
type Registry struct {
	mu     sync.Mutex
	rooms  map[string]*Room
	config Config
	logger *log.Logger
	clock  quartz.Clock
	idgen  *roomid.Generator
	seed   int64
}

// NewRegistry creates an empty registry
func NewRegistry(cfg Config) *Registry {
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.IDGen == nil {
		cfg.IDGen = roomid.NewGenerator(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Registry{
		rooms:  make(map[string]*Room),
		config: cfg,
		logger: cfg.Logger,
		clock:  cfg.Clock,
		idgen:  cfg.IDGen,
		seed:   cfg.Seed,
	}
}

// Connect registers a new connection. The returned client has no room
// until it sends create-room or join-room.
func (r *Registry) Connect(sender Sender) *Client {
	return &Client{sender: sender, seatID: -1}
}

// Disconnect removes the client from its room, force-folding its seat if
// a hand is running, and destroys the room once the last human leaves.
func (r *Registry) Disconnect(c *Client) {
	room := c.room
	if room == nil {
		return
	}
	c.room = nil
	if room.leave(c) {
		r.remove(room.id)
	}
}

// HandleMessage decodes and dispatches one inbound message. Malformed
// messages are logged and dropped; rejected requests are answered with an
// error message on the sending connection only.
func (r *Registry) HandleMessage(c *Client, data []byte) {
	msg, err := protocol.Decode(data)
	if err != nil {
		r.logger.Warn("dropping malformed message", "err", err)
		return
	}

	switch m := msg.(type) {
	case *protocol.CreateRoom:
		r.createRoom(c, m.PlayerName)
	case *protocol.JoinRoom:
		r.joinRoom(c, m.RoomID, m.PlayerName)
	case *protocol.AddAIPlayer:
		if room := c.room; room != nil {
			room.addAI(c)
		}
	case *protocol.StartGame:
		if room := c.room; room != nil {
			room.startGame(c)
		}
	case *protocol.PlayerAction:
		if room := c.room; room != nil {
			room.playerAction(c, m.Action, m.RaiseAmount)
		}
	case *protocol.StartNextRound:
		if room := c.room; room != nil {
			room.startNextRound(c)
		}
	default:
		r.logger.Warn("dropping unexpected message", "type", fmt.Sprintf("%T", msg))
	}
}

// Lookup returns the room with the given code, or nil
func (r *Registry) Lookup(id string) *Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rooms[roomid.Normalize(id)]
}

// Len returns the number of open rooms
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}

func (r *Registry) createRoom(c *Client, playerName string) {
	if c.room != nil {
		sendError(c, "Already in a room")
		return
	}

	r.mu.Lock()
	id := r.idgen.Generate()
	for r.rooms[id] != nil {
		id = r.idgen.Generate()
	}
	room := newRoom(id, r.config, r.nextSeedLocked(), r.logger.With("room", id), r.clock)
	r.rooms[id] = room
	r.mu.Unlock()

	room.createAsHost(c, playerName)
	r.logger.Info("room created", "room", id, "host", c.name)
}

func (r *Registry) joinRoom(c *Client, id, playerName string) {
	if c.room != nil {
		sendError(c, "Already in a room")
		return
	}
	room := r.Lookup(id)
	if room == nil {
		sendError(c, "Room not found")
		return
	}
	room.join(c, playerName)
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; ok {
		delete(r.rooms, id)
		r.logger.Info("room destroyed", "room", id)
	}
}

// nextSeedLocked hands each room its own deterministic stream when a fixed
// seed was configured, and stays time-seeded otherwise. Callers must hold
// r.mu.
func (r *Registry) nextSeedLocked() int64 {
	if r.seed == 0 {
		return 0
	}
	s := r.seed
	r.seed++
	return s
}

func sendError(c *Client, message string) {
	_ = c.sender.Send(&protocol.Error{Type: protocol.TypeError, Message: message})
}

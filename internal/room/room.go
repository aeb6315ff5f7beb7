package room

import (
	"fmt"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemroom/internal/ai"
	"github.com/lox/holdemroom/internal/game"
	"github.com/lox/holdemroom/internal/protocol"
	"github.com/lox/holdemroom/internal/randutil"
)

// aiNames is the pool of names handed to scripted seats, in order
var aiNames = []string{"Alice", "Bob", "Charlie", "Diana", "Eve"}

// occupant is one seat in the room. Before the game starts the occupant
// list grows and shrinks with joins and leaves; once the table is dealt
// the list is frozen and seat IDs double as table seat indexes.
type occupant struct {
	id       int
	name     string
	scripted bool
	client   *Client // nil for scripted seats and departed humans
}

// Room is one table and the connections watching it. Every inbound
// message and timer callback takes the room lock, so the table only ever
// changes one step at a time.
type Room struct {
	mu     sync.Mutex
	id     string
	config Config
	logger *log.Logger
	clock  quartz.Clock
	rng    *rand.Rand

	host      *Client
	occupants []*occupant
	state     *game.State

	// gen invalidates pending timer callbacks (AI think timers, the turn
	// clock) once the table has moved past the state they were armed for.
	gen       int
	aiPending bool
	turnTimer *quartz.Timer
	closed    bool
}

func newRoom(id string, cfg Config, seed int64, logger *log.Logger, clock quartz.Clock) *Room {
	var rng *rand.Rand
	if seed == 0 {
		rng = randutil.NewFromTime()
	} else {
		rng = randutil.New(seed)
	}
	return &Room{
		id:     id,
		config: cfg,
		logger: logger,
		clock:  clock,
		rng:    rng,
	}
}

// ID returns the room's join code
func (r *Room) ID() string {
	return r.id
}

// createAsHost seats the creating client in seat 0 and makes it host
func (r *Room) createAsHost(c *Client, playerName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if playerName == "" {
		playerName = "Player 1"
	}
	c.room = r
	c.name = playerName
	c.seatID = 0
	r.host = c
	r.occupants = []*occupant{{id: 0, name: playerName, client: c}}

	r.send(c, &protocol.RoomCreated{
		Type:     protocol.TypeRoomCreated,
		RoomID:   r.id,
		PlayerID: 0,
		Players:  r.roster(),
	})
}

// join seats a new human if the room still has space and the cards are
// not already in the air.
func (r *Room) join(c *Client, playerName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != nil {
		sendError(c, "Game already started")
		return
	}
	if len(r.occupants) >= r.config.MaxSeats {
		sendError(c, "Room is full")
		return
	}

	id := len(r.occupants)
	if playerName == "" {
		playerName = fmt.Sprintf("Player %d", id+1)
	}
	c.room = r
	c.name = playerName
	c.seatID = id
	r.occupants = append(r.occupants, &occupant{id: id, name: playerName, client: c})

	r.send(c, &protocol.RoomJoined{
		Type:     protocol.TypeRoomJoined,
		RoomID:   r.id,
		PlayerID: id,
		Players:  r.roster(),
	})
	r.broadcastExcept(c, &protocol.PlayerJoined{
		Type:         protocol.TypePlayerJoined,
		PlayerID:     id,
		PlayerName:   playerName,
		Players:      r.roster(),
		TotalPlayers: len(r.occupants),
	})
	r.logger.Info("player joined", "player", playerName, "seat", id)
}

// addAI seats a scripted player. Host only.
func (r *Room) addAI(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c != r.host {
		sendError(c, "Only the host can add AI players")
		return
	}
	if r.state != nil {
		sendError(c, "Game already started")
		return
	}
	if len(r.occupants) >= r.config.MaxSeats {
		sendError(c, "Room is full")
		return
	}

	id := len(r.occupants)
	name := r.nextAIName()
	r.occupants = append(r.occupants, &occupant{id: id, name: name, scripted: true})

	r.send(c, &protocol.AIPlayerAdded{
		Type:       protocol.TypeAIPlayerAdded,
		PlayerID:   id,
		PlayerName: name,
	})
	r.broadcast(&protocol.PlayerJoined{
		Type:       protocol.TypePlayerJoined,
		PlayerID:   id,
		PlayerName: name,
		Players:    r.roster(),
	})
	r.logger.Info("ai player added", "player", name, "seat", id)
}

// startGame freezes the roster, fills the remaining seats with scripted
// players and deals the first hand. Host only.
func (r *Room) startGame(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c != r.host {
		sendError(c, "Only the host can start the game")
		return
	}
	if r.state != nil {
		sendError(c, "Game already started")
		return
	}

	for len(r.occupants) < r.config.MaxSeats {
		r.occupants = append(r.occupants, &occupant{
			id:       len(r.occupants),
			name:     r.nextAIName(),
			scripted: true,
		})
	}

	seats := make([]game.SeatConfig, len(r.occupants))
	for i, o := range r.occupants {
		kind := game.Human
		if o.scripted {
			kind = game.Scripted
		}
		seats[i] = game.SeatConfig{Name: o.name, Kind: kind}
	}

	r.state = game.NewTable(seats, r.config.StartingChips, r.config.SmallBlind, r.config.BigBlind, r.rng)
	if err := r.state.StartHand(); err != nil {
		r.logger.Error("failed to start hand", "err", err)
		r.state = nil
		sendError(c, "Could not start the game")
		return
	}

	r.logger.Info("game started", "seats", len(r.occupants))
	r.afterChange(protocol.TypeGameStarted)
}

// playerAction applies the sending client's action for its own seat
func (r *Room) playerAction(c *Client, action game.Action, raiseTo int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == nil {
		sendError(c, "Game has not started")
		return
	}
	if err := r.state.Apply(c.seatID, action, raiseTo); err != nil {
		sendError(c, err.Error())
		return
	}
	r.afterChange(protocol.TypeGameState)
}

// startNextRound deals the next hand once the current one has settled.
// Host only.
func (r *Room) startNextRound(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c != r.host {
		sendError(c, "Only the host can start the next round")
		return
	}
	if r.state == nil {
		sendError(c, "Game has not started")
		return
	}
	if !r.state.RoundComplete {
		sendError(c, "Current round is not over yet")
		return
	}
	if err := r.state.NextHand(); err != nil {
		// Fewer than two funded seats: the table is ended, tell everyone.
		r.afterChange(protocol.TypeGameState)
		return
	}
	r.afterChange(protocol.TypeGameState)
}

// leave removes a departing client. Mid-hand the seat is folded first so
// the table never waits on a dead connection. Returns true when no human
// connections remain and the room should be destroyed.
func (r *Room) leave(c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, o := range r.occupants {
		if o.client == c {
			idx = i
			break
		}
	}
	if idx == -1 {
		return !r.hasHumans()
	}
	departed := r.occupants[idx]
	departed.client = nil
	if c == r.host {
		r.host = nil
	}

	if r.state == nil {
		// Pre-deal the roster just shrinks; seat IDs are reassigned and
		// the broadcast roster is the source of truth.
		r.occupants = append(r.occupants[:idx], r.occupants[idx+1:]...)
		for i, o := range r.occupants {
			o.id = i
			if o.client != nil {
				o.client.seatID = i
			}
		}
	} else {
		// The seat folds out of the current hand and sits out every
		// later one; otherwise the table would keep dealing to a
		// connectionless seat and stall on its turns.
		if seat := r.state.Seat(departed.id); seat != nil {
			seat.SittingOut = true
		}
		if r.state.Phase.Betting() {
			r.state.ForceFold(departed.id)
		}
	}

	r.broadcast(&protocol.PlayerLeft{
		Type:     protocol.TypePlayerLeft,
		PlayerID: departed.id,
		Players:  r.roster(),
	})
	r.logger.Info("player left", "player", departed.name, "seat", departed.id)

	if r.state != nil {
		r.afterChange(protocol.TypeGameState)
	}

	if !r.hasHumans() {
		r.closed = true
		r.gen++
		r.stopTurnTimer()
		return true
	}
	return false
}

// afterChange runs with the lock held after every table mutation: it
// invalidates pending timers, rebroadcasts the table and arms whatever the
// new acting seat needs (a think timer for a scripted seat, the turn clock
// for a human).
func (r *Room) afterChange(msgType string) {
	r.gen++
	r.aiPending = false
	r.stopTurnTimer()
	r.broadcastState(msgType)
	r.scheduleAI()
	r.armTurnClock()
}

// broadcastState sends each connected player its own redacted snapshot
func (r *Room) broadcastState(msgType string) {
	for _, o := range r.occupants {
		if o.client == nil {
			continue
		}
		snapshot := r.state.Snapshot(o.id)
		var msg any
		if msgType == protocol.TypeGameStarted {
			msg = &protocol.GameStarted{Type: msgType, GameState: snapshot}
		} else {
			msg = &protocol.GameState{Type: msgType, GameState: snapshot}
		}
		r.send(o.client, msg)
	}
}

// scheduleAI arms a think-time timer when the acting seat is scripted
func (r *Room) scheduleAI() {
	if r.aiPending || r.state == nil || !r.state.Phase.Betting() {
		return
	}
	seat := r.state.Seat(r.state.Acting)
	if seat == nil || seat.Kind != game.Scripted {
		return
	}

	r.aiPending = true
	gen := r.gen
	seatIdx := r.state.Acting
	r.clock.AfterFunc(ai.Delay(r.rng), func() {
		r.runAI(gen, seatIdx)
	})
}

func (r *Room) runAI(gen, seatIdx int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || gen != r.gen || r.state == nil || r.state.Acting != seatIdx {
		return
	}
	r.aiPending = false

	d := ai.Decide(r.state, seatIdx, r.rng)
	if err := r.state.Apply(seatIdx, d.Action, d.RaiseTo); err != nil {
		r.logger.Error("ai action rejected", "seat", seatIdx, "action", d.Action, "err", err)
		r.state.ForceFold(seatIdx)
	}
	r.afterChange(protocol.TypeGameState)
}

// armTurnClock starts the per-turn deadline for a human seat. On expiry
// the seat is folded so one absent player cannot stall the table.
func (r *Room) armTurnClock() {
	if r.config.TurnTimeout <= 0 || r.state == nil || !r.state.Phase.Betting() {
		return
	}
	seat := r.state.Seat(r.state.Acting)
	if seat == nil || seat.Kind != game.Human {
		return
	}

	gen := r.gen
	seatIdx := r.state.Acting
	r.turnTimer = r.clock.AfterFunc(r.config.TurnTimeout, func() {
		r.turnExpired(gen, seatIdx)
	})
}

func (r *Room) turnExpired(gen, seatIdx int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || gen != r.gen || r.state == nil || r.state.Acting != seatIdx {
		return
	}
	r.logger.Info("turn clock expired, folding", "seat", seatIdx)
	r.state.ForceFold(seatIdx)
	r.afterChange(protocol.TypeGameState)
}

func (r *Room) stopTurnTimer() {
	if r.turnTimer != nil {
		r.turnTimer.Stop()
		r.turnTimer = nil
	}
}

// roster lists the current seats for the lobby-level messages
func (r *Room) roster() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.occupants))
	for _, o := range r.occupants {
		if !o.scripted && o.client == nil {
			continue
		}
		infos = append(infos, protocol.PlayerInfo{ID: o.id, Name: o.name})
	}
	return infos
}

// nextAIName picks the first unused name from the pool
func (r *Room) nextAIName() string {
	taken := make(map[string]bool, len(r.occupants))
	for _, o := range r.occupants {
		taken[o.name] = true
	}
	for _, name := range aiNames {
		if !taken[name] {
			return name
		}
	}
	return fmt.Sprintf("AI Player %d", len(r.occupants))
}

func (r *Room) hasHumans() bool {
	for _, o := range r.occupants {
		if o.client != nil {
			return true
		}
	}
	return false
}

func (r *Room) broadcast(msg any) {
	r.broadcastExcept(nil, msg)
}

func (r *Room) broadcastExcept(skip *Client, msg any) {
	for _, o := range r.occupants {
		if o.client != nil && o.client != skip {
			r.send(o.client, msg)
		}
	}
}

func (r *Room) send(c *Client, msg any) {
	if err := c.sender.Send(msg); err != nil {
		r.logger.Warn("send failed", "player", c.name, "err", err)
	}
}

// Package protocol defines the JSON messages exchanged between clients and
// the room server. Every message is a flat object with a "type" field; the
// remaining fields depend on the type.
package protocol

import "github.com/lox/holdemroom/internal/game"

// Message type names as they appear on the wire
const (
	TypeCreateRoom     = "create-room"
	TypeRoomCreated    = "room-created"
	TypeJoinRoom       = "join-room"
	TypeRoomJoined     = "room-joined"
	TypePlayerJoined   = "player-joined"
	TypeAddAIPlayer    = "add-ai-player"
	TypeAIPlayerAdded  = "ai-player-added"
	TypeStartGame      = "start-game"
	TypeGameStarted    = "game-started"
	TypePlayerAction   = "player-action"
	TypeGameState      = "game-state-update"
	TypeStartNextRound = "start-next-round"
	TypePlayerLeft     = "player-left"
	TypeError          = "error"
)

// PlayerInfo identifies one occupant of a room before and between hands
type PlayerInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateRoom asks the server to open a new room with the sender as host
type CreateRoom struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
}

// RoomCreated confirms a new room to its host
type RoomCreated struct {
	Type     string       `json:"type"`
	RoomID   string       `json:"roomId"`
	PlayerID int          `json:"playerId"`
	Players  []PlayerInfo `json:"players"`
}

// JoinRoom asks to join an existing room by its code
type JoinRoom struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

// RoomJoined confirms a join to the joining player, listing everyone
// already in the room.
type RoomJoined struct {
	Type     string       `json:"type"`
	RoomID   string       `json:"roomId"`
	PlayerID int          `json:"playerId"`
	Players  []PlayerInfo `json:"players"`
}

// PlayerJoined notifies a room that a new player (human or AI) arrived
type PlayerJoined struct {
	Type         string       `json:"type"`
	PlayerID     int          `json:"playerId"`
	PlayerName   string       `json:"playerName"`
	Players      []PlayerInfo `json:"players"`
	TotalPlayers int          `json:"totalPlayers,omitempty"`
}

// AddAIPlayer asks the server to seat a scripted player. Host only.
type AddAIPlayer struct {
	Type string `json:"type"`
}

// AIPlayerAdded confirms a scripted player to the host
type AIPlayerAdded struct {
	Type       string `json:"type"`
	PlayerID   int    `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// StartGame asks the server to deal the first hand. Host only.
type StartGame struct {
	Type string `json:"type"`
}

// GameStarted carries each player's first redacted view of the table
type GameStarted struct {
	Type      string      `json:"type"`
	GameState *game.State `json:"gameState"`
}

// PlayerAction submits the sender's action for their turn. RaiseAmount is
// the new total bet for the round and only applies to a raise.
type PlayerAction struct {
	Type        string      `json:"type"`
	Action      game.Action `json:"action"`
	RaiseAmount int         `json:"raiseAmount,omitempty"`
}

// GameState carries a redacted view of the table after any change
type GameState struct {
	Type      string      `json:"type"`
	GameState *game.State `json:"gameState"`
}

// StartNextRound asks the server to deal the next hand once the current
// one has completed. Host only.
type StartNextRound struct {
	Type string `json:"type"`
}

// PlayerLeft notifies a room that a player disconnected
type PlayerLeft struct {
	Type     string       `json:"type"`
	PlayerID int          `json:"playerId"`
	Players  []PlayerInfo `json:"players"`
}

// Error reports a rejected request back to its sender
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

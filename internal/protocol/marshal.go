package protocol

import (
	"encoding/json"
	"fmt"
)

// ErrUnknownMessageType is returned for a "type" value the protocol does
// not define.
var ErrUnknownMessageType = fmt.Errorf("unknown message type")

// Marshal serializes a message to its wire form
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode peeks at the "type" field and unmarshals the payload into the
// matching message struct.
func Decode(data []byte) (any, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}

	var msg any
	switch envelope.Type {
	case TypeCreateRoom:
		msg = &CreateRoom{}
	case TypeRoomCreated:
		msg = &RoomCreated{}
	case TypeJoinRoom:
		msg = &JoinRoom{}
	case TypeRoomJoined:
		msg = &RoomJoined{}
	case TypePlayerJoined:
		msg = &PlayerJoined{}
	case TypeAddAIPlayer:
		msg = &AddAIPlayer{}
	case TypeAIPlayerAdded:
		msg = &AIPlayerAdded{}
	case TypeStartGame:
		msg = &StartGame{}
	case TypeGameStarted:
		msg = &GameStarted{}
	case TypePlayerAction:
		msg = &PlayerAction{}
	case TypeGameState:
		msg = &GameState{}
	case TypeStartNextRound:
		msg = &StartNextRound{}
	case TypePlayerLeft:
		msg = &PlayerLeft{}
	case TypeError:
		msg = &Error{}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMessageType, envelope.Type)
	}

	if err := json.Unmarshal(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/nerrad567/slipstream-core/entity"
)

// Frame operation codes.
const (
	opHello          = "hello"
	opIdentify       = "identify"
	opResume         = "resume"
	opHeartbeat      = "heartbeat"
	opHeartbeatAck   = "heartbeat_ack"
	opDispatch       = "dispatch"
	opInvalidSession = "invalid_session"
)

// Dispatch event types.
const (
	eventReady  = "READY"
	eventUpsert = "UPSERT"
	eventRemove = "REMOVE"
)

// frame is the wire envelope for every gateway message.
type frame struct {
	Op   string          `json:"op"`
	Seq  int64           `json:"seq,omitempty"`
	Type string          `json:"type,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// helloPayload arrives first on every connection.
type helloPayload struct {
	HeartbeatInterval int `json:"heartbeat_interval"` // milliseconds
}

// identifyPayload opens a fresh session.
type identifyPayload struct {
	Token string `json:"token"`
	Shard [2]int `json:"shard"` // [index, count]
}

// resumePayload continues a previous session from a known sequence.
type resumePayload struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Sequence  int64  `json:"seq"`
}

// heartbeatPayload acknowledges liveness with the last seen sequence.
type heartbeatPayload struct {
	Sequence int64 `json:"seq"`
}

// statePayload is one entity in the initial state load or a later
// upsert dispatch.
type statePayload struct {
	Kind   entity.Kind     `json:"kind"`
	Entity json.RawMessage `json:"entity"`
}

// readyPayload confirms the session and carries the initial state.
type readyPayload struct {
	SessionID string         `json:"session_id"`
	Shard     [2]int         `json:"shard"`
	State     []statePayload `json:"state,omitempty"`
}

// removePayload evicts one entity.
type removePayload struct {
	Kind entity.Kind `json:"kind"`
	ID   string      `json:"id"`
}

// decodeEntity unmarshals a raw entity payload into the concrete type
// for its kind.
func decodeEntity(kind entity.Kind, raw json.RawMessage) (any, error) {
	var target any
	switch kind {
	case entity.KindUser:
		target = &entity.User{}
	case entity.KindGroup:
		target = &entity.Group{}
	case entity.KindRole:
		target = &entity.Role{}
	case entity.KindCategory:
		target = &entity.Category{}
	case entity.KindTextChannel:
		target = &entity.TextChannel{}
	case entity.KindVoiceChannel:
		target = &entity.VoiceChannel{}
	case entity.KindDirectChannel:
		target = &entity.DirectChannel{}
	case entity.KindEmote:
		target = &entity.Emote{}
	default:
		return nil, fmt.Errorf("gateway: unknown entity kind %q", kind)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("gateway: decoding %s entity: %w", kind, err)
	}
	return target, nil
}

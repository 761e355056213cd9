package server

import "encoding/json"

// Request types accepted on the socket.
const (
	TypeSolve   = "solve"
	TypeAnimate = "animate"
)

// Reply types sent back to the client.
const (
	TypeFrame = "frame"
	TypeDone  = "done"
	TypeError = "error"
)

// Request is a client message. Nu falls back to the server default when
// absent; T applies to solve and Frames to animate.
type Request struct {
	Type   string   `json:"type"`
	T      float64  `json:"t"`
	Nu     *float64 `json:"nu,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

type Msg struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
}

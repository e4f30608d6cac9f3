package messages

// MoveRequest is the displacement the local duck moved this tick. Deltas
// rather than absolute positions keep the server free of latency bookkeeping.
type MoveRequest struct {
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
}

// QuackRequest asks the server to broadcast a quack from the local duck.
type QuackRequest struct{}

package messages

// PlayerID is the server-assigned id of a duck.
type PlayerID uint

// YouJoined is sent once to a client after it connects. It carries the local
// duck, the cracker and every duck already in the pond.
type YouJoined struct {
	PlayerID      PlayerID            `json:"player_id"`
	Name          string              `json:"name"`
	Color         string              `json:"color"`
	X             float64             `json:"x"`
	Y             float64             `json:"y"`
	CrackerX      float64             `json:"cracker_x"`
	CrackerY      float64             `json:"cracker_y"`
	CrackerPoints int                 `json:"cracker_points"`
	PlayerPoints  int                 `json:"player_points"`
	OtherPlayers  []OtherPlayerJoined `json:"other_players"`
}

// OtherPlayerJoined announces a duck this client did not know about.
type OtherPlayerJoined struct {
	PlayerID PlayerID `json:"player_id"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
}

// OtherPlayerMoved carries the new absolute position of a remote duck.
type OtherPlayerMoved struct {
	PlayerID PlayerID `json:"player_id"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
}

// OtherPlayerQuacked is broadcast when a remote duck quacks.
type OtherPlayerQuacked struct {
	PlayerID PlayerID `json:"player_id"`
}

// CrackersMoved moves the shared cracker and sets its point value.
type CrackersMoved struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Points int     `json:"points"`
}

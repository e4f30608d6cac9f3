package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is a singleton holding the duration of the current tick.
type ClockData struct {
	Delta time.Duration
	Tick  uint64
}

var Clock = donburi.NewComponentType[ClockData]()

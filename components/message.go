package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// NoticeData is a singleton holding the notice shown at the top of the screen.
type NoticeData struct {
	Text      string
	Remaining time.Duration // zero when nothing is shown
}

var Notice = donburi.NewComponentType[NoticeData]()

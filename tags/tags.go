package tags

import "github.com/yohamta/donburi"

var (
	LocalPlayer  = donburi.NewTag().SetName("LocalPlayer")
	OtherPlayer  = donburi.NewTag().SetName("OtherPlayer")
	Cracker      = donburi.NewTag().SetName("Cracker")
	CrackerLabel = donburi.NewTag().SetName("CrackerLabel")
	Reed         = donburi.NewTag().SetName("Reed")
)

// Resolv tags for overlap checks
const (
	ResolvDuck    = "duck"
	ResolvCracker = "cracker"
)

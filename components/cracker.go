package components

import "github.com/yohamta/donburi"

// CrackerData is the server-owned shared object. It is only ever written by
// inbound crackers_moved events.
type CrackerData struct {
	Points int
	Label  donburi.Entity // child entity showing Points
}

var Cracker = donburi.NewComponentType[CrackerData]()

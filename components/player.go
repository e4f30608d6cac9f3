package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Name   string
	Color  string
	Points int // only tracked for the local duck
}

var Player = donburi.NewComponentType[PlayerData]()

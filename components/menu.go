package components

import "github.com/yohamta/donburi"

// PondMenuOption represents items in the pond menu
type PondMenuOption int

const (
	PondMenuResume PondMenuOption = iota
	PondMenuSFXVolume
	PondMenuMute
	PondMenuFullscreen
	PondMenuResolution
	PondMenuLeave
)

// PondMenuData is the menu overlay opened with Escape. The pond keeps running
// underneath; only the local duck stops listening to input.
type PondMenuData struct {
	IsOpen          bool
	SelectedOption  PondMenuOption
	ResolutionIndex int

	// LeaveRequested is set by "Leave pond" and read by the scene.
	LeaveRequested bool
}

var PondMenu = donburi.NewComponentType[PondMenuData]()

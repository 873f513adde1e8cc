package components

import (
	"github.com/automoto/mascot/motion"
	"github.com/yohamta/donburi"
)

// MascotData wires the simulation core into the ECS. The simulation owns
// the motion state; systems only read snapshots and apply impulses.
type MascotData struct {
	Sim     *motion.Simulation
	Driver  *motion.FrameDriver
	Frames  *motion.FrameQueue
	Impulse *motion.ImpulseMapper
	Mapper  *motion.CoordinateMapper
	Clock   motion.Clock

	Compact bool // device class the simulation is currently parameterized for
}

var Mascot = donburi.NewComponentType[MascotData]()

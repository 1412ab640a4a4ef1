package projector

import "fmt"

// State is the lifecycle state of the light engine.
type State int

// Lifecycle states. StatePowerOn, StateBootReadyOff and StateBootReadyReboot
// are host-request states; all others are entered only from notifications.
const (
	StatePowerOff State = iota
	StatePowerOn
	StateReady
	StateActive
	StateMute
	StateBootReadyOff
	StateBootReadyReboot
)

func (s State) String() string {
	switch s {
	case StatePowerOff:
		return "power-off"
	case StatePowerOn:
		return "power-on"
	case StateReady:
		return "ready"
	case StateActive:
		return "active"
	case StateMute:
		return "mute"
	case StateBootReadyOff:
		return "boot-ready-off"
	case StateBootReadyReboot:
		return "boot-ready-reboot"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

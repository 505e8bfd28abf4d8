package launcher

// State tracks how far a launch has progressed. Transitions only move forward;
// any failed check jumps straight to Aborted.
type State int

const (
	StateStart State = iota
	StatePlatformDetected
	StateRuntimeVerified
	StateConfigValidated
	StateRunning
	StateExited
	StateInterrupted
	StateAborted
)

var stateNames = map[State]string{
	StateStart:            "start",
	StatePlatformDetected: "platform-detected",
	StateRuntimeVerified:  "runtime-verified",
	StateConfigValidated:  "config-validated",
	StateRunning:          "running",
	StateExited:           "exited",
	StateInterrupted:      "interrupted",
	StateAborted:          "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

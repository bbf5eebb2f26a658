package domain

type Signal int

const (
	SignalStalled Signal = iota
	SignalWaiting
)

func ParseSignal(s string) (Signal, bool) {
	switch s {
	case "stalled":
		return SignalStalled, true
	case "waiting":
		return SignalWaiting, true
	default:
		return 0, false
	}
}

type Status string

const (
	StatusEmpty    Status = "empty"
	StatusReady    Status = "ready"
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusStalled  Status = "stalled"
	StatusFinished Status = "finished"
)

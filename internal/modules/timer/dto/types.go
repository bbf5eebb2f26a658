package dto

type State struct {
	ElapsedMS   int64
	Phase       string
	Running     bool
	Paused      bool
	GoalReached bool
	Clock       string
	CueKey      string
	HintKey     string
	Stage       string
}

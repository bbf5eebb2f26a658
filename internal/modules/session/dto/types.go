package dto

type OpenInput struct {
	WorkoutID     string
	Locale        string
	LegalAccepted bool
}

type ExerciseOutput struct {
	ID               string
	Name             string
	ShortDescription string
	Objective        string
	QuickFix         string
	Steps            []string
	VideoURL         string
}

type SlotOutput struct {
	Position      int
	Exercise      ExerciseOutput
	Expanded      bool
	VideoFinished bool
}

type SessionOutput struct {
	WorkoutID string
	Title     string
	Sets      int
	Slots     []SlotOutput
	// Expanded is the expanded slot position, or -1.
	Expanded int
}

package dto

type ExerciseOutput struct {
	ID               string
	Icon             string
	Category         string
	Name             string
	ShortDescription string
	Objective        string
	QuickFix         string
	CompareTip       string
	Steps            []string
	VideoURL         string
}

type WorkoutOutput struct {
	ID          string
	Title       string
	Frequency   string
	Sets        int
	ExerciseIDs []string
}

// ResolvedWorkout pairs a workout with its exercises in slot order. Unknown
// exercise ids are omitted.
type ResolvedWorkout struct {
	Workout   WorkoutOutput
	Exercises []ExerciseOutput
}

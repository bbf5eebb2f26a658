package dto

import "time"

type DataOutput struct {
	Favorites     []string          `json:"favorites"`
	Notes         map[string]string `json:"notes"`
	CustomPlans   []PlanOutput      `json:"customPlans"`
	ActiveWorkout []string          `json:"activeWorkout"`
}

type SavePlanInput struct {
	Name      string
	Exercises []string
}

type PlanOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Exercises []string  `json:"exercises"`
	CreatedAt time.Time `json:"createdAt"`
}

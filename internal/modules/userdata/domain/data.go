package domain

import (
	"slices"
	"time"
)

// SlotKey names the single persisted record.
const SlotKey = "chestDefData"

type Plan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Exercises []string  `json:"exercises"`
	CreatedAt time.Time `json:"createdAt"`
}

// Data is everything the app remembers between runs.
type Data struct {
	Favorites     []string          `json:"favorites"`
	Notes         map[string]string `json:"notes"`
	CustomPlans   map[string]Plan   `json:"customPlans"`
	ActiveWorkout []string          `json:"activeWorkout"`
}

func Empty() Data {
	return Data{
		Favorites:     []string{},
		Notes:         map[string]string{},
		CustomPlans:   map[string]Plan{},
		ActiveWorkout: []string{},
	}
}

// Normalize replaces nil collections so the record always serializes with
// every field present.
func (d Data) Normalize() Data {
	if d.Favorites == nil {
		d.Favorites = []string{}
	}
	if d.Notes == nil {
		d.Notes = map[string]string{}
	}
	if d.CustomPlans == nil {
		d.CustomPlans = map[string]Plan{}
	}
	if d.ActiveWorkout == nil {
		d.ActiveWorkout = []string{}
	}
	return d
}

func (d Data) IsFavorite(id string) bool {
	return slices.Contains(d.Favorites, id)
}

// ToggleFavorite adds or removes id and reports whether it is now a favorite.
func (d *Data) ToggleFavorite(id string) bool {
	if i := slices.Index(d.Favorites, id); i >= 0 {
		d.Favorites = slices.Delete(slices.Clone(d.Favorites), i, i+1)
		return false
	}
	d.Favorites = append(slices.Clone(d.Favorites), id)
	return true
}

// SetNote stores text for id. Empty text removes the note.
func (d *Data) SetNote(id, text string) {
	notes := make(map[string]string, len(d.Notes)+1)
	for k, v := range d.Notes {
		notes[k] = v
	}
	if text == "" {
		delete(notes, id)
	} else {
		notes[id] = text
	}
	d.Notes = notes
}

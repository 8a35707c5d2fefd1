// Package breaks schedules the agent's paid pauses: each slot has a validity
// window and a fixed duration, and at most one countdown runs at a time.
package breaks

import (
	"fmt"
	"time"
)

// Slot is one named break with its validity window and duration.
type Slot struct {
	Name     string
	Start    string // window start, "HH:MM"
	End      string // window end, "HH:MM"
	Duration time.Duration
}

// DefaultSlots mirrors the standard call-center pause plan.
var DefaultSlots = []Slot{
	{Name: "Pausa 10 (1ª)", Start: "09:00", End: "11:30", Duration: 10 * time.Minute},
	{Name: "Pausa 20", Start: "11:30", End: "14:00", Duration: 20 * time.Minute},
	{Name: "Pausa 10 (2ª)", Start: "14:00", End: "17:30", Duration: 10 * time.Minute},
}

func parseClock(s string, ref time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing clock %q: %w", s, err)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour(), t.Minute(), 0, 0, ref.Location()), nil
}

// InWindow reports whether now falls inside the slot's validity window.
func (s Slot) InWindow(now time.Time) bool {
	start, err := parseClock(s.Start, now)
	if err != nil {
		return false
	}
	end, err := parseClock(s.End, now)
	if err != nil {
		return false
	}
	return !now.Before(start) && now.Before(end)
}

// State tracks which slots were taken and which one, if any, is running.
type State struct {
	Slots   []Slot
	taken   map[string]bool
	running string
	endsAt  time.Time
}

func NewState(slots []Slot) *State {
	return &State{Slots: slots, taken: make(map[string]bool)}
}

// Due returns the first untaken slot whose window contains now, or nil. Used
// by the periodic alert check.
func (st *State) Due(now time.Time) *Slot {
	if st.running != "" {
		return nil
	}
	for i := range st.Slots {
		s := st.Slots[i]
		if !st.taken[s.Name] && s.InWindow(now) {
			return &s
		}
	}
	return nil
}

// Start begins the countdown for the named slot. Only one break may run at a
// time and a slot cannot be taken twice.
func (st *State) Start(name string, now time.Time) (time.Time, error) {
	if st.running != "" {
		return time.Time{}, fmt.Errorf("já existe uma pausa em andamento: %s", st.running)
	}
	for _, s := range st.Slots {
		if s.Name != name {
			continue
		}
		if st.taken[name] {
			return time.Time{}, fmt.Errorf("pausa %q já foi realizada", name)
		}
		st.running = name
		st.endsAt = now.Add(s.Duration)
		return st.endsAt, nil
	}
	return time.Time{}, fmt.Errorf("pausa %q não existe", name)
}

// Running returns the active slot name and its end time, if any.
func (st *State) Running() (string, time.Time, bool) {
	if st.running == "" {
		return "", time.Time{}, false
	}
	return st.running, st.endsAt, true
}

// Remaining returns the time left on the running break, clamped at zero.
func (st *State) Remaining(now time.Time) time.Duration {
	if st.running == "" {
		return 0
	}
	if rem := st.endsAt.Sub(now); rem > 0 {
		return rem
	}
	return 0
}

// Finish ends the running break and marks its slot as taken.
func (st *State) Finish() {
	if st.running == "" {
		return
	}
	st.taken[st.running] = true
	st.running = ""
	st.endsAt = time.Time{}
}

// Taken reports whether the named slot was already used today.
func (st *State) Taken(name string) bool { return st.taken[name] }

// Clear resets all slots, used by the session wipe.
func (st *State) Clear() {
	st.taken = make(map[string]bool)
	st.running = ""
	st.endsAt = time.Time{}
}

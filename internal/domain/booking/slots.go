package booking

import "time"

// TimeSlot is one bookable slot as presented to clients.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Slots expands a working-hours window into the ordered candidate slot
// starts t0 < t1 < ... with t0 = window start and each slot fully inside
// the window. A partial slot at the end of the window is dropped, never an
// error. start >= end yields no slots.
func Slots(w Window, slotLen time.Duration) []TimeOfDay {
	step := TimeOfDay(slotLen / time.Minute)
	if step <= 0 {
		return nil
	}

	var out []TimeOfDay
	for t := w.Start; t+step <= w.End; t += step {
		out = append(out, t)
	}
	return out
}

package availability

import "fmt"

// GenerateSlots produces the ordered slot times for a bookable window.
// The window is half-open: endHour itself is not bookable. At a 30-minute
// interval the half-hour slots are interleaved with the full hours.
func GenerateSlots(startHour, endHour, intervalMinutes int) []string {
	if startHour >= endHour {
		return nil
	}

	var slots []string
	for h := startHour; h < endHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
		if intervalMinutes == 30 {
			slots = append(slots, fmt.Sprintf("%02d:30", h))
		}
	}
	return slots
}

// overrideDecision is the outcome of the three-way day-override policy.
type overrideDecision struct {
	clear   bool     // remove every override for the date
	fullDay bool     // promote to a full-day block
	blocked []string // partial block times, set only when neither of the above
}

// resolveOverride applies the day-override policy: requesting every slot of
// the day promotes to a full-day block, requesting none clears both layers,
// anything in between is stored as a partial block. Times outside the day's
// slot set are dropped so stale entries cannot survive a schedule change.
func resolveOverride(requested, allSlots []string) overrideDecision {
	slotSet := make(map[string]bool, len(allSlots))
	for _, s := range allSlots {
		slotSet[s] = true
	}

	seen := make(map[string]bool, len(requested))
	var blocked []string
	for _, t := range requested {
		if slotSet[t] && !seen[t] {
			seen[t] = true
			blocked = append(blocked, t)
		}
	}

	if len(blocked) == 0 {
		return overrideDecision{clear: true}
	}
	if len(blocked) == len(allSlots) {
		return overrideDecision{fullDay: true}
	}
	return overrideDecision{blocked: blocked}
}

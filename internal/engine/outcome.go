package engine

// TargetOutcome is where a watch target ended up for one sweep. A target
// starts each sweep idle, moves to checking, and stops at one of these.
type TargetOutcome int

const (
	// OutcomeNoActivity means no slot survived filtering and dedup.
	OutcomeNoActivity TargetOutcome = iota
	// OutcomeNewSlotsFound means new slots were recorded but no recipient
	// was configured.
	OutcomeNewSlotsFound
	// OutcomeNotified means every dispatch attempt succeeded.
	OutcomeNotified
	// OutcomeNotifyFailed means at least one dispatch attempt failed.
	OutcomeNotifyFailed
	// OutcomeError means the target was abandoned part way.
	OutcomeError
)

var outcomeNames = [...]string{
	OutcomeNoActivity:    "no_activity",
	OutcomeNewSlotsFound: "new_slots_found",
	OutcomeNotified:      "notified",
	OutcomeNotifyFailed:  "notify_failed",
	OutcomeError:         "error",
}

func (o TargetOutcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// SweepResult summarizes one sweep.
type SweepResult struct {
	Targets  int
	NewSlots int
	Errors   int
	Outcomes map[TargetOutcome]int
}

func (r *SweepResult) record(o TargetOutcome, newSlots int, err error) {
	if r.Outcomes == nil {
		r.Outcomes = make(map[TargetOutcome]int)
	}
	r.Targets++
	r.NewSlots += newSlots
	r.Outcomes[o]++
	if err != nil {
		r.Errors++
	}
}

package domain

// Status is the lifecycle state of a booking. Transitions are
// admin-driven and restricted to the edges listed in transitions below;
// everything else is rejected.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// transitions enumerates the legal status edges. Absent states
// (rejected, completed) are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusActive, StatusPaused},
	StatusActive:   {StatusPaused, StatusCompleted},
	StatusPaused:   {StatusActive},
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the edge s -> next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status accepts no further transitions.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

// OccupyingStatuses are the booking states that block other bookings
// from the same slot over overlapping dates. Paused bookings release
// their slots; toggling back to active does not re-run conflict checks,
// so an admin resuming a paused ad accepts that the slot may have been
// re-booked in the meantime.
var OccupyingStatuses = []Status{StatusPending, StatusApproved, StatusActive}

// Occupying reports whether a booking in this state counts toward slot
// occupancy for conflict detection.
func (s Status) Occupying() bool {
	for _, o := range OccupyingStatuses {
		if s == o {
			return true
		}
	}
	return false
}

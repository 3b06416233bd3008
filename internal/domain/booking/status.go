package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusPaid      Status = "paid"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Actor is who may trigger a transition. The system actor exists only for
// the automatic paid -> confirmed hop.
type Actor string

const (
	ActorBuyer  Actor = "buyer"
	ActorSeller Actor = "seller"
	ActorSystem Actor = "system"
)

// transitions is the single owner of lifecycle legality. Nothing outside
// this table may decide whether a status change is allowed.
var transitions = map[Status]map[Status][]Actor{
	StatusPending: {
		StatusApproved:  {ActorSeller},
		StatusRejected:  {ActorSeller},
		StatusCancelled: {ActorBuyer, ActorSeller},
	},
	StatusApproved: {
		StatusPaid:      {ActorBuyer},
		StatusCancelled: {ActorBuyer, ActorSeller},
	},
	StatusPaid: {
		StatusConfirmed: {ActorSystem},
	},
	StatusConfirmed: {
		StatusCompleted: {ActorSeller},
	},
}

func InitialStatus() Status {
	return StatusPending
}

// CanTransition reports whether actor may move an appointment from one
// status to another. Transitions are deliberately not idempotent: each one
// records an irreversible real-world action, so re-applying fails.
func CanTransition(from, to Status, actor Actor) error {
	targets, ok := transitions[from]
	if !ok {
		return ErrInvalidTransition
	}
	actors, ok := targets[to]
	if !ok {
		return ErrInvalidTransition
	}
	for _, a := range actors {
		if a == actor {
			return nil
		}
	}
	return ErrUnauthorized
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusCancelled
}

// Holds reports whether an appointment in this status keeps its slot
// reserved. A merely pending request already blocks the slot so two buyers
// cannot race for the same start time.
func Holds(s Status) bool {
	return s != StatusCancelled && s != StatusRejected
}

// ApprovalBlocking lists the statuses that forbid approving another
// appointment on the same seller/date/time.
func ApprovalBlocking() []Status {
	return []Status{StatusApproved, StatusPaid, StatusConfirmed, StatusCompleted}
}

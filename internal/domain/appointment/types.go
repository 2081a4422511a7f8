package appointment

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusMissed, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCompleted, StatusMissed, StatusFailed:
		return true
	default:
		return false
	}
}

// Cancellable lists the statuses a cancellation may start from.
var Cancellable = []Status{StatusPending, StatusConfirmed}

// Overridable lists the statuses an administrative missed/failed override may start from.
var Overridable = []Status{StatusConfirmed, StatusCompleted}

type PaymentStatus string

const (
	PaymentNone              PaymentStatus = "none"
	PaymentPending           PaymentStatus = "pending"
	PaymentPaid              PaymentStatus = "paid"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentFailed            PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodCash
}

func (m PaymentMethod) String() string {
	return string(m)
}

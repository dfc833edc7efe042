package model

// ProcessingStatus is the canonical checking status derived from the raw
// status string the order catalog attaches to a PI.
type ProcessingStatus string

const (
	StatusNotReceived ProcessingStatus = "not_received" // no checking on file, submission open
	StatusConfirmed   ProcessingStatus = "confirmed"    // checking accepted
	StatusRejected    ProcessingStatus = "rejected"     // checking refused
	StatusArchived    ProcessingStatus = "archived"     // archived or complemented
	StatusUnknown     ProcessingStatus = "unknown"      // non-empty string outside the vocabulary
)

// IsOpen reports whether new evidence may be submitted in this status.
// Every status other than NotReceived blocks, including Unknown: an
// unrecognized state is treated as finalized rather than open.
func (s ProcessingStatus) IsOpen() bool {
	return s == StatusNotReceived
}

// ReasonCode classifies why a gate decision blocked (or allowed) submission.
type ReasonCode string

const (
	ReasonOpen      ReasonCode = "open"
	ReasonConfirmed ReasonCode = "confirmed"
	ReasonRejected  ReasonCode = "rejected"
	ReasonArchived  ReasonCode = "archived"
	ReasonFinalized ReasonCode = "finalized" // unrecognized non-empty status
	ReasonLimit     ReasonCode = "limit"     // collaborator submission-limit signal
)

// GateDecision is the submission gate's verdict for one order query. It is a
// pure function of the raw status string plus the collaborator's limit and
// complement signals.
type GateDecision struct {
	Allowed      bool             `json:"allowed"`
	IsComplement bool             `json:"is_complement"`
	Status       ProcessingStatus `json:"status"`
	Reason       ReasonCode       `json:"reason"`
	Message      string           `json:"message"`
}

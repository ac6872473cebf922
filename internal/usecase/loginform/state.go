package loginform

type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s SubmissionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome reports what a Submit call did.
type Outcome int

const (
	// OutcomeIgnored: another submission was in flight; nothing happened.
	OutcomeIgnored Outcome = iota
	// OutcomeInvalid: local validation failed; the backend was not called.
	OutcomeInvalid
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

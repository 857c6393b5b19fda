package domain

// QuestionOutcome discriminates the backend's soft business outcomes for an
// add-question call. The backend reports these as 2xx responses whose
// message field encodes the outcome; the string matching is confined to
// ClassifyQuestionMessage so the rest of the client branches on the enum.
type QuestionOutcome int

const (
	// OutcomeCreated means a new question row was created.
	OutcomeCreated QuestionOutcome = iota

	// OutcomeDuplicate means an equivalent question already exists and no
	// row was created.
	OutcomeDuplicate

	// OutcomeRejected means the backend judged the question irrelevant to
	// the domain and created nothing.
	OutcomeRejected
)

// String returns the string representation of the outcome.
func (o QuestionOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Backend-authored outcome messages. Changing these breaks outcome
// detection; they mirror the strings the answering service emits.
const (
	msgQuestionDuplicate = "Same type of question already exists"
	msgQuestionRejected  = "Provide a relevant Question"
)

// ClassifyQuestionMessage maps the backend's add-question response message
// to an outcome. Unrecognised messages are treated as created, matching the
// backend's behaviour of only special-casing the two soft outcomes.
func ClassifyQuestionMessage(message string) QuestionOutcome {
	switch message {
	case msgQuestionDuplicate:
		return OutcomeDuplicate
	case msgQuestionRejected:
		return OutcomeRejected
	default:
		return OutcomeCreated
	}
}

package assessment

// State is the session's position in the assessment lifecycle.
type State int

const (
	Idle State = iota
	QuestionsLoading
	Answering
	InsightsLoading
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case QuestionsLoading:
		return "questions-loading"
	case Answering:
		return "answering"
	case InsightsLoading:
		return "insights-loading"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Loading reports whether an oracle call is outstanding in this state.
func (s State) Loading() bool {
	return s == QuestionsLoading || s == InsightsLoading
}

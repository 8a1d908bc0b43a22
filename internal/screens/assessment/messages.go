package assessment

// startedMsg is sent when Session.Start returns.
type startedMsg struct {
	Err error
}

// analyzedMsg is sent when the final answer's insight stage returns.
type analyzedMsg struct {
	Err error
}

package entity

import "time"

// AgentResult is the outcome of one agent run. Err is nil on success, even
// when the model answered with an empty string.
type AgentResult struct {
	Role     Role
	Content  string
	Err      error
	Duration time.Duration
}

func (r AgentResult) OK() bool {
	return r.Err == nil
}

// Text returns the content of a successful run and "" otherwise.
func (r AgentResult) Text() string {
	if !r.OK() {
		return ""
	}
	return r.Content
}

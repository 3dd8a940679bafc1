package output

import (
	"medical-agents/internal/application/port/input"
	"medical-agents/internal/domain/entity"
)

// AgentFactory builds a fresh agent, with its own completion handle, for one
// request.
type AgentFactory interface {
	NewAgent(role entity.Role, in entity.AgentInput) (input.AgentRunner, error)
}

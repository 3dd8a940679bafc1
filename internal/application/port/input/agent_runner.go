package input

import (
	"context"

	"medical-agents/internal/domain/entity"
)

type AgentRunner interface {
	Role() entity.Role
	Run(ctx context.Context) entity.AgentResult
}

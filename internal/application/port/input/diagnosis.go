package input

import (
	"context"

	"medical-agents/internal/domain/entity"
)

type Diagnosis struct {
	RunID       string
	Specialists map[entity.Role]entity.AgentResult
	Team        entity.AgentResult
}

// FinalDiagnosis is the team's answer, or "" when the team run failed.
func (d *Diagnosis) FinalDiagnosis() string {
	return d.Team.Text()
}

type DiagnosisExecutor interface {
	Diagnose(ctx context.Context, medicalReport string) (*Diagnosis, error)
}

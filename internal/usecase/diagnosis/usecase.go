package diagnosis

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"medical-agents/internal/application/port/input"
	"medical-agents/internal/application/port/output"
	"medical-agents/internal/domain/entity"

	"github.com/google/uuid"
)

var _ input.DiagnosisExecutor = (*UseCase)(nil)

// UseCase asks the three specialists about one medical report in parallel and
// hands their answers to the multidisciplinary team.
type UseCase struct {
	agents output.AgentFactory
	logger output.LoggerPort
}

func New(agents output.AgentFactory, logger output.LoggerPort) *UseCase {
	return &UseCase{
		agents: agents,
		logger: logger,
	}
}

// Diagnose returns an error only when an agent cannot be built or the report
// is empty. A specialist that fails contributes an empty report to the team.
func (uc *UseCase) Diagnose(ctx context.Context, medicalReport string) (*input.Diagnosis, error) {
	if strings.TrimSpace(medicalReport) == "" {
		return nil, fmt.Errorf("medical report is empty")
	}

	runID := uuid.NewString()
	log := uc.logger.WithField("run_id", runID)

	specialists := make([]input.AgentRunner, 0, len(entity.Specialists()))
	for _, role := range entity.Specialists() {
		agent, err := uc.agents.NewAgent(role, entity.AgentInput{MedicalReport: medicalReport})
		if err != nil {
			return nil, fmt.Errorf("create %s agent: %w", role, err)
		}
		specialists = append(specialists, agent)
	}

	log.Info("Diagnosis started", "specialists", len(specialists), "reportLength", len(medicalReport))

	results := make([]entity.AgentResult, len(specialists))
	var wg sync.WaitGroup
	for i, agent := range specialists {
		wg.Add(1)
		go func(i int, agent input.AgentRunner) {
			defer wg.Done()
			results[i] = agent.Run(ctx)
		}(i, agent)
	}
	wg.Wait()

	diagnosis := &input.Diagnosis{
		RunID:       runID,
		Specialists: make(map[entity.Role]entity.AgentResult, len(results)),
	}
	reports := make(entity.TeamReports, len(results))
	for _, res := range results {
		diagnosis.Specialists[res.Role] = res
		if key, ok := entity.ReportKeyFor(res.Role); ok {
			reports[key] = res.Text()
		}
		if !res.OK() {
			log.Warn("Specialist produced no report", "role", string(res.Role))
		}
	}

	team, err := uc.agents.NewAgent(entity.RoleMultidisciplinaryTeam, entity.AgentInput{TeamReports: reports})
	if err != nil {
		return nil, fmt.Errorf("create %s agent: %w", entity.RoleMultidisciplinaryTeam, err)
	}

	diagnosis.Team = team.Run(ctx)

	log.Info("Diagnosis finished",
		"teamOK", diagnosis.Team.OK(),
		"teamDuration", diagnosis.Team.Duration)

	return diagnosis, nil
}

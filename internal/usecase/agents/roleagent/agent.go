// Package roleagent runs one prompt for one medical role: a specialist reading
// the patient's report, or the multidisciplinary team reading the
// specialists' reports.
package roleagent

import (
	"context"
	"fmt"
	"time"

	"medical-agents/internal/application/port/input"
	"medical-agents/internal/application/port/output"
	"medical-agents/internal/domain/entity"
	"medical-agents/internal/infrastructure/prompts"
)

var _ input.AgentRunner = (*Agent)(nil)

// Temperature is fixed at the least random setting.
const Temperature float32 = 0

type Agent struct {
	role          entity.Role
	medicalReport string
	teamReports   entity.TeamReports
	template      prompts.Template
	llm           output.LLMPort
	logger        output.LoggerPort
}

// New resolves the role's template up front, so an unknown role fails here
// rather than on Run.
func New(role entity.Role, in entity.AgentInput, llm output.LLMPort, logger output.LoggerPort) (*Agent, error) {
	tmpl, err := prompts.ForRole(role)
	if err != nil {
		return nil, err
	}

	a := &Agent{
		role:     role,
		template: tmpl,
		llm:      llm,
		logger:   logger.WithField("role", string(role)),
	}

	if role == entity.RoleMultidisciplinaryTeam {
		a.teamReports = make(entity.TeamReports, len(in.TeamReports))
		for k, v := range in.TeamReports {
			a.teamReports[k] = v
		}
	} else {
		a.medicalReport = in.MedicalReport
	}

	return a, nil
}

func NewCardiologist(medicalReport string, llm output.LLMPort, logger output.LoggerPort) *Agent {
	return mustNew(entity.RoleCardiologist, entity.AgentInput{MedicalReport: medicalReport}, llm, logger)
}

func NewPsychologist(medicalReport string, llm output.LLMPort, logger output.LoggerPort) *Agent {
	return mustNew(entity.RolePsychologist, entity.AgentInput{MedicalReport: medicalReport}, llm, logger)
}

func NewPulmonologist(medicalReport string, llm output.LLMPort, logger output.LoggerPort) *Agent {
	return mustNew(entity.RolePulmonologist, entity.AgentInput{MedicalReport: medicalReport}, llm, logger)
}

func NewMultidisciplinaryTeam(cardiologistReport, psychologistReport, pulmonologistReport string, llm output.LLMPort, logger output.LoggerPort) *Agent {
	return mustNew(entity.RoleMultidisciplinaryTeam, entity.AgentInput{
		TeamReports: entity.TeamReports{
			entity.ReportCardiologist:  cardiologistReport,
			entity.ReportPsychologist:  psychologistReport,
			entity.ReportPulmonologist: pulmonologistReport,
		},
	}, llm, logger)
}

// mustNew is only called with the fixed roles above.
func mustNew(role entity.Role, in entity.AgentInput, llm output.LLMPort, logger output.LoggerPort) *Agent {
	a, err := New(role, in, llm, logger)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Agent) Role() entity.Role {
	return a.role
}

func (a *Agent) Template() prompts.Template {
	return a.template
}

// Prompt fills the bound template with the agent's input. Team reports that
// were not supplied are substituted with "".
func (a *Agent) Prompt() (string, error) {
	values := make(map[string]any)

	if a.role == entity.RoleMultidisciplinaryTeam {
		for _, key := range entity.TeamReportKeys() {
			report, ok := a.teamReports[key]
			if !ok {
				a.logger.Warn("Team report missing, using empty text", "report", string(key))
			}
			values[string(key)] = report
		}
	} else {
		values[prompts.PlaceholderMedicalReport] = a.medicalReport
	}

	return a.template.Format(values)
}

// Run never returns an error: failures are logged once and reported through
// the result.
func (a *Agent) Run(ctx context.Context) entity.AgentResult {
	a.logger.Info(fmt.Sprintf("%s is running...", a.role))
	start := time.Now()

	content, err := a.run(ctx)
	result := entity.AgentResult{
		Role:     a.role,
		Content:  content,
		Err:      err,
		Duration: time.Since(start),
	}

	if err != nil {
		result.Content = ""
		a.logger.Error("Error occurred", "error", err, "duration", result.Duration)
		return result
	}

	a.logger.Debug("Agent finished", "duration", result.Duration, "contentLength", len(content))
	return result
}

func (a *Agent) run(ctx context.Context) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &entity.InvocationError{Role: a.role, Stage: "completion", Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	prompt, err := a.Prompt()
	if err != nil {
		return "", &entity.InvocationError{Role: a.role, Stage: "format", Err: err}
	}

	resp, err := a.llm.Chat(ctx, output.ChatRequest{
		Messages:    []entity.Message{entity.UserMessage(prompt)},
		Temperature: Temperature,
	})
	if err != nil {
		return "", &entity.InvocationError{Role: a.role, Stage: "completion", Err: err}
	}
	if resp == nil {
		return "", &entity.InvocationError{Role: a.role, Stage: "completion", Err: fmt.Errorf("empty response")}
	}

	a.logger.Debug("Completion usage",
		"promptTokens", resp.Usage.PromptTokens,
		"completionTokens", resp.Usage.CompletionTokens)

	return resp.Message.Content, nil
}

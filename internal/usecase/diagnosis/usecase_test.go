package diagnosis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"medical-agents/internal/application/port/input"
	"medical-agents/internal/application/port/output"
	"medical-agents/internal/domain/entity"
	"medical-agents/internal/infrastructure/logger"
	"medical-agents/internal/usecase/agents/roleagent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM answers by looking at the prompt's opening line.
type scriptedLLM struct {
	mu      sync.Mutex
	answers map[string]string
	fail    map[string]bool
	prompts []string
}

func (s *scriptedLLM) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	prompt := req.Messages[0].Content

	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	for prefix, answer := range s.answers {
		if strings.HasPrefix(prompt, prefix) {
			if s.fail[prefix] {
				return nil, errors.New("rate limited")
			}
			return &output.ChatResponse{Message: entity.Message{Role: entity.MessageAssistant, Content: answer}}, nil
		}
	}
	return nil, errors.New("unexpected prompt")
}

func (s *scriptedLLM) teamPrompt(t *testing.T) string {
	t.Helper()
	for _, p := range s.prompts {
		if strings.HasPrefix(p, "Act like a multidisciplinary team") {
			return p
		}
	}
	t.Fatal("team prompt was not sent")
	return ""
}

type factory struct {
	llm     output.LLMPort
	failFor entity.Role
	built   []entity.Role
}

func (f *factory) NewAgent(role entity.Role, in entity.AgentInput) (input.AgentRunner, error) {
	if role == f.failFor {
		return nil, &entity.CapabilityInitError{Backend: "openai", Err: errors.New("missing OpenAI API key")}
	}
	f.built = append(f.built, role)
	return roleagent.New(role, in, f.llm, logger.NewNop())
}

func newScriptedLLM() *scriptedLLM {
	return &scriptedLLM{
		answers: map[string]string{
			"Act like a cardiologist":           "cardio findings",
			"Act like a psychologist":           "psych findings",
			"Act like a pulmonologist":          "pulmo findings",
			"Act like a multidisciplinary team": "- Panic disorder",
		},
		fail: map[string]bool{},
	}
}

func TestDiagnose_AllSpecialistsThenTeam(t *testing.T) {
	llm := newScriptedLLM()
	f := &factory{llm: llm}

	d, err := New(f, logger.NewNop()).Diagnose(context.Background(), "Patient reports chest pain.")
	require.NoError(t, err)

	assert.NotEmpty(t, d.RunID)
	assert.Len(t, d.Specialists, 3)
	assert.Equal(t, "cardio findings", d.Specialists[entity.RoleCardiologist].Content)
	assert.Equal(t, "- Panic disorder", d.FinalDiagnosis())
	assert.Equal(t, entity.RoleMultidisciplinaryTeam, f.built[len(f.built)-1])

	team := llm.teamPrompt(t)
	assert.Contains(t, team, "Cardiologist Report: cardio findings")
	assert.Contains(t, team, "Psychologist Report: psych findings")
	assert.Contains(t, team, "Pulmonologist Report: pulmo findings")
}

func TestDiagnose_FailedSpecialistFeedsEmptyReport(t *testing.T) {
	llm := newScriptedLLM()
	llm.fail["Act like a psychologist"] = true

	d, err := New(&factory{llm: llm}, logger.NewNop()).Diagnose(context.Background(), "report")
	require.NoError(t, err)

	assert.False(t, d.Specialists[entity.RolePsychologist].OK())
	assert.True(t, d.Team.OK())
	assert.Contains(t, llm.teamPrompt(t), "Psychologist Report: \n")
}

func TestDiagnose_TeamFailure(t *testing.T) {
	llm := newScriptedLLM()
	llm.fail["Act like a multidisciplinary team"] = true

	d, err := New(&factory{llm: llm}, logger.NewNop()).Diagnose(context.Background(), "report")
	require.NoError(t, err)

	assert.False(t, d.Team.OK())
	assert.Equal(t, "", d.FinalDiagnosis())
}

func TestDiagnose_AgentInitError(t *testing.T) {
	llm := newScriptedLLM()

	_, err := New(&factory{llm: llm, failFor: entity.RolePulmonologist}, logger.NewNop()).
		Diagnose(context.Background(), "report")

	var initErr *entity.CapabilityInitError
	require.True(t, errors.As(err, &initErr))
	assert.Empty(t, llm.prompts)
}

func TestDiagnose_EmptyReport(t *testing.T) {
	_, err := New(&factory{llm: newScriptedLLM()}, logger.NewNop()).Diagnose(context.Background(), "  \n")
	assert.EqualError(t, err, "medical report is empty")
}

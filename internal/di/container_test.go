package di

import (
	"errors"
	"testing"

	"medical-agents/internal/domain/entity"
	"medical-agents/internal/infrastructure/llm/openai"
	"medical-agents/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapConfig map[string]string

func (m mapConfig) Get(key string) string { return m[key] }

func (m mapConfig) GetWithDefault(key, def string) string {
	if v := m[key]; v != "" {
		return v
	}
	return def
}

func (m mapConfig) GetBool(key string, def bool) bool {
	switch m[key] {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

func (m mapConfig) GetInt(key string, def int) int { return def }

func (m mapConfig) Require(key string) (string, error) {
	if v := m[key]; v != "" {
		return v, nil
	}
	return "", errors.New("missing " + key)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := ConfigFromEnv(mapConfig{"OPENAI_API_KEY": "sk-test"})

	assert.Equal(t, BackendOpenAI, cfg.Backend)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, openai.DefaultModel, cfg.Model)
	assert.Equal(t, openai.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogHTTP)
}

func TestNewAgent_AllBackends(t *testing.T) {
	for _, backend := range []string{BackendOpenAI, BackendLangChain} {
		t.Run(backend, func(t *testing.T) {
			c, err := newContainer(Config{Backend: backend, APIKey: "sk-test", Model: "gpt-4o"}, logger.NewNop())
			require.NoError(t, err)

			for _, role := range entity.Roles() {
				agent, err := c.NewAgent(role, entity.AgentInput{MedicalReport: "report"})
				require.NoError(t, err)
				assert.Equal(t, role, agent.Role())
			}
		})
	}
}

func TestNewAgent_MissingKey(t *testing.T) {
	c, err := newContainer(Config{Backend: BackendOpenAI}, logger.NewNop())
	require.NoError(t, err)

	_, err = c.NewAgent(entity.RoleCardiologist, entity.AgentInput{MedicalReport: "report"})

	var initErr *entity.CapabilityInitError
	require.True(t, errors.As(err, &initErr))
	assert.Equal(t, BackendOpenAI, initErr.Backend)
	assert.ErrorIs(t, err, openai.ErrMissingAPIKey)
}

func TestNewAgent_UnknownRole(t *testing.T) {
	c, err := newContainer(Config{APIKey: "sk-test"}, logger.NewNop())
	require.NoError(t, err)

	_, err = c.NewAgent(entity.Role("Oncologist"), entity.AgentInput{})

	var roleErr *entity.UnknownRoleError
	assert.True(t, errors.As(err, &roleErr))
}

func TestNewContainer_UnknownBackend(t *testing.T) {
	_, err := newContainer(Config{Backend: "gemini"}, logger.NewNop())
	assert.EqualError(t, err, `unknown LLM backend "gemini"`)
}

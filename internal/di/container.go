package di

import (
	"fmt"

	"medical-agents/internal/application/port/input"
	"medical-agents/internal/application/port/output"
	"medical-agents/internal/domain/entity"
	"medical-agents/internal/infrastructure/llm/langchain"
	"medical-agents/internal/infrastructure/llm/openai"
	"medical-agents/internal/infrastructure/logger"
	"medical-agents/internal/infrastructure/userinteraction"
	"medical-agents/internal/usecase/agents/roleagent"
	"medical-agents/internal/usecase/diagnosis"
)

const (
	BackendOpenAI    = "openai"
	BackendLangChain = "langchain"
)

var _ output.AgentFactory = (*Container)(nil)

type Container struct {
	Logger    output.LoggerPort
	Presenter output.PresenterPort
	Diagnosis input.DiagnosisExecutor

	cfg    Config
	newLLM func() (output.LLMPort, error)
}

type Config struct {
	Backend  string
	APIKey   string
	Model    string
	BaseURL  string
	LogHTTP  bool
	LogLevel string
	LogFile  string
}

// ConfigFromEnv reads the container settings. The API key is not required
// here: a missing key surfaces as a CapabilityInitError when an agent is built.
func ConfigFromEnv(env output.ConfigPort) Config {
	return Config{
		Backend:  env.GetWithDefault("LLM_BACKEND", BackendOpenAI),
		APIKey:   env.Get("OPENAI_API_KEY"),
		Model:    env.GetWithDefault("LLM_MODEL", openai.DefaultModel),
		BaseURL:  env.GetWithDefault("LLM_BASE_URL", openai.DefaultBaseURL),
		LogHTTP:  env.GetBool("LLM_HTTP_LOG", false),
		LogLevel: env.GetWithDefault("LOG_LEVEL", "info"),
		LogFile:  env.Get("LOG_FILE"),
	}
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(logger.Config{
		Level:    cfg.LogLevel,
		FilePath: cfg.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	c, err := newContainer(cfg, log)
	if err != nil {
		log.Close()
		return nil, err
	}
	return c, nil
}

func newContainer(cfg Config, log output.LoggerPort) (*Container, error) {
	c := &Container{
		Logger:    log,
		Presenter: userinteraction.NewConsolePresenter(),
		cfg:       cfg,
	}

	switch cfg.Backend {
	case BackendOpenAI, "":
		c.newLLM = c.openAIBackend
	case BackendLangChain:
		c.newLLM = c.langChainBackend
	default:
		return nil, fmt.Errorf("unknown LLM backend %q", cfg.Backend)
	}

	c.Diagnosis = diagnosis.New(c, log.Named("diagnosis"))
	return c, nil
}

func (c *Container) openAIBackend() (output.LLMPort, error) {
	llm, err := openai.NewAdapter(openai.Config{
		APIKey:  c.cfg.APIKey,
		Model:   c.cfg.Model,
		BaseURL: c.cfg.BaseURL,
		LogHTTP: c.cfg.LogHTTP,
		Logger:  c.Logger.Named("openai"),
	})
	if err != nil {
		return nil, err
	}
	return llm, nil
}

func (c *Container) langChainBackend() (output.LLMPort, error) {
	llm, err := langchain.NewAdapter(langchain.Config{
		APIKey:  c.cfg.APIKey,
		Model:   c.cfg.Model,
		BaseURL: c.cfg.BaseURL,
		Logger:  c.Logger.Named("langchain"),
	})
	if err != nil {
		return nil, err
	}
	return llm, nil
}

// NewAgent gives every agent its own completion handle.
func (c *Container) NewAgent(role entity.Role, in entity.AgentInput) (input.AgentRunner, error) {
	if !role.IsValid() {
		return nil, &entity.UnknownRoleError{Role: string(role)}
	}

	llm, err := c.newLLM()
	if err != nil {
		backend := c.cfg.Backend
		if backend == "" {
			backend = BackendOpenAI
		}
		return nil, &entity.CapabilityInitError{Backend: backend, Err: err}
	}

	return roleagent.New(role, in, llm, c.Logger.Named("agent"))
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

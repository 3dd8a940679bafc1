package prompts

import (
	"medical-agents/internal/domain/entity"

	lcprompts "github.com/tmc/langchaingo/prompts"
)

const PlaceholderMedicalReport = "medical_report"

// Template is the prompt bound to one role. Placeholders use the f-string
// form {name} and are substituted literally.
type Template struct {
	role entity.Role
	tmpl lcprompts.PromptTemplate
}

// ForRole resolves the embedded template of a role.
func ForRole(role entity.Role) (Template, error) {
	var (
		text string
		vars []string
	)

	switch role {
	case entity.RoleCardiologist:
		text, vars = CardiologistPrompt, []string{PlaceholderMedicalReport}
	case entity.RolePsychologist:
		text, vars = PsychologistPrompt, []string{PlaceholderMedicalReport}
	case entity.RolePulmonologist:
		text, vars = PulmonologistPrompt, []string{PlaceholderMedicalReport}
	case entity.RoleMultidisciplinaryTeam:
		text = MultidisciplinaryTeamPrompt
		for _, key := range entity.TeamReportKeys() {
			vars = append(vars, string(key))
		}
	default:
		return Template{}, &entity.UnknownRoleError{Role: string(role)}
	}

	return Template{
		role: role,
		tmpl: lcprompts.PromptTemplate{
			Template:       text,
			InputVariables: vars,
			TemplateFormat: lcprompts.TemplateFormatFString,
		},
	}, nil
}

func (t Template) Role() entity.Role {
	return t.role
}

// Placeholders returns the names the template expects, in declaration order.
func (t Template) Placeholders() []string {
	out := make([]string, len(t.tmpl.InputVariables))
	copy(out, t.tmpl.InputVariables)
	return out
}

func (t Template) Text() string {
	return t.tmpl.Template
}

// Format fills every placeholder. A missing value is an error.
func (t Template) Format(values map[string]any) (string, error) {
	return t.tmpl.Format(values)
}

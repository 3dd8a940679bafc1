package prompts

import (
	_ "embed"
)

//go:embed cardiologist.txt
var CardiologistPrompt string

//go:embed psychologist.txt
var PsychologistPrompt string

//go:embed pulmonologist.txt
var PulmonologistPrompt string

//go:embed multidisciplinary_team.txt
var MultidisciplinaryTeamPrompt string

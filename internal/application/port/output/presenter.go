package output

import "medical-agents/internal/application/port/input"

type PresenterPort interface {
	ShowDiagnosis(d *input.Diagnosis)
}

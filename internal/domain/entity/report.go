package entity

// ReportKey names one specialist's report in the team input.
type ReportKey string

const (
	ReportCardiologist  ReportKey = "cardiologist_report"
	ReportPsychologist  ReportKey = "psychologist_report"
	ReportPulmonologist ReportKey = "pulmonologist_report"
)

func TeamReportKeys() []ReportKey {
	return []ReportKey{ReportCardiologist, ReportPsychologist, ReportPulmonologist}
}

// ReportKeyFor returns the team input key fed by a specialist role.
func ReportKeyFor(r Role) (ReportKey, bool) {
	switch r {
	case RoleCardiologist:
		return ReportCardiologist, true
	case RolePsychologist:
		return ReportPsychologist, true
	case RolePulmonologist:
		return ReportPulmonologist, true
	default:
		return "", false
	}
}

// TeamReports holds the specialists' outputs handed to the team agent.
type TeamReports map[ReportKey]string

// AgentInput carries the text an agent is built with. Specialists read
// MedicalReport only; the team reads TeamReports only.
type AgentInput struct {
	MedicalReport string
	TeamReports   TeamReports
}

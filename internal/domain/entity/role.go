package entity

import "strings"

type Role string

const (
	RoleCardiologist          Role = "Cardiologist"
	RolePsychologist          Role = "Psychologist"
	RolePulmonologist         Role = "Pulmonologist"
	RoleMultidisciplinaryTeam Role = "MultidisciplinaryTeam"
)

// Roles lists every role in a stable order: the three specialists first,
// then the team that synthesises their reports.
func Roles() []Role {
	return []Role{
		RoleCardiologist,
		RolePsychologist,
		RolePulmonologist,
		RoleMultidisciplinaryTeam,
	}
}

// Specialists lists the roles that read a single medical report.
func Specialists() []Role {
	return []Role{RoleCardiologist, RolePsychologist, RolePulmonologist}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	for _, known := range Roles() {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) IsSpecialist() bool {
	return r.IsValid() && r != RoleMultidisciplinaryTeam
}

// ParseRole matches names exactly; surrounding whitespace is ignored.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(s))
	if !r.IsValid() {
		return "", &UnknownRoleError{Role: s}
	}
	return r, nil
}

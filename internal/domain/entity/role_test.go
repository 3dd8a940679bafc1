package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole_Known(t *testing.T) {
	for _, r := range Roles() {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := ParseRole("  Psychologist ")
	require.NoError(t, err)
	assert.Equal(t, RolePsychologist, got)
}

func TestParseRole_Unknown(t *testing.T) {
	for _, name := range []string{"Dermatologist", "cardiologist", ""} {
		_, err := ParseRole(name)
		require.Error(t, err)

		var roleErr *UnknownRoleError
		require.True(t, errors.As(err, &roleErr))
		assert.Equal(t, name, roleErr.Role)
		assert.Contains(t, err.Error(), "MultidisciplinaryTeam")
	}
}

func TestRole_IsSpecialist(t *testing.T) {
	assert.True(t, RoleCardiologist.IsSpecialist())
	assert.True(t, RolePulmonologist.IsSpecialist())
	assert.False(t, RoleMultidisciplinaryTeam.IsSpecialist())
	assert.False(t, Role("Surgeon").IsSpecialist())
}

func TestReportKeyFor(t *testing.T) {
	for i, r := range Specialists() {
		key, ok := ReportKeyFor(r)
		require.True(t, ok)
		assert.Equal(t, TeamReportKeys()[i], key)
	}

	_, ok := ReportKeyFor(RoleMultidisciplinaryTeam)
	assert.False(t, ok)
}

func TestAgentResult(t *testing.T) {
	ok := AgentResult{Role: RoleCardiologist, Content: ""}
	assert.True(t, ok.OK())
	assert.Equal(t, "", ok.Text())

	failed := AgentResult{Role: RoleCardiologist, Content: "partial", Err: errors.New("boom")}
	assert.False(t, failed.OK())
	assert.Equal(t, "", failed.Text())
}

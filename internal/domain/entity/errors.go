package entity

import (
	"fmt"
	"strings"
)

// UnknownRoleError is returned when an agent is requested for a role outside
// the fixed set.
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	names := make([]string, 0, len(Roles()))
	for _, r := range Roles() {
		names = append(names, string(r))
	}
	return fmt.Sprintf("unknown role %q, expected one of: %s", e.Role, strings.Join(names, ", "))
}

// CapabilityInitError is returned when the completion backend for an agent
// cannot be built, e.g. the API key is missing.
type CapabilityInitError struct {
	Backend string
	Err     error
}

func (e *CapabilityInitError) Error() string {
	return fmt.Sprintf("init %s completion backend: %v", e.Backend, e.Err)
}

func (e *CapabilityInitError) Unwrap() error {
	return e.Err
}

// InvocationError describes a failure inside Run. It never escapes Run as an
// error return; it is carried by the failed AgentResult.
type InvocationError struct {
	Role  Role
	Stage string // format | completion
	Err   error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Role, e.Stage, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

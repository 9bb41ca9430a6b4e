package node

import (
	"fmt"
	"strings"
)

type UnknownServiceError struct {
	Name string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service: %s", e.Name)
}

type DuplicateServiceError struct {
	Kind string
}

func (e *DuplicateServiceError) Error() string {
	return fmt.Sprintf("duplicate service: %s", e.Kind)
}

// StopError is returned if a Node fails to stop some of its services.
type StopError struct {
	Services map[string]error
}

func (e *StopError) Error() string {
	var parts []string
	for kind, err := range e.Services {
		parts = append(parts, fmt.Sprintf("%s: %v", kind, err))
	}
	return fmt.Sprintf("services failed to stop: %s", strings.Join(parts, ", "))
}

// ServiceTypeError reports a registered service that does not provide the
// interface its consumer needs.
type ServiceTypeError struct {
	Name string
	Want string
}

func (e *ServiceTypeError) Error() string {
	return fmt.Sprintf("service %s is not a %s", e.Name, e.Want)
}

package cli

import (
	"strings"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/spf13/pflag"
)

// typesValue collects repeated or comma-separated --type flags into a
// ProjectType list.
type typesValue struct {
	types *[]domain.ProjectType
}

var _ pflag.Value = (*typesValue)(nil)

func newTypesValue(dst *[]domain.ProjectType) *typesValue {
	return &typesValue{types: dst}
}

func (v *typesValue) String() string {
	parts := make([]string, 0, len(*v.types))
	for _, t := range *v.types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ",")
}

func (v *typesValue) Set(raw string) error {
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		*v.types = append(*v.types, domain.ProjectType(part))
	}
	return nil
}

func (v *typesValue) Type() string {
	return "projectType"
}

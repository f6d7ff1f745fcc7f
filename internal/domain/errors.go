package domain

import "fmt"

// UnknownMaterialError reports a material identifier missing from the static
// table. Material choice is user input, so mis-selection is surfaced rather
// than silently defaulted.
type UnknownMaterialError struct {
	Name string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q (supported: %v)", e.Name, MaterialNames())
}

// UnknownImpactLevelError reports an impact-level identifier missing from the
// preset table.
type UnknownImpactLevelError struct {
	Name string
}

func (e *UnknownImpactLevelError) Error() string {
	return fmt.Sprintf("unknown impact level %q (supported: %v)", e.Name, ImpactNames())
}

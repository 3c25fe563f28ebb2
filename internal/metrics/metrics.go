// Package metrics names the measurements an analysis produces, so the
// CLI can select, list and format them uniformly.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/kimryan/Readability/internal/analyse"
)

// ValueKind describes how to render a metric value.
type ValueKind string

const (
	// KindInteger renders values as integers.
	KindInteger ValueKind = "integer"
	// KindFloat renders values with fixed decimal precision.
	KindFloat ValueKind = "float"
)

// Definition describes a metric and how to read it off an analysis
// state.
type Definition struct {
	ID          string
	Name        string
	Description string
	Kind        ValueKind
	Precision   int
	Default     bool
	Compute     func(st *analyse.State) float64
}

// Format renders a computed value according to the definition's kind
// and precision.
func (d Definition) Format(value float64) string {
	if d.Kind == KindInteger {
		return strconv.Itoa(int(value))
	}
	return fmt.Sprintf("%.*f", d.Precision, value)
}

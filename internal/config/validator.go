package config

import (
	"fmt"

	"github.com/appmode/nbpack/internal/emitter"
	"github.com/appmode/nbpack/internal/parser"
)

// ValidationResult is the outcome of a single configuration check.
type ValidationResult struct {
	Category string
	Passed   bool
	Message  string
	Warning  bool
}

// Validate checks the values a config file can set. It never fails fast;
// every problem is reported as a result.
func (c *Config) Validate() []ValidationResult {
	var results []ValidationResult

	if format, err := emitter.ParseFormat(c.Format); err != nil {
		results = append(results, ValidationResult{Category: "Output format", Message: err.Error()})
	} else {
		results = append(results, ValidationResult{Category: "Output format", Passed: true, Message: string(format)})
	}

	for i, target := range c.Sync {
		results = append(results, validateSyncTarget(i, target, c.Root))
	}

	return results
}

func validateSyncTarget(i int, t SyncTarget, root string) ValidationResult {
	category := fmt.Sprintf("Sync target #%d", i+1)
	if t.Path == "" {
		return ValidationResult{Category: category, Message: "path is required"}
	}

	fc := t.FileConfig(root)
	if !fc.Format.IsValid() {
		return ValidationResult{Category: category, Message: fmt.Sprintf("%s: invalid format %q", t.Path, t.Format)}
	}
	if fc.Format == parser.FormatRegex && fc.Pattern == "" {
		return ValidationResult{Category: category, Message: fmt.Sprintf("%s: regex format needs a pattern", t.Path)}
	}
	return ValidationResult{Category: category, Passed: true, Message: fmt.Sprintf("%s (%s)", t.Path, fc.Format)}
}

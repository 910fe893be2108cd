package detector

import (
	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/ContentGuard/pkg/catalog"
)

// Result reports which catalog signatures matched and the highest severity
// observed. Patterns follows catalog order, not input order.
type Result struct {
	Detected bool             `json:"is_detected"`
	Patterns []string         `json:"patterns"`
	Severity catalog.Severity `json:"severity"`
}

type Detector struct {
	logger *logrus.Logger
}

func NewDetector(logger *logrus.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect tests content against every catalog entry. Empty input yields a
// non-detection with severity low. The input is never mutated and Detect
// never panics.
func (d *Detector) Detect(content string) Result {
	result := Result{
		Patterns: []string{},
		Severity: catalog.SeverityLow,
	}
	if content == "" {
		return result
	}

	for _, p := range catalog.Patterns() {
		if !p.Matches(content) {
			continue
		}
		result.Detected = true
		result.Patterns = append(result.Patterns, p.Name)
		result.Severity = catalog.Max(result.Severity, p.Severity)
	}

	if result.Detected {
		d.logger.WithFields(logrus.Fields{
			"patterns": result.Patterns,
			"severity": result.Severity,
		}).Debug("content matched catalog patterns")
	}

	return result
}

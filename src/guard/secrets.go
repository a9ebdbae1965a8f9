// Package guard inspects fragments before they are written into a document.
package guard

import (
	"fmt"
	"strings"

	"github.com/zricethezav/gitleaks/v8/detect"
)

// Finding is a suspected secret inside a fragment.
type Finding struct {
	Line    int // 1-based
	RuleID  string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("line %d: %s (%s)", f.Line, f.Message, f.RuleID)
}

// Secrets scans fragments with the gitleaks default rule set.
type Secrets struct {
	detector *detect.Detector
}

// NewSecrets builds a scanner with the default gitleaks configuration.
func NewSecrets() (*Secrets, error) {
	d, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("guard: loading gitleaks rules: %w", err)
	}
	return &Secrets{detector: d}, nil
}

// Scan returns every suspected secret in fragment.
func (s *Secrets) Scan(fragment string) []Finding {
	hits := s.detector.DetectBytes([]byte(fragment))
	if len(hits) == 0 {
		return nil
	}

	findings := make([]Finding, 0, len(hits))
	for _, h := range hits {
		findings = append(findings, Finding{
			Line:    h.StartLine + 1, // gitleaks is 0-indexed
			RuleID:  h.RuleID,
			Message: h.Description,
		})
	}
	return findings
}

// Check is a fragment check for the readme updater: it fails when the
// fragment contains anything that looks like a credential.
func (s *Secrets) Check(fragment string) error {
	findings := s.Scan(fragment)
	if len(findings) == 0 {
		return nil
	}
	parts := make([]string, len(findings))
	for i, f := range findings {
		parts[i] = f.String()
	}
	return fmt.Errorf("possible secrets: %s", strings.Join(parts, "; "))
}

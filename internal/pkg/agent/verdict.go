package agent

import (
	"fmt"
	"strings"
)

// VerdictLabel enumerates the auditor outcomes.
type VerdictLabel string

const (
	VerdictVerifiedCorrect   VerdictLabel = "VERIFIED_CORRECT"
	VerdictFlagged           VerdictLabel = "FLAGGED"
	VerdictVerificationError VerdictLabel = "VERIFICATION_ERROR"
)

// Verdict is the auditor's classification of a responder answer. Reason is
// only set for FLAGGED.
type Verdict struct {
	Label  VerdictLabel
	Reason string
}

// Status serializes the verdict for the audit log.
func (v Verdict) Status() string {
	if v.Label == VerdictFlagged && v.Reason != "" {
		return fmt.Sprintf("%s: %s", VerdictFlagged, v.Reason)
	}
	return string(v.Label)
}

// ParseVerdict maps the auditor model's reply onto the verdict enum. The
// model is instructed to answer exactly "CORRECT" or "FLAGGED: <reason>";
// anything else is a gateway-level failure for the caller to degrade.
func ParseVerdict(raw string) (Verdict, error) {
	reply := strings.TrimSpace(raw)
	upper := strings.ToUpper(reply)

	switch {
	case upper == "CORRECT" || upper == "VERIFIED_CORRECT":
		return Verdict{Label: VerdictVerifiedCorrect}, nil
	case strings.HasPrefix(upper, "FLAGGED"):
		reason := strings.TrimPrefix(reply[len("FLAGGED"):], ":")
		return Verdict{Label: VerdictFlagged, Reason: strings.TrimSpace(reason)}, nil
	}

	return Verdict{}, fmt.Errorf("unrecognized verdict reply: %q", reply)
}

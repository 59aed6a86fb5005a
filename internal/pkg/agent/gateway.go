package agent

import (
	"context"
	"fmt"
)

// Stage names the verification stage a gateway failure happened in.
type Stage string

const (
	StageResponder Stage = "responder"
	StageAuditor   Stage = "auditor"
)

// GatewayError wraps a reasoning-gateway failure (timeout, transport, quota)
// with the stage it occurred in.
type GatewayError struct {
	Stage Stage
	Err   error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s gateway unavailable: %v", e.Stage, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// DataHandle gives a responder read access to the canonical employee table.
// Snapshot serializes the table, truncated to at most byteLimit bytes.
type DataHandle interface {
	Snapshot(ctx context.Context, byteLimit int) (string, error)
}

// Responder produces a candidate natural-language answer for a question about
// the data behind the handle. Opaque capability; any implementation swaps in.
type Responder interface {
	Ask(ctx context.Context, question string, data DataHandle) (AnswerPayload, error)
}

// Auditor critiques a question/answer pair and classifies it.
type Auditor interface {
	Audit(ctx context.Context, question, answer string) (Verdict, error)
}

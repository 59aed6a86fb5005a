package agent

import (
	"context"
	"log"
	"time"

	"hragent/internal/metrics"
	"hragent/internal/models"

	"github.com/google/uuid"
)

// LogAppender is the slice of the canonical store the verifier writes to.
type LogAppender interface {
	AppendLog(ctx context.Context, entry *models.InteractionLog) error
}

// Verifier runs one verification cycle: responder, then auditor, then one
// audit-log append. Cycles are independent; each is internally sequential.
type Verifier struct {
	Responder Responder
	Auditor   Auditor
	Logs      LogAppender

	// Per-stage timeouts; zero means the caller's context governs alone.
	ResponderTimeout time.Duration
	AuditorTimeout   time.Duration

	// OnCycle, if set, observes each completed cycle (dashboards, session
	// history). Called after the log append, outside core correctness.
	OnCycle func(Result)
}

// Result is what a completed cycle hands back to the caller.
type Result struct {
	CycleID  string
	Question string
	Answer   string
	Verdict  Verdict
	LogID    uint
	// LogErr is a secondary warning: the append failed but the answer and
	// verdict above are still valid.
	LogErr error
}

// Run executes one cycle. A responder failure aborts the cycle with a
// GatewayError and writes nothing. An auditor failure degrades the verdict to
// VERIFICATION_ERROR and the cycle still completes and logs: a correct answer
// with an unverifiable audit is worth more than no answer.
func (v *Verifier) Run(ctx context.Context, question string, data DataHandle) (*Result, error) {
	metrics.CyclesStarted.Inc()
	cycleID := uuid.NewString()

	payload, err := v.ask(ctx, question, data)
	if err != nil {
		metrics.ResponderFailures.Inc()
		return nil, &GatewayError{Stage: StageResponder, Err: err}
	}
	answer := payload.Flatten()

	verdict, err := v.audit(ctx, question, answer)
	if err != nil {
		log.Printf("auditor unavailable for cycle %s, degrading verdict: %v", cycleID, err)
		verdict = Verdict{Label: VerdictVerificationError}
	}
	metrics.CycleVerdicts.WithLabelValues(string(verdict.Label)).Inc()

	result := &Result{
		CycleID:  cycleID,
		Question: question,
		Answer:   answer,
		Verdict:  verdict,
	}

	entry := &models.InteractionLog{
		CycleID:            cycleID,
		Question:           question,
		Answer:             answer,
		VerificationStatus: verdict.Status(),
	}
	if err := v.Logs.AppendLog(ctx, entry); err != nil {
		// Must not suppress an already-produced answer.
		log.Printf("failed to log interaction for cycle %s: %v", cycleID, err)
		result.LogErr = err
	} else {
		result.LogID = entry.ID
	}

	if v.OnCycle != nil {
		v.OnCycle(*result)
	}

	return result, nil
}

func (v *Verifier) ask(ctx context.Context, question string, data DataHandle) (AnswerPayload, error) {
	if v.ResponderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.ResponderTimeout)
		defer cancel()
	}
	return v.Responder.Ask(ctx, question, data)
}

func (v *Verifier) audit(ctx context.Context, question, answer string) (Verdict, error) {
	if v.AuditorTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.AuditorTimeout)
		defer cancel()
	}
	return v.Auditor.Audit(ctx, question, answer)
}

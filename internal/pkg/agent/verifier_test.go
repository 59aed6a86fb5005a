package agent_test

import (
	"context"
	"errors"

	"hragent/internal/models"
	"hragent/internal/pkg/agent"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubHandle struct {
	snapshot string
}

func (h *stubHandle) Snapshot(ctx context.Context, byteLimit int) (string, error) {
	return h.snapshot, nil
}

type stubResponder struct {
	payload agent.AnswerPayload
	err     error
}

func (r *stubResponder) Ask(ctx context.Context, question string, data agent.DataHandle) (agent.AnswerPayload, error) {
	if r.err != nil {
		return agent.AnswerPayload{}, r.err
	}
	return r.payload, nil
}

type stubAuditor struct {
	verdict agent.Verdict
	err     error
	called  bool
	answer  string
}

func (a *stubAuditor) Audit(ctx context.Context, question, answer string) (agent.Verdict, error) {
	a.called = true
	a.answer = answer
	if a.err != nil {
		return agent.Verdict{}, a.err
	}
	return a.verdict, nil
}

type memoryLog struct {
	entries []models.InteractionLog
	err     error
}

func (l *memoryLog) AppendLog(ctx context.Context, entry *models.InteractionLog) error {
	if l.err != nil {
		return l.err
	}
	entry.ID = uint(len(l.entries) + 1)
	l.entries = append(l.entries, *entry)
	return nil
}

var _ = Describe("Verifier", func() {
	var (
		handle    *stubHandle
		responder *stubResponder
		auditor   *stubAuditor
		logs      *memoryLog
		verifier  *agent.Verifier
	)

	BeforeEach(func() {
		handle = &stubHandle{snapshot: "Name,Email\n"}
		responder = &stubResponder{payload: agent.TextPayload("There are 42 employees.")}
		auditor = &stubAuditor{verdict: agent.Verdict{Label: agent.VerdictVerifiedCorrect}}
		logs = &memoryLog{}
		verifier = &agent.Verifier{Responder: responder, Auditor: auditor, Logs: logs}
	})

	It("runs responder, auditor, then appends exactly one log entry", func() {
		result, err := verifier.Run(context.Background(), "How many employees?", handle)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Answer).To(Equal("There are 42 employees."))
		Expect(result.Verdict.Label).To(Equal(agent.VerdictVerifiedCorrect))
		Expect(result.CycleID).NotTo(BeEmpty())
		Expect(result.LogID).To(Equal(uint(1)))
		Expect(result.LogErr).To(BeNil())

		Expect(auditor.called).To(BeTrue())
		Expect(auditor.answer).To(Equal("There are 42 employees."))

		Expect(logs.entries).To(HaveLen(1))
		entry := logs.entries[0]
		Expect(entry.Question).To(Equal("How many employees?"))
		Expect(entry.Answer).To(Equal("There are 42 employees."))
		Expect(entry.VerificationStatus).To(Equal("VERIFIED_CORRECT"))
		Expect(entry.CycleID).To(Equal(result.CycleID))
	})

	It("flattens fragment answers before auditing", func() {
		responder.payload = agent.FragmentsPayload(
			agent.Fragment{Text: "Headcount: "},
			agent.Fragment{Raw: 42},
		)

		result, err := verifier.Run(context.Background(), "Headcount?", handle)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Answer).To(Equal("Headcount: 42"))
		Expect(auditor.answer).To(Equal("Headcount: 42"))
	})

	It("aborts without logging when the responder fails", func() {
		responder.err = errors.New("quota exceeded")

		result, err := verifier.Run(context.Background(), "How many employees?", handle)
		Expect(result).To(BeNil())
		Expect(err).To(HaveOccurred())

		var gatewayErr *agent.GatewayError
		Expect(errors.As(err, &gatewayErr)).To(BeTrue())
		Expect(gatewayErr.Stage).To(Equal(agent.StageResponder))

		Expect(auditor.called).To(BeFalse())
		Expect(logs.entries).To(BeEmpty())
	})

	It("degrades the verdict and still logs when the auditor fails", func() {
		auditor.err = errors.New("timeout")

		result, err := verifier.Run(context.Background(), "How many employees?", handle)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Answer).To(Equal("There are 42 employees."))
		Expect(result.Verdict.Label).To(Equal(agent.VerdictVerificationError))

		Expect(logs.entries).To(HaveLen(1))
		Expect(logs.entries[0].VerificationStatus).To(Equal("VERIFICATION_ERROR"))
	})

	It("records a flagged verdict with its reason", func() {
		auditor.verdict = agent.Verdict{Label: agent.VerdictFlagged, Reason: "sums exclude nulls"}

		result, err := verifier.Run(context.Background(), "Total payroll?", handle)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Verdict.Reason).To(Equal("sums exclude nulls"))
		Expect(logs.entries[0].VerificationStatus).To(Equal("FLAGGED: sums exclude nulls"))
	})

	It("returns the answer with a warning when the log append fails", func() {
		logs.err = errors.New("disk full")

		result, err := verifier.Run(context.Background(), "How many employees?", handle)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Answer).To(Equal("There are 42 employees."))
		Expect(result.LogErr).To(HaveOccurred())
		Expect(result.LogID).To(BeZero())
	})

	It("notifies the cycle observer after logging", func() {
		var observed []agent.Result
		verifier.OnCycle = func(r agent.Result) { observed = append(observed, r) }

		result, err := verifier.Run(context.Background(), "How many employees?", handle)
		Expect(err).NotTo(HaveOccurred())

		Expect(observed).To(HaveLen(1))
		Expect(observed[0].CycleID).To(Equal(result.CycleID))
	})
})

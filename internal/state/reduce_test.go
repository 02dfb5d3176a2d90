package state

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newSnapshot(urls ...string) Snapshot {
	c, err := NewCandidates(urls)
	Expect(err).NotTo(HaveOccurred())
	return New(c, false, 0)
}

var _ = Describe("reducer", func() {

	var s Snapshot

	BeforeEach(func() {
		s = newSnapshot("http://localhost:8000", "http://127.0.0.1:8000")
	})

	It("starts unknown on the first address with the default question limit", func() {
		Expect(s.Status).To(Equal(StatusUnknown))
		Expect(s.Address()).To(Equal("http://localhost:8000"))
		Expect(s.QuestionLimit).To(Equal(DefaultQuestionLimit))
		Expect(s.CanSubmit()).To(BeTrue())
	})

	Describe("probe lifecycle", func() {

		It("goes checking then connected", func() {
			next := Reduce(s, ProbeStarted{Index: 0})
			Expect(next.Status).To(Equal(StatusChecking))
			Expect(s.Status).To(Equal(StatusUnknown), "Reduce must not modify its input")

			next = Reduce(next, ProbeSucceeded{Index: 0})
			Expect(next.Status).To(Equal(StatusConnected))
			Expect(ProbeNeeded(s, next)).To(BeFalse())
		})

		It("sets error and advances exactly one address on failure", func() {
			boom := errors.New("connection refused")
			next := Reduce(Reduce(s, ProbeStarted{Index: 0}), ProbeFailed{Index: 0, Err: boom})
			Expect(next.Status).To(Equal(StatusError))
			Expect(next.LastProbeError).To(MatchError(boom))
			Expect(next.Candidates.Index()).To(Equal(1))
			Expect(next.Address()).To(Equal("http://127.0.0.1:8000"))
			Expect(ProbeNeeded(s, next)).To(BeTrue())
		})

		It("stays on the last address once exhausted", func() {
			next := Reduce(s, ProbeFailed{Index: 0, Err: errors.New("x")})
			last := Reduce(next, ProbeFailed{Index: 1, Err: errors.New("y")})
			Expect(last.Status).To(Equal(StatusError))
			Expect(last.Candidates.Index()).To(Equal(1))
			Expect(last.Candidates.Exhausted()).To(BeTrue())
			Expect(ProbeNeeded(next, last)).To(BeFalse())
		})

		It("ignores results for an address no longer selected", func() {
			moved := Reduce(s, ProbeFailed{Index: 0, Err: errors.New("x")})
			checking := Reduce(moved, ProbeStarted{Index: 1})

			Expect(Reduce(checking, ProbeFailed{Index: 0, Err: errors.New("late")})).To(Equal(checking))
			Expect(Reduce(checking, ProbeSucceeded{Index: 0})).To(Equal(checking))
			Expect(Reduce(checking, ProbeStarted{Index: 0})).To(Equal(checking))
		})

		It("re-arms an exhausted list on retry and success", func() {
			single := newSnapshot("http://localhost:8000")
			failed := Reduce(single, ProbeFailed{Index: 0, Err: errors.New("x")})
			Expect(failed.Candidates.Exhausted()).To(BeTrue())

			retried := Reduce(failed, RetryRequested{})
			Expect(retried.Candidates.Exhausted()).To(BeFalse())
			Expect(retried.Status).To(Equal(StatusError), "retry alone does not change status")

			ok := Reduce(Reduce(retried, ProbeStarted{Index: 0}), ProbeSucceeded{Index: 0})
			Expect(ok.Status).To(Equal(StatusConnected))
			Expect(ok.LastProbeError).To(BeNil())
		})

	})

	Describe("query lifecycle", func() {

		It("caps the question at the limit in runes", func() {
			c, _ := NewCandidates([]string{"http://localhost:8000"})
			small := New(c, false, 5)
			next := Reduce(small, QuestionChanged{Text: "ñññññññ"})
			Expect(next.Query.Question).To(Equal("ñññññ"))

			next = Reduce(s, QuestionChanged{Text: strings.Repeat("a", 250)})
			Expect(next.Query.Question).To(HaveLen(DefaultQuestionLimit))
		})

		It("records an alert without touching the answer or busy flag", func() {
			withAnswer := Reduce(s, SubmitFinished{Answer: "4"})
			next := Reduce(withAnswer, SubmitRejected{Message: "Please enter a question"})
			Expect(next.Alert).To(Equal("Please enter a question"))
			Expect(next.Query.Answer).To(Equal("4"))
			Expect(next.Query.Submitting).To(BeFalse())

			Expect(Reduce(next, AlertDismissed{}).Alert).To(BeEmpty())
		})

		It("disables the trigger while submitting and clears it afterwards", func() {
			busy := Reduce(s, SubmitStarted{})
			Expect(busy.Query.Submitting).To(BeTrue())
			Expect(busy.CanSubmit()).To(BeFalse())

			done := Reduce(busy, SubmitFinished{Answer: "4"})
			Expect(done.Query.Submitting).To(BeFalse())
			Expect(done.Query.Answer).To(Equal("4"))

			failed := Reduce(busy, SubmitFinished{Answer: "Request timed out.", Failed: true})
			Expect(failed.Query.Submitting).To(BeFalse())
		})

		It("clears question and answer together", func() {
			next := Reduce(Reduce(s, QuestionChanged{Text: "What is 2+2?"}), SubmitFinished{Answer: "4"})
			cleared := Reduce(next, InputCleared{})
			Expect(cleared.Query.Question).To(BeEmpty())
			Expect(cleared.Query.Answer).To(BeEmpty())
		})

		It("does not touch connectivity state", func() {
			probed := Reduce(s, ProbeFailed{Index: 0, Err: errors.New("x")})
			next := Reduce(Reduce(probed, SubmitStarted{}), SubmitFinished{Answer: "a", Failed: true})
			Expect(next.Status).To(Equal(probed.Status))
			Expect(next.Candidates).To(Equal(probed.Candidates))
		})

	})

	It("restores the original palette when toggled twice", func() {
		for _, dark := range []bool{false, true} {
			c, _ := NewCandidates([]string{"http://localhost:8000"})
			start := New(c, dark, 0)
			once := Reduce(start, ThemeToggled{})
			Expect(once.DarkMode).To(Equal(!dark))
			Expect(Reduce(once, ThemeToggled{})).To(Equal(start))
		}
	})

})

package state

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("candidate addresses", func() {

	It("rejects an empty list", func() {
		_, err := NewCandidates(nil)
		Expect(err).To(MatchError(ErrNoCandidates))
	})

	It("starts at the preferred address", func() {
		c, err := NewCandidates([]string{"http://localhost:8000", "http://127.0.0.1:8000"})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Current()).To(Equal("http://localhost:8000"))
		Expect(c.Index()).To(BeZero())
		Expect(c.IsLast()).To(BeFalse())
		Expect(c.Exhausted()).To(BeFalse())
	})

	It("does not share the caller's slice", func() {
		urls := []string{"http://a:1", "http://b:2"}
		c, err := NewCandidates(urls)
		Expect(err).NotTo(HaveOccurred())
		urls[0] = "http://changed:3"
		Expect(c.Current()).To(Equal("http://a:1"))
	})

	It("advances by one and saturates at the last address", func() {
		c, _ := NewCandidates([]string{"http://a:1", "http://b:2", "http://c:3"})

		next, ok := c.Advance()
		Expect(ok).To(BeTrue())
		Expect(next.Index()).To(Equal(1))
		Expect(c.Index()).To(BeZero(), "Advance must not modify the receiver")

		next, ok = next.Advance()
		Expect(ok).To(BeTrue())
		Expect(next.Current()).To(Equal("http://c:3"))
		Expect(next.IsLast()).To(BeTrue())
		Expect(next.Exhausted()).To(BeFalse())

		next, ok = next.Advance()
		Expect(ok).To(BeFalse())
		Expect(next.Index()).To(Equal(2))
		Expect(next.Exhausted()).To(BeTrue())
	})

	It("is immediately last with a single address", func() {
		c, _ := NewCandidates([]string{"http://localhost:8000"})
		Expect(c.IsLast()).To(BeTrue())
		next, ok := c.Advance()
		Expect(ok).To(BeFalse())
		Expect(next.Current()).To(Equal("http://localhost:8000"))
	})

})

package state

import (
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("store", func() {

	It("returns the snapshots around each dispatch", func() {
		store := NewStore(newSnapshot("http://a:1", "http://b:2"))

		prev, next := store.Dispatch(ProbeFailed{Index: 0, Err: errors.New("refused")})
		Expect(prev.Candidates.Index()).To(BeZero())
		Expect(next.Candidates.Index()).To(Equal(1))
		Expect(ProbeNeeded(prev, next)).To(BeTrue())
		Expect(store.Snapshot()).To(Equal(next))
	})

	It("serializes concurrent dispatches", func() {
		store := NewStore(newSnapshot("http://a:1"))

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Dispatch(ThemeToggled{})
				_ = store.Snapshot()
			}()
		}
		wg.Wait()

		Expect(store.Snapshot().DarkMode).To(BeFalse(), "an even number of toggles restores the palette")
	})

})

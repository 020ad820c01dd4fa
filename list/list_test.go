package list_test

import (
	"slices"
	"testing"

	"github.com/mgnsk/linked"
	. "github.com/mgnsk/linked/internal/testing"
	"github.com/mgnsk/linked/list"
	. "github.com/onsi/gomega"
)

func TestPushFront(t *testing.T) {
	var l list.List[int]

	g := NewWithT(t)

	l.PushFront(0)
	g.Expect(l.Len()).To(Equal(1))

	l.PushFront(1)
	g.Expect(l.Len()).To(Equal(2))

	g.Expect(slices.Collect(l.All())).To(Equal([]int{1, 0}))
	g.Expect(l.Front().Value).To(Equal(1))
}

func TestPopFront(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		var l list.List[int]

		g := NewWithT(t)

		_, err := l.PopFront()
		g.Expect(err).To(MatchError(linked.ErrEmpty))
		g.Expect(l.NonEmpty()).To(BeFalse())
		g.Expect(l.Front()).To(BeNil())
	})

	t.Run("last element", func(t *testing.T) {
		l := list.New(Letters("a"))

		g := NewWithT(t)

		v, err := l.PopFront()
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal("a"))
		g.Expect(l.NonEmpty()).To(BeFalse())
		g.Expect(l.Len()).To(BeZero())
	})
}

func TestReverse(t *testing.T) {
	l := list.New(Letters("abc"))

	g := NewWithT(t)

	l.Reverse()

	g.Expect(l.Front().Value).To(Equal("c"))
	g.Expect(slices.Collect(l.All())).To(Equal([]string{"c", "b", "a"}))
	g.Expect(l.Len()).To(Equal(3))
}

func TestAllStopsEarly(t *testing.T) {
	l := list.New(Letters("abc"))

	g := NewWithT(t)

	pulled := 0
	g.Expect(Take(Counting(l.All(), &pulled), 2)).To(Equal([]string{"a", "b"}))
	g.Expect(pulled).To(Equal(2))
	g.Expect(slices.Collect(l.All())).To(Equal([]string{"a", "b", "c"}))
}

func TestString(t *testing.T) {
	g := NewWithT(t)

	g.Expect(list.New(Letters("abc")).String()).To(Equal("list.List[a b c]"))
	g.Expect(new(list.List[int]).String()).To(Equal("list.List[]"))
}

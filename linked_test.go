package linked_test

import (
	"slices"
	"strings"

	"github.com/mgnsk/linked"
	. "github.com/mgnsk/linked/internal/testing"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var letters = []TableEntry{
	Entry("empty", ""),
	Entry("one element", "a"),
	Entry("two elements", "ab"),
	Entry("three elements", "abc"),
	Entry("repeated elements", "abab"),
}

var _ = Describe("sequences", func() {
	for _, top := range topologies {
		Describe(top.name, func() {
			DescribeTable("constructing",
				func(s string) {
					l := top.new(Letters(s))

					Expect(l.Len()).To(Equal(len(s)))
					Expect(l.NonEmpty()).To(Equal(s != ""))
					Expect(slices.Collect(l.All())).To(Equal(Split(s)))
				},
				letters...,
			)

			DescribeTable("membership",
				func(s string) {
					l := top.new(Letters(s))

					for v := range Letters(s) {
						Expect(l.Contains(v)).To(BeTrue())
					}
					Expect(l.Contains("z")).To(BeFalse())
				},
				letters...,
			)

			DescribeTable("reversing",
				func(s string) {
					l := top.new(Letters(s))

					l.Reverse()
					Expect(slices.Collect(l.All())).To(Equal(Reversed(s)))
					Expect(l.Len()).To(Equal(len(s)))

					l.Reverse()
					Expect(slices.Collect(l.All())).To(Equal(Split(s)))
				},
				letters...,
			)

			DescribeTable("draining from the front",
				func(s string) {
					l := top.new(Letters(s))

					var values []string
					for l.NonEmpty() {
						v, err := l.PopFront()
						Expect(err).NotTo(HaveOccurred())
						values = append(values, v)
					}

					Expect(values).To(Equal(Split(s)))
					Expect(l.Len()).To(BeZero())
					Expect(slices.Collect(l.All())).To(BeEmpty())
				},
				letters...,
			)

			DescribeTable("pushing to the front",
				func(s string) {
					l := top.new(Letters(s))

					l.PushFront("x")

					Expect(slices.Collect(l.All())).To(Equal(Split("x" + s)))
					Expect(l.Len()).To(Equal(len(s) + 1))
				},
				letters...,
			)

			Specify("popping from an empty sequence fails without changing it", func() {
				l := top.new(Letters(""))

				_, err := l.PopFront()
				Expect(err).To(MatchError(linked.ErrEmpty))
				Expect(l.NonEmpty()).To(BeFalse())
				Expect(l.Len()).To(BeZero())

				l.PushFront("a")
				Expect(slices.Collect(l.All())).To(Equal([]string{"a"}))
			})

			Specify("mixed operations keep a consistent order", func() {
				l := top.new(Letters("abc"))

				l.PushFront("x")
				l.Reverse()
				v, err := l.PopFront()
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(Equal("c"))
				Expect(slices.Collect(l.All())).To(Equal([]string{"b", "a", "x"}))
			})

			if _, ok := top.new(Letters("")).(linked.Deque[string]); ok {
				describeDeque(top)
			}

			if _, ok := top.new(Letters("")).(linked.Ring[string]); ok {
				describeRing(top)
			}
		})
	}
})

func describeDeque(top topology) {
	newDeque := func(s string) linked.Deque[string] {
		return top.new(Letters(s)).(linked.Deque[string])
	}

	DescribeTable("iterating backward",
		func(s string) {
			l := newDeque(s)

			Expect(slices.Collect(l.Backward())).To(Equal(Reversed(s)))

			l.Reverse()
			Expect(slices.Collect(l.Backward())).To(Equal(Split(s)))
		},
		letters...,
	)

	DescribeTable("draining from the back",
		func(s string) {
			l := newDeque(s)

			var values []string
			for l.NonEmpty() {
				v, err := l.PopBack()
				Expect(err).NotTo(HaveOccurred())
				values = append(values, v)
			}

			Expect(values).To(Equal(Reversed(s)))
			Expect(l.Len()).To(BeZero())
		},
		letters...,
	)

	DescribeTable("pushing to the back",
		func(s string) {
			l := newDeque(s)

			l.PushBack("x")

			Expect(slices.Collect(l.All())).To(Equal(Split(s + "x")))
			Expect(slices.Collect(l.Backward())).To(Equal(Reversed(s + "x")))
		},
		letters...,
	)

	Specify("popping from the back of an empty sequence fails", func() {
		l := newDeque("")

		_, err := l.PopBack()
		Expect(err).To(MatchError(linked.ErrEmpty))
		Expect(l.NonEmpty()).To(BeFalse())
	})

	Specify("both ends can be drained alternately", func() {
		l := newDeque("abcde")

		var values []string
		for i := 0; l.NonEmpty(); i++ {
			pop := l.PopFront
			if i%2 == 1 {
				pop = l.PopBack
			}
			v, err := pop()
			Expect(err).NotTo(HaveOccurred())
			values = append(values, v)
		}

		Expect(values).To(Equal([]string{"a", "e", "b", "d", "c"}))
	})
}

func describeRing(top topology) {
	newRing := func(s string) linked.Ring[string] {
		return top.new(Letters(s)).(linked.Ring[string])
	}

	DescribeTable("cycling",
		func(s string) {
			l := newRing(s)

			Expect(Take(l.Cycle(), 3*len(s))).To(Equal(Split(strings.Repeat(s, 3))))
		},
		letters...,
	)

	Specify("cycling an empty ring yields nothing", func() {
		l := newRing("")

		Expect(slices.Collect(l.Cycle())).To(BeEmpty())
	})

	Specify("cycling restarts from the front on every call", func() {
		l := newRing("abc")

		Expect(Take(l.Cycle(), 2)).To(Equal([]string{"a", "b"}))
		Expect(Take(l.Cycle(), 4)).To(Equal([]string{"a", "b", "c", "a"}))
	})
}

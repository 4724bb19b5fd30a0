package greeter_test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/oasis/pkg/greeter"
	testutils "github.com/papercomputeco/oasis/pkg/utils/test"
)

var _ = Describe("Greeter", func() {
	var g *greeter.Greeter

	BeforeEach(func() {
		var err error
		g, err = greeter.New()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("uses the default glyph set and count range", func() {
			Expect(g.Glyphs()).To(Equal(greeter.DefaultGlyphs))
			Expect(g.Glyphs()).To(HaveLen(6))

			minCount, maxCount := g.CountRange()
			Expect(minCount).To(Equal(2))
			Expect(maxCount).To(Equal(5))
		})

		It("rejects a blank default name", func() {
			_, err := greeter.New(greeter.WithDefaultName("  "))
			Expect(err).To(MatchError(greeter.ErrEmptyDefaultName))
		})

		It("rejects an empty glyph set", func() {
			_, err := greeter.New(greeter.WithGlyphs())
			Expect(err).To(MatchError(greeter.ErrEmptyGlyphSet))
		})

		It("rejects multi-character glyphs", func() {
			_, err := greeter.New(greeter.WithGlyphs("👋", "ab"))
			Expect(err).To(MatchError(greeter.ErrInvalidGlyph))
			Expect(err.Error()).To(ContainSubstring(`"ab"`))
		})

		It("rejects an inverted count range", func() {
			_, err := greeter.New(greeter.WithCountRange(5, 2))
			Expect(err).To(MatchError(greeter.ErrInvalidCountRange))
		})

		It("rejects a negative lower bound", func() {
			_, err := greeter.New(greeter.WithCountRange(-1, 2))
			Expect(err).To(MatchError(greeter.ErrInvalidCountRange))
		})

		It("does not alias the caller's glyph slice", func() {
			glyphs := []string{"a", "b"}
			custom, err := greeter.New(greeter.WithGlyphs(glyphs...))
			Expect(err).NotTo(HaveOccurred())

			glyphs[0] = "z"
			Expect(custom.Glyphs()).To(Equal([]string{"a", "b"}))
		})
	})

	Describe("Greeting", func() {
		It("greets a stranger when no name is given", func() {
			Expect(g.Greeting("").Message).To(Equal("Hello, Stranger!"))
		})

		It("greets by name", func() {
			Expect(g.Greeting("Ada").Message).To(Equal("Hello, Ada!"))
		})

		It("keeps a whitespace-only name as given", func() {
			Expect(g.Greeting("  ").Message).To(Equal("Hello,   !"))
		})

		It("does not trim padded names", func() {
			Expect(g.Greeting(" Ada ").Message).To(Equal("Hello,  Ada !"))
			Expect(g.ResolveName(" Ada ")).To(Equal(" Ada "))
		})

		It("honours a custom default name", func() {
			custom, err := greeter.New(greeter.WithDefaultName("Traveller"))
			Expect(err).NotTo(HaveOccurred())
			Expect(custom.Greeting("").Message).To(Equal("Hello, Traveller!"))
		})

		It("always contains the resolved name", func() {
			for _, name := range []string{"Ada", "Grace Hopper", "李", "o'brien"} {
				msg := g.Greeting(name).Message
				Expect(msg).NotTo(BeEmpty())
				Expect(msg).To(ContainSubstring(name))
			}
		})
	})

	Describe("DrawCount", func() {
		It("stays inside the inclusive range", func() {
			for range 500 {
				Expect(g.DrawCount()).To(BeNumerically(">=", 2))
				Expect(g.DrawCount()).To(BeNumerically("<=", 5))
			}
		})

		It("reaches both bounds", func() {
			lowest, err := greeter.New(greeter.WithSource(testutils.NewSequenceSource(0)))
			Expect(err).NotTo(HaveOccurred())
			Expect(lowest.DrawCount()).To(Equal(2))

			highest, err := greeter.New(greeter.WithSource(testutils.NewSequenceSource(3)))
			Expect(err).NotTo(HaveOccurred())
			Expect(highest.DrawCount()).To(Equal(5))
		})

		It("returns the single value of a degenerate range", func() {
			fixed, err := greeter.New(greeter.WithCountRange(3, 3))
			Expect(err).NotTo(HaveOccurred())
			Expect(fixed.DrawCount()).To(Equal(3))
		})
	})

	Describe("GreetingsN", func() {
		It("numbers each greeting from one", func() {
			greetings := g.GreetingsN("Ada", 3)
			Expect(greetings).To(Equal([]greeter.Greeting{
				{Message: "Hello, Ada! Greeting 1"},
				{Message: "Hello, Ada! Greeting 2"},
				{Message: "Hello, Ada! Greeting 3"},
			}))
		})

		It("returns an empty list for a negative count", func() {
			Expect(g.GreetingsN("Ada", -1)).To(BeEmpty())
		})
	})

	Describe("Greetings", func() {
		It("returns between two and five numbered greetings", func() {
			for range 100 {
				greetings := g.Greetings("")
				Expect(len(greetings)).To(BeNumerically(">=", 2))
				Expect(len(greetings)).To(BeNumerically("<=", 5))
				for i, greeting := range greetings {
					Expect(greeting.Message).To(HavePrefix("Hello, Stranger!"))
					Expect(greeting.Message).To(HaveSuffix(fmt.Sprintf("Greeting %d", i+1)))
				}
			}
		})

		It("uses the drawn count", func() {
			seeded, err := greeter.New(greeter.WithSource(testutils.NewSequenceSource(2)))
			Expect(err).NotTo(HaveOccurred())
			Expect(seeded.Greetings("Ada")).To(HaveLen(4))
		})
	})

	Describe("Emoji", func() {
		It("draws from the glyph set", func() {
			for range 100 {
				Expect(greeter.DefaultGlyphs).To(ContainElement(g.Emoji()))
			}
		})

		It("does not always return the same glyph", func() {
			seen := map[string]struct{}{}
			for range 100 {
				seen[g.Emoji()] = struct{}{}
			}
			Expect(len(seen)).To(BeNumerically(">", 1))
		})

		It("selects by index from the injected source", func() {
			seeded, err := greeter.New(greeter.WithSource(testutils.NewSequenceSource(4)))
			Expect(err).NotTo(HaveOccurred())
			Expect(seeded.Emoji()).To(Equal("🤙"))
		})

		It("honours a custom glyph set", func() {
			custom, err := greeter.New(greeter.WithGlyphs("★"))
			Expect(err).NotTo(HaveOccurred())
			Expect(custom.Emoji()).To(Equal("★"))
		})
	})

	Describe("Emojis", func() {
		It("returns between two and five glyphs from the set", func() {
			for range 100 {
				emojis := g.Emojis()
				Expect(len(emojis)).To(BeNumerically(">=", 2))
				Expect(len(emojis)).To(BeNumerically("<=", 5))
				for _, e := range emojis {
					Expect(greeter.DefaultGlyphs).To(ContainElement(e))
				}
			}
		})

		It("permits duplicates", func() {
			seeded, err := greeter.New(greeter.WithSource(testutils.NewSequenceSource(0)))
			Expect(err).NotTo(HaveOccurred())
			Expect(seeded.EmojisN(3)).To(Equal([]string{"👋", "👋", "👋"}))
		})
	})

	Describe("concurrent use", func() {
		It("serializes an injected generator", func() {
			seeded, err := greeter.New(greeter.WithSource(rand.New(rand.NewPCG(1, 2))))
			Expect(err).NotTo(HaveOccurred())

			var wg sync.WaitGroup
			for range 8 {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					for range 50 {
						for _, e := range seeded.Emojis() {
							Expect(strings.Join(greeter.DefaultGlyphs, "")).To(ContainSubstring(e))
						}
					}
				}()
			}
			wg.Wait()
		})
	})
})

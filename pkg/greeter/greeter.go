// Package greeter builds the greetings and emoji served by the oasis API.
//
// A Greeter is immutable after construction and safe for concurrent use.
// Randomness comes from an injectable Source so counts and glyph selections
// can be made deterministic in tests.
package greeter

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode/utf8"
)

const (
	// DefaultName is used when a caller does not supply a name.
	DefaultName = "Stranger"

	// DefaultMinCount and DefaultMaxCount bound the inclusive range used for
	// the number of greetings and emoji in list responses.
	DefaultMinCount = 2
	DefaultMaxCount = 5
)

// DefaultGlyphs is the candidate glyph set used when none is configured.
var DefaultGlyphs = []string{"👋", "👍", "👏", "🙏", "🤙", "🤘"}

var (
	ErrEmptyDefaultName  = errors.New("default name must not be empty")
	ErrEmptyGlyphSet     = errors.New("glyph set must not be empty")
	ErrInvalidGlyph      = errors.New("glyph must be a single character")
	ErrInvalidCountRange = errors.New("invalid count range")
)

// Greeting is a single greeting message.
type Greeting struct {
	Message string `json:"message"`
}

// Source is a source of uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the runtime's concurrency-safe generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// lockedSource serializes access to a source that is not safe for
// concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// Greeter produces greetings and emoji.
type Greeter struct {
	defaultName string
	glyphs      []string
	minCount    int
	maxCount    int
	src         Source
}

// New creates a Greeter. Without options it uses DefaultName, DefaultGlyphs,
// the [DefaultMinCount, DefaultMaxCount] range and the global random source.
func New(opts ...Option) (*Greeter, error) {
	cfg := &config{
		defaultName: DefaultName,
		glyphs:      DefaultGlyphs,
		minCount:    DefaultMinCount,
		maxCount:    DefaultMaxCount,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if strings.TrimSpace(cfg.defaultName) == "" {
		return nil, ErrEmptyDefaultName
	}
	if len(cfg.glyphs) == 0 {
		return nil, ErrEmptyGlyphSet
	}
	for _, g := range cfg.glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidGlyph, g)
		}
	}
	if cfg.minCount < 0 || cfg.minCount > cfg.maxCount {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidCountRange, cfg.minCount, cfg.maxCount)
	}

	var src Source = globalSource{}
	if cfg.src != nil {
		src = &lockedSource{src: cfg.src}
	}

	glyphs := make([]string, len(cfg.glyphs))
	copy(glyphs, cfg.glyphs)

	return &Greeter{
		defaultName: strings.TrimSpace(cfg.defaultName),
		glyphs:      glyphs,
		minCount:    cfg.minCount,
		maxCount:    cfg.maxCount,
		src:         src,
	}, nil
}

// Glyphs returns a copy of the candidate glyph set.
func (g *Greeter) Glyphs() []string {
	out := make([]string, len(g.glyphs))
	copy(out, g.glyphs)
	return out
}

// CountRange returns the inclusive bounds used by DrawCount.
func (g *Greeter) CountRange() (minCount, maxCount int) {
	return g.minCount, g.maxCount
}

// ResolveName returns name unchanged, or the default name when it is empty.
// Whitespace is part of the name.
func (g *Greeter) ResolveName(name string) string {
	if name == "" {
		return g.defaultName
	}
	return name
}

// Greeting returns "Hello, {name}!".
func (g *Greeter) Greeting(name string) Greeting {
	return Greeting{Message: fmt.Sprintf("Hello, %s!", g.ResolveName(name))}
}

// DrawCount draws a count uniformly from the inclusive configured range.
func (g *Greeter) DrawCount() int {
	return g.minCount + g.src.IntN(g.maxCount-g.minCount+1)
}

// GreetingsN returns n greetings, each suffixed with its 1-based position.
func (g *Greeter) GreetingsN(name string, n int) []Greeting {
	if n < 0 {
		n = 0
	}
	resolved := g.ResolveName(name)
	greetings := make([]Greeting, n)
	for i := range greetings {
		greetings[i] = Greeting{Message: fmt.Sprintf("Hello, %s! Greeting %d", resolved, i+1)}
	}
	return greetings
}

// Greetings returns a randomly sized list of greetings.
func (g *Greeter) Greetings(name string) []Greeting {
	return g.GreetingsN(name, g.DrawCount())
}

// Emoji draws one glyph uniformly from the glyph set.
func (g *Greeter) Emoji() string {
	return g.glyphs[g.src.IntN(len(g.glyphs))]
}

// EmojisN returns n independent glyph draws. Duplicates are permitted.
func (g *Greeter) EmojisN(n int) []string {
	if n < 0 {
		n = 0
	}
	emojis := make([]string, n)
	for i := range emojis {
		emojis[i] = g.Emoji()
	}
	return emojis
}

// Emojis returns a randomly sized list of glyphs.
func (g *Greeter) Emojis() []string {
	return g.EmojisN(g.DrawCount())
}

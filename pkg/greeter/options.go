package greeter

type config struct {
	defaultName string
	glyphs      []string
	minCount    int
	maxCount    int
	src         Source
}

// Option configures a Greeter created with New.
type Option func(*config)

// WithDefaultName sets the name used when a caller does not supply one.
func WithDefaultName(name string) Option {
	return func(c *config) {
		c.defaultName = name
	}
}

// WithGlyphs replaces the candidate glyph set. Each glyph must be a single
// character.
func WithGlyphs(glyphs ...string) Option {
	return func(c *config) {
		c.glyphs = glyphs
	}
}

// WithCountRange sets the inclusive range for list sizes.
func WithCountRange(minCount, maxCount int) Option {
	return func(c *config) {
		c.minCount = minCount
		c.maxCount = maxCount
	}
}

// WithSource injects the random source. Access is serialized, so a
// non-thread-safe generator such as rand.New(rand.NewPCG(1, 2)) is fine.
func WithSource(src Source) Option {
	return func(c *config) {
		c.src = src
	}
}

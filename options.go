package smartcalc

// Option is an option used when creating a Calculator.
type Option interface {
	calcOption()
}

type (
	lenopt   int
	depthopt int
)

func (lenopt) calcOption()   {}
func (depthopt) calcOption() {}

// MaxLength limits the length in bytes of the text a Calculator evaluates,
// measured after variable substitution. Longer texts fail with
// AllocationFailure. A limit of zero or less means no limit.
func MaxLength(n int) Option {
	return lenopt(n)
}

// MaxDepth limits the number of entries on either evaluation stack.
// Evaluations that would exceed it fail with AllocationFailure. A limit of
// zero or less means no limit.
func MaxDepth(n int) Option {
	return depthopt(n)
}

const (
	// DefaultMaxLength is the text length limit of a Calculator created
	// without a MaxLength option.
	DefaultMaxLength = 1 << 20
	// DefaultMaxDepth is the stack depth limit of a Calculator created
	// without a MaxDepth option.
	DefaultMaxDepth = 1 << 16
)

// NewCalculator creates a calculator. Options are applied in order, so later
// options override earlier ones.
func NewCalculator(opts ...Option) *Calculator {
	c := Calculator{maxlen: DefaultMaxLength, maxdepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case lenopt:
			c.maxlen = int(opt)
		case depthopt:
			c.maxdepth = int(opt)
		default:
			panic("smartcalc: unknown option type")
		}
	}
	return &c
}

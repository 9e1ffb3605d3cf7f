// Package gridglueerr defines the enumerated error taxonomy raised by the
// nmf, block, topology, numbering and mesh packages. Every error
// that escapes those packages is a *Error carrying a Kind and a
// human-readable context string naming the file/block/entry that
// triggered it; no bare strings cross a package boundary as an error.
package gridglueerr

import "fmt"

// Kind enumerates the fatal error categories a conversion can raise.
type Kind int

const (
	// Parser errors (nmf package)
	IOError Kind = iota
	MalformedHeader
	UnknownBC
	BlockCountMismatch
	DimensionTooSmall
	RangeOutOfBounds
	AreaMismatch

	// Resolver errors (topology package)
	DuplicateInterface
	OrientationInconsistent
	CounterpartNotFound

	// Consistency errors (mesh/plot3d packages)
	DimensionInconsistent
	NonManifold
	IndexCollision
)

var kindNames = map[Kind]string{
	IOError:                 "IOError",
	MalformedHeader:         "MalformedHeader",
	UnknownBC:               "UnknownBC",
	BlockCountMismatch:      "BlockCountMismatch",
	DimensionTooSmall:       "DimensionTooSmall",
	RangeOutOfBounds:        "RangeOutOfBounds",
	AreaMismatch:            "AreaMismatch",
	DuplicateInterface:      "DuplicateInterface",
	OrientationInconsistent: "OrientationInconsistent",
	CounterpartNotFound:     "CounterpartNotFound",
	DimensionInconsistent:   "DimensionInconsistent",
	NonManifold:             "NonManifold",
	IndexCollision:          "IndexCollision",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownErrorKind"
}

// Error is the single error type raised by every stage of the conversion.
// It always carries a Kind and a Context describing which file, block or
// entry triggered it; Err, when non-nil, wraps the underlying cause.
type Error struct {
	Kind    Kind
	Context string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a *Error with no wrapped cause.
func New(kind Kind, context string) *Error {
	return &Error{Kind: kind, Context: context}
}

// Wrap creates a *Error wrapping an underlying error.
func Wrap(kind Kind, context string, err error) *Error {
	return &Error{Kind: kind, Context: context, Err: err}
}

// Newf creates a *Error with a formatted context string.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Context: fmt.Sprintf(format, args...)}
}

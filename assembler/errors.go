package assembler

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by the assembler wraps exactly one of
// these, and none of them is recoverable.
var (
	// ErrGrammar covers unknown token types, misplaced tokens and unknown directives.
	ErrGrammar = errors.New("grammar error")
	// ErrSemantic covers unknown mnemonics, undefined labels and bad operands.
	ErrSemantic = errors.New("semantic error")
	// ErrRange covers immediates and branch distances outside their field.
	ErrRange = errors.New("range error")
	// ErrAlignment is a range error for distances that are not a multiple of 4.
	ErrAlignment = fmt.Errorf("%w: misaligned", ErrRange)
)

func grammarf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrGrammar, fmt.Sprintf(format, args...))
}

func semanticf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSemantic, fmt.Sprintf(format, args...))
}

func rangef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRange, fmt.Sprintf(format, args...))
}

func alignf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAlignment, fmt.Sprintf(format, args...))
}

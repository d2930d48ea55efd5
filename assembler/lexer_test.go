package assembler_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Urethramancer/a64/assembler"
)

func tok(tt assembler.TokenType, lexeme string) assembler.Token {
	return assembler.Token{Type: tt, Lexeme: lexeme}
}

var newline = assembler.Token{Type: assembler.TokenNewline}

func TestLex(t *testing.T) {
	tests := []struct {
		name, src string
		want      []assembler.Token
	}{
		{"ThreeRegisters", "add x0, x1, xzr", []assembler.Token{
			tok(assembler.TokenID, "add"),
			tok(assembler.TokenReg, "x0"), tok(assembler.TokenComma, ","),
			tok(assembler.TokenReg, "x1"), tok(assembler.TokenComma, ","),
			tok(assembler.TokenZReg, "xzr"),
		}},
		{"Memory", "stur x3, [sp, #-8]", []assembler.Token{
			tok(assembler.TokenID, "stur"),
			tok(assembler.TokenReg, "x3"), tok(assembler.TokenComma, ","),
			tok(assembler.TokenLBrack, "["), tok(assembler.TokenID, "sp"),
			tok(assembler.TokenComma, ","), tok(assembler.TokenInt, "-8"),
			tok(assembler.TokenRBrack, "]"),
		}},
		{"Conditional", "b.ne loop", []assembler.Token{
			tok(assembler.TokenID, "b"), tok(assembler.TokenDotID, ".ne"),
			tok(assembler.TokenID, "loop"),
		}},
		{"LabelAndDirective", "loop:\n.8byte 0x10\n", []assembler.Token{
			tok(assembler.TokenLabel, "loop:"), newline,
			tok(assembler.TokenDotID, ".8byte"), tok(assembler.TokenHexInt, "0x10"), newline,
		}},
		{"BlankLinesKeepNumbering", "\n; note\nbr x1", []assembler.Token{
			newline, newline,
			tok(assembler.TokenID, "br"), tok(assembler.TokenReg, "x1"),
		}},
	}
	for _, tc := range tests {
		got, err := assembler.Lex(tc.src)
		if err != nil {
			t.Errorf("[%s] %v", tc.name, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("[%s]\ngot  %v\nwant %v", tc.name, got, tc.want)
		}
	}
}

func TestLexErrors(t *testing.T) {
	for _, src := range []string{
		"add x0, [x1, x2]",
		"ldur x0, [x1, #1, #2]",
		"add x0, x1, x2, x3",
		"1add x0",
	} {
		if _, err := assembler.Lex(src); !errors.Is(err, assembler.ErrGrammar) {
			t.Errorf("%q: expected a grammar error, got %v", src, err)
		}
	}
}

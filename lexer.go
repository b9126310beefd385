package cubealg

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// tokenKind classifies a lexical unit of an expression.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLBracket
	tokRBracket
	tokComma
	tokColon
	tokMove
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokComma:
		return "','"
	case tokColon:
		return "':'"
	case tokMove:
		return "move"
	default:
		return "unknown"
	}
}

// token is a single lexical unit. Pos is the byte offset where it starts.
type token struct {
	kind tokenKind
	text string
	move Move
	pos  int
}

func isPunct(r rune) bool {
	return r == '[' || r == ']' || r == ',' || r == ':'
}

// lex splits an expression into tokens, always ending with tokEOF.
// A move word is a maximal run of characters that are neither whitespace nor
// punctuation, so "RU" is one (invalid) word rather than two moves.
func lex(src string) ([]token, error) {
	var toks []token

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		switch r {
		case '[':
			toks = append(toks, token{kind: tokLBracket, text: "[", pos: i})
			i += size
			continue
		case ']':
			toks = append(toks, token{kind: tokRBracket, text: "]", pos: i})
			i += size
			continue
		case ',':
			toks = append(toks, token{kind: tokComma, text: ",", pos: i})
			i += size
			continue
		case ':':
			toks = append(toks, token{kind: tokColon, text: ":", pos: i})
			i += size
			continue
		}

		start := i
		for i < len(src) {
			r, size = utf8.DecodeRuneInString(src[i:])
			if unicode.IsSpace(r) || isPunct(r) {
				break
			}
			i += size
		}

		word := src[start:i]
		m, err := ParseMove(word)
		if err != nil {
			return nil, &ParseError{
				Input: src,
				Pos:   start,
				Msg:   fmt.Sprintf("unknown move %q", word),
				Err:   ErrInvalidToken,
			}
		}
		toks = append(toks, token{kind: tokMove, text: word, move: m, pos: start})
	}

	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

package scicalc

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ============================================================
// Tokens
// ============================================================

// TokenKind identifies the type of a lexed token.
type TokenKind int

const (
	TokEOF      TokenKind = iota // End of input
	TokNumber                    // Numeric literal or resolved constant
	TokPlus                      // +
	TokMinus                     // -
	TokMultiply                  // *
	TokDivide                    // /
	TokPower                     // **
	TokLParen                    // (
	TokRParen                    // )
	TokVariable                  // x
	TokFunc                      // Whitelisted function name
)

// Token is a single lexeme. Value is set for TokNumber, Name for TokFunc.
// Pos is the 1-based column where the token starts.
type Token struct {
	Kind  TokenKind
	Value float64
	Name  string
	Pos   int
}

func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "end of input"
	case TokNumber:
		return "number"
	case TokPlus:
		return "'+'"
	case TokMinus:
		return "'-'"
	case TokMultiply:
		return "'*'"
	case TokDivide:
		return "'/'"
	case TokPower:
		return "'**'"
	case TokLParen:
		return "'('"
	case TokRParen:
		return "')'"
	case TokVariable:
		return "variable"
	case TokFunc:
		return "function"
	default:
		return "token"
	}
}

// constants resolvable by name, with or without a "Math." prefix.
var constants = map[string]float64{
	"PI":   math.Pi,
	"E":    math.E,
	"LN2":  math.Ln2,
	"LN10": math.Ln10,
}

// ============================================================
// Tokenizer
// ============================================================

// Tokenize lexes text into a token stream terminated by TokEOF. When
// allowVariable is false the variable x and all function names are
// rejected; constants are always accepted.
func Tokenize(text string, allowVariable bool) ([]Token, error) {
	l := lexer{src: text, allowVariable: allowVariable}
	return l.run()
}

type lexer struct {
	src           string
	i             int // byte offset
	col           int // 1-based column of src[i]
	allowVariable bool
	tokens        []Token
}

func (l *lexer) run() ([]Token, error) {
	l.col = 1
	for l.i < len(l.src) {
		ch, size := utf8.DecodeRuneInString(l.src[l.i:])
		if unicode.IsSpace(ch) {
			l.i += size
			l.col++
			continue
		}

		start := l.col
		switch {
		case isDigit(ch) || (ch == '.' && isDigit(l.peekByte(1))):
			if err := l.lexNumber(); err != nil {
				return nil, err
			}
		case ch == '*' && l.peekByte(1) == '*':
			l.emit(Token{Kind: TokPower, Pos: start})
			l.advance(2)
		case ch == '+':
			l.single(TokPlus)
		case ch == '-':
			l.single(TokMinus)
		case ch == '*':
			l.single(TokMultiply)
		case ch == '/':
			l.single(TokDivide)
		case ch == '(':
			l.single(TokLParen)
		case ch == ')':
			l.single(TokRParen)
		case l.allowVariable && ch == 'x' && !isIdentTail(l.peekByte(1)):
			l.single(TokVariable)
		case isLetter(ch):
			if err := l.lexIdent(); err != nil {
				return nil, err
			}
		default:
			return nil, newError(KindLex, CodeUnexpectedCharacter, start, "unexpected character %q", ch)
		}
	}

	l.emit(Token{Kind: TokEOF, Pos: l.col})
	return l.tokens, nil
}

// lexNumber reads digits, dots and an exponent. A sign is part of the number
// only directly after e or E.
func (l *lexer) lexNumber() error {
	start, from := l.col, l.i
	for l.i < len(l.src) {
		c := l.src[l.i]
		if c == '+' || c == '-' {
			if l.i == from || (l.src[l.i-1] != 'e' && l.src[l.i-1] != 'E') {
				break
			}
		} else if !isDigit(rune(c)) && c != '.' && c != 'e' && c != 'E' {
			break
		}
		l.advance(1)
	}

	lit := l.src[from:l.i]
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return newError(KindLex, CodeInvalidNumber, start, "invalid number %q", lit)
	}

	l.emit(Token{Kind: TokNumber, Value: v, Pos: start})
	return nil
}

// lexIdent reads an identifier and resolves it to a constant or, in
// variable mode, a whitelisted function.
func (l *lexer) lexIdent() error {
	start, from := l.col, l.i
	for l.i < len(l.src) && (isIdentTail(l.src[l.i]) || l.src[l.i] == '.') {
		l.advance(1)
	}

	ident := l.src[from:l.i]
	name := strings.TrimPrefix(ident, "Math.")
	if v, ok := constants[name]; ok {
		l.emit(Token{Kind: TokNumber, Value: v, Pos: start})
		return nil
	}
	if l.allowVariable {
		if _, ok := functions[name]; ok {
			l.emit(Token{Kind: TokFunc, Name: name, Pos: start})
			return nil
		}
	}

	return newError(KindLex, CodeUnknownIdentifier, start, "unknown identifier %q", ident)
}

func (l *lexer) single(kind TokenKind) {
	l.emit(Token{Kind: kind, Pos: l.col})
	l.advance(1)
}

func (l *lexer) emit(t Token) { l.tokens = append(l.tokens, t) }

func (l *lexer) advance(n int) {
	l.i += n
	l.col += n
}

// peekByte returns the byte at offset n from the cursor, or 0 past the end.
func (l *lexer) peekByte(n int) byte {
	if l.i+n < len(l.src) {
		return l.src[l.i+n]
	}
	return 0
}

func isDigit[T rune | byte](c T) bool { return c >= '0' && c <= '9' }

func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

func isIdentTail(c byte) bool {
	return isLetter(rune(c)) || isDigit(c) || c == '_'
}

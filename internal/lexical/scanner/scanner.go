package scanner

import "bytes"

// -----------------------
// Scanner Types definition
// -----------------------

type Kind int

// Token is one classified lexeme. Value holds the exact source bytes the
// token was derived from, except string literals which hold only the body
// between the quotes.
type Token struct {
	ID    Kind
	Value []byte
}

func NewToken(id Kind, val []byte) Token {
	return Token{
		ID:    id,
		Value: val,
	}
}

// Scanner walks the input once, left to right, classifying each maximal
// lexeme and accumulating a cleaned copy of the input with comments
// stripped. One Scanner serves exactly one input; it is not reusable.
type Scanner struct {
	input   []byte
	cursor  int
	tokens  []Token
	cleaned bytes.Buffer
	spent   bool
}

func New(input []byte) *Scanner {
	return &Scanner{
		input: input,
	}
}

// Scan tokenizes input with a fresh one-shot scanner and returns the token
// sequence along with the cleaned text.
func Scan(input []byte) ([]Token, []byte) {
	return New(input).Tokenize()
}

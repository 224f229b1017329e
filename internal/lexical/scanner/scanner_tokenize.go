package scanner

import "log"

// Tokenize consumes the whole input in a single pass and returns the token
// sequence plus the cleaned text (comments removed, string literals
// re-wrapped in quotes, everything else in original order).
//
// Exactly one branch fires per iteration, in a fixed priority order:
// whitespace, block comment, line comment, directive, word, number,
// two-character operator, one-character operator, separator, string
// literal, unknown. Every sub-scan returns an explicit end offset and the
// loop sets the cursor to exactly that offset, so no branch can skip or
// re-read a byte.
//
// Tokenize never fails: every byte of arbitrary input maps to a
// whitespace skip, a comment skip, a token, or the Unknown category.
func (s *Scanner) Tokenize() ([]Token, []byte) {
	if s.spent {
		log.Printf("scanner ran twice; each scanner instance serves exactly one scan\n")
		panic("scanner ran twice; each scanner instance serves exactly one scan")
	}
	s.spent = true

	for s.cursor < len(s.input) {
		ch := s.input[s.cursor]

		switch {
		case isWhitespace(ch):
			s.cleaned.WriteByte(ch)
			s.cursor++

		case ch == '/' && s.peek() == '*':
			s.cursor = blockCommentEnd(s.input, s.cursor+2)

		case ch == '/' && s.peek() == '/':
			// The terminating newline is left for the whitespace branch,
			// so line structure survives in the cleaned text.
			s.cursor = lineCommentEnd(s.input, s.cursor+2)

		case ch == '#':
			// A directive is '#' plus the following alphanumeric run,
			// taken as one atomic lexeme so that "#include" matches the
			// keyword table spelling.
			end := wordEnd(s.input, s.cursor+1)
			s.emit(Keyword, s.input[s.cursor:end])
			s.cursor = end

		case isAlpha(ch):
			end := wordEnd(s.input, s.cursor)
			word := s.input[s.cursor:end]
			if IsKeyword(word) {
				s.emit(Keyword, word)
			} else {
				s.emit(Identifier, word)
			}
			s.cursor = end

		case isDigit(ch):
			end := numberEnd(s.input, s.cursor)
			s.emit(Literal, s.input[s.cursor:end])
			s.cursor = end

		case ch == '<' && s.peek() == '<':
			s.emit(Operator, s.input[s.cursor:s.cursor+2])
			s.cursor += 2

		case ch == '>' && s.peek() == '>':
			s.emit(Operator, s.input[s.cursor:s.cursor+2])
			s.cursor += 2

		case isOperator(ch):
			s.emit(Operator, s.input[s.cursor:s.cursor+1])
			s.cursor++

		case isSeparator(ch):
			s.emit(Separator, s.input[s.cursor:s.cursor+1])
			s.cursor++

		case ch == '"':
			body, end := stringLiteralEnd(s.input, s.cursor+1)
			if len(body) > 0 {
				s.tokens = append(s.tokens, NewToken(Literal, body))
			}
			s.cleaned.WriteByte('"')
			s.cleaned.Write(body)
			s.cleaned.WriteByte('"')
			s.cursor = end

		default:
			s.emit(Unknown, s.input[s.cursor:s.cursor+1])
			s.cursor++
		}
	}

	return s.tokens, s.cleaned.Bytes()
}

// emit appends one token and mirrors its lexeme into the cleaned text.
func (s *Scanner) emit(id Kind, val []byte) {
	s.tokens = append(s.tokens, NewToken(id, val))
	s.cleaned.Write(val)
}

// peek returns the byte after the cursor, or 0 at the end of input.
func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.input) {
		return 0
	}
	return s.input[s.cursor+1]
}

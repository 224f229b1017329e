package scanner

// Sub-scans used by the main tokenize loop. Each one returns the offset one
// past the last consumed byte; the caller sets the cursor to exactly that
// offset.

// wordEnd returns the end of the maximal alphanumeric run starting at
// 'start'. Underscore is not part of a word. A run cut short by the end of
// input is still a complete word.
func wordEnd(input []byte, start int) int {
	end := start
	for end < len(input) && isAlphaNumeric(input[end]) {
		end++
	}
	return end
}

// numberEnd returns the end of a run of digits holding at most one decimal
// point. A second '.' terminates the run without being consumed, so the
// main loop reprocesses it on the next iteration.
func numberEnd(input []byte, start int) int {
	end := start
	hasDecimal := false

	for end < len(input) {
		ch := input[end]

		if isDigit(ch) {
			end++
			continue
		}

		if ch == '.' && !hasDecimal {
			hasDecimal = true
			end++
			continue
		}

		break
	}

	return end
}

// stringLiteralEnd collects the body of a string literal whose opening
// quote sits just before 'start'. A backslash is consumed and the byte
// after it is taken literally, so an escaped quote does not close the
// literal. The closing quote is consumed but excluded from the body. Input
// ending before a closing quote yields the partial body collected so far;
// an unterminated literal is never an error.
func stringLiteralEnd(input []byte, start int) (body []byte, end int) {
	pos := start

	for pos < len(input) {
		switch input[pos] {
		case '"':
			return body, pos + 1

		case '\\':
			pos++
			if pos < len(input) {
				body = append(body, input[pos])
				pos++
			}

		default:
			body = append(body, input[pos])
			pos++
		}
	}

	return body, pos
}

// blockCommentEnd returns the offset just past the terminating "*/", or
// the end of input when the comment never terminates.
func blockCommentEnd(input []byte, start int) int {
	pos := start

	for pos < len(input) {
		if input[pos] == '*' && pos+1 < len(input) && input[pos+1] == '/' {
			return pos + 2
		}
		pos++
	}

	return pos
}

// lineCommentEnd returns the offset of the newline terminating a "//"
// comment. The newline itself is not consumed. A comment on the last line
// runs to the end of input.
func lineCommentEnd(input []byte, start int) int {
	pos := start

	for pos < len(input) && input[pos] != '\n' {
		pos++
	}

	return pos
}

// ------------------------
// Character classification
// ------------------------

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '=', '<', '>', '^', '/':
		return true
	}
	return false
}

func isSeparator(ch byte) bool {
	switch ch {
	case '(', ')', '{', '}', ',', ';':
		return true
	}
	return false
}

package scanner

// ------------
// Scanner Kind
// ------------

const (
	Keyword Kind = iota
	Identifier
	Literal
	Operator
	Separator
	Unknown
)

// Kinds lists every token category in its natural display order.
var Kinds = [...]Kind{
	Keyword,
	Identifier,
	Literal,
	Operator,
	Separator,
	Unknown,
}

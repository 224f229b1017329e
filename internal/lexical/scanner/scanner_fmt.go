package scanner

import "fmt"

func (k Kind) String() string {
	switch k {
	case Keyword:
		return "KEYWORD"
	case Identifier:
		return "IDENTIFIER"
	case Literal:
		return "LITERAL"
	case Operator:
		return "OPERATOR"
	case Separator:
		return "SEPARATOR"
	case Unknown:
		return "UNKNOWN"
	default:
		return "UNDEFINED"
	}
}

func (t Token) String() string {
	return fmt.Sprintf("{ \"ID\": \"%s\", \"Value\": %q }", t.ID, t.Value)
}

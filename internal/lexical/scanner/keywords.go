package scanner

// Keyword table for the toy grammar: language keywords, builtin type
// names, and a few standard-library names treated as keywords. Fixed at
// startup and read-only thereafter.
var keywords = map[string]struct{}{
	"int":       {},
	"float":     {},
	"if":        {},
	"else":      {},
	"while":     {},
	"return":    {},
	"string":    {},
	"do":        {},
	"void":      {},
	"cout":      {},
	"endl":      {},
	"for":       {},
	"#include":  {},
	"using":     {},
	"namespace": {},
	"std":       {},
	"iostream":  {},
	"fstream":   {},
	"vector":    {},
}

// IsKeyword reports whether word is an exact spelling from the keyword
// table.
func IsKeyword(word []byte) bool {
	_, ok := keywords[string(word)]
	return ok
}

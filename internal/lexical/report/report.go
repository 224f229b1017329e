// Package report consumes a token sequence and prepares it for display:
// grouping distinct lexemes by category and rendering the result as a
// fixed-width table, a flat listing, or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/Oreo-PopTart/CPSC-323-Project-1/internal/lexical/scanner"
)

// Group holds the distinct lexemes seen for one token category. Values are
// sorted; duplicates within the category collapse, duplicates across
// categories survive.
type Group struct {
	Kind   scanner.Kind
	Values []string
}

// GroupTokens groups a token sequence by category. Categories come back in
// their natural enum order; categories with no tokens are omitted.
func GroupTokens(tokens []scanner.Token) []Group {
	sets := make(map[scanner.Kind]map[string]struct{})

	for _, tok := range tokens {
		set := sets[tok.ID]
		if set == nil {
			set = make(map[string]struct{})
			sets[tok.ID] = set
		}
		set[string(tok.Value)] = struct{}{}
	}

	var groups []Group
	for _, kind := range scanner.Kinds {
		set := sets[kind]
		if len(set) == 0 {
			continue
		}

		groups = append(groups, Group{
			Kind:   kind,
			Values: slices.Sorted(maps.Keys(set)),
		})
	}

	return groups
}

// WriteTable renders groups as a left-aligned two-column table: a header
// line, a 35-dash separator, then one row per category with its values
// separated by three spaces.
func WriteTable(w io.Writer, groups []Group) error {
	if _, err := fmt.Fprintf(w, "%-15s%-15s\n", "Category", "Tokens"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("-", 35)); err != nil {
		return err
	}

	for _, group := range groups {
		if _, err := fmt.Fprintf(w, "%-15s", group.Kind); err != nil {
			return err
		}

		for _, value := range group.Values {
			if _, err := fmt.Fprintf(w, "%s   ", value); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// WriteList renders every token in sequence order, one per line.
func WriteList(w io.Writer, tokens []scanner.Token) error {
	for _, tok := range tokens {
		_, err := fmt.Fprintf(w, "Type: %s, Value: %s\n", tok.ID, tok.Value)
		if err != nil {
			return err
		}
	}

	return nil
}

type jsonGroup struct {
	Category string   `json:"category"`
	Tokens   []string `json:"tokens"`
}

type jsonDocument struct {
	Cleaned string      `json:"cleaned"`
	Groups  []jsonGroup `json:"groups"`
}

// WriteJSON renders the grouped tokens and the cleaned text as an indented
// JSON document for machine consumption.
func WriteJSON(w io.Writer, cleaned []byte, groups []Group) error {
	doc := jsonDocument{
		Cleaned: string(cleaned),
	}

	for _, group := range groups {
		doc.Groups = append(doc.Groups, jsonGroup{
			Category: group.Kind.String(),
			Tokens:   group.Values,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(doc)
}

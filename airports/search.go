package airports

import "strings"

type matchMode int

const (
	matchExact matchMode = iota
	matchPrefix
	matchSuffix
	matchContains
)

// pattern is a parsed wildcard term. A leading '*' matches any prefix and a
// trailing '*' any suffix; stars elsewhere are literal.
type pattern struct {
	mode matchMode
	text string
}

func parsePattern(term string) (pattern, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return pattern{}, false
	}

	leading := strings.HasPrefix(term, "*")
	text := strings.TrimPrefix(term, "*")
	trailing := strings.HasSuffix(text, "*")
	text = strings.TrimSuffix(text, "*")

	p := pattern{text: strings.ToUpper(text)}
	switch {
	case leading && (trailing || text == ""):
		p.mode = matchContains
	case leading:
		p.mode = matchSuffix
	case trailing:
		p.mode = matchPrefix
	default:
		p.mode = matchExact
	}
	return p, true
}

func (p pattern) matches(field string) bool {
	field = strings.ToUpper(strings.TrimSpace(field))
	switch p.mode {
	case matchPrefix:
		return strings.HasPrefix(field, p.text)
	case matchSuffix:
		return strings.HasSuffix(field, p.text)
	case matchContains:
		return strings.Contains(field, p.text)
	default:
		return field == p.text
	}
}

// matchesAirport applies the pattern to every searchable field; any hit counts.
func (p pattern) matchesAirport(a *Airport) bool {
	return p.matches(a.Name) ||
		p.matches(a.IATACode) ||
		p.matches(a.Ident) ||
		p.matches(a.Municipality) ||
		p.matches(a.ISORegion)
}

// Search returns every airport whose name, IATA code, ident, municipality or
// ISO region matches term. Results follow table order and list each airport
// once even when it is stored under both of its codes. A blank term matches
// nothing.
func (t *Table) Search(term string) []Airport {
	p, ok := parsePattern(term)
	if !ok {
		return nil
	}

	var results []Airport
	seen := make(map[*Airport]struct{})
	for _, key := range t.keys {
		a := t.byKey[key]
		if _, dup := seen[a]; dup {
			continue
		}
		if p.matchesAirport(a) {
			seen[a] = struct{}{}
			results = append(results, *a)
		}
	}
	return results
}

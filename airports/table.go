package airports

// Table maps normalized IATA and ICAO codes to airport records. A Table is
// never modified after Load returns, so concurrent reads need no locking.
type Table struct {
	byKey map[string]*Airport
	// keys in first-insertion order; drives the order of Search results.
	keys []string
}

func newTable() *Table {
	return &Table{byKey: make(map[string]*Airport)}
}

// insert applies the keying rules for one row. The IATA key always
// overwrites; the ident key is only added when nothing holds it yet.
func (t *Table) insert(a *Airport) {
	if iata := normalizeCode(a.IATACode); iata != "" {
		t.put(iata, a)
	}
	if icao := normalizeCode(a.Ident); icao != "" {
		if _, taken := t.byKey[icao]; !taken {
			t.put(icao, a)
		}
	}
}

func (t *Table) put(key string, a *Airport) {
	if _, exists := t.byKey[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.byKey[key] = a
}

// Get returns a copy of the record stored under code, or nil.
func (t *Table) Get(code string) *Airport {
	a, ok := t.byKey[normalizeCode(code)]
	if !ok {
		return nil
	}
	cp := *a
	return &cp
}

// Has reports whether any record is stored under code.
func (t *Table) Has(code string) bool {
	_, ok := t.byKey[normalizeCode(code)]
	return ok
}

// Len returns the number of keys, not the number of distinct airports.
func (t *Table) Len() int {
	return len(t.byKey)
}

package args

import "fmt"

type Entry struct {
	Name  string
	Value Value
}

func E(name string, v any) Entry {
	return Entry{
		Name:  name,
		Value: Of(v),
	}
}

// PositionalName returns the name of the idx-th positional item.
// Names are at least two digits wide: "00", "01", ... "99", "100".
func PositionalName(idx int) string {
	return fmt.Sprintf("%02d", idx)
}

func positionalEntries(items []any) []Entry {
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = E(PositionalName(i), item)
	}
	return entries
}

package configster

// Value is the parsed right-hand side of an option line.
type Value struct {
	Primary    string   // first delimiter-separated field, edge-trimmed
	Attributes []string // remaining fields in file order, edge-trimmed
}

// IsEmpty reports whether the value carries no primary field and no
// attributes, as produced by an option line with no '=' or a bare
// trailing '='.
func (v Value) IsEmpty() bool {
	return v.Primary == "" && len(v.Attributes) == 0
}

// OptionRecord is a single parsed option line.
type OptionRecord struct {
	Option string // text before the first '=', edge-trimmed
	Value  Value
	Line   int // 1-based line number in the input
}

// Config is the ordered result of parsing a configuration text. Record
// order matches input line order, and duplicate option names are kept.
type Config []OptionRecord

// Lookup returns the value of the named option. When the option appears
// more than once the last occurrence wins. Returns the value and true if
// found.
func (c Config) Lookup(option string) (Value, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Option == option {
			return c[i].Value, true
		}
	}
	return Value{}, false
}

// LookupAll returns the values of every occurrence of the named option,
// in file order.
func (c Config) LookupAll(option string) []Value {
	var result []Value
	for _, rec := range c {
		if rec.Option == option {
			result = append(result, rec.Value)
		}
	}
	return result
}

// Has reports whether the named option appears at least once.
func (c Config) Has(option string) bool {
	for _, rec := range c {
		if rec.Option == option {
			return true
		}
	}
	return false
}

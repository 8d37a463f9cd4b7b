package configster

import "strings"

// Parse parses configuration text and returns the ordered option records.
// The delimiter separates the attribute list of a value expression.
//
// Parse is total: any input produces a (possibly empty) Config. Malformed
// lines degrade into best-effort records rather than aborting the parse.
// Both \n and \r\n line endings are accepted.
func Parse(src []byte, delimiter rune) Config {
	var config Config
	for i, raw := range strings.Split(string(src), "\n") {
		rec, ok := parseLine(raw, delimiter, i+1)
		if !ok {
			continue
		}
		config = append(config, rec)
	}
	return config
}

// parseLine classifies a single input line. Returns the record and true,
// or false for blank lines, comment lines, and lines with no option name.
func parseLine(raw string, delimiter rune, lineNum int) (OptionRecord, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || line[0] == '#' {
		return OptionRecord{}, false
	}

	// Only the first '=' separates option from value; any further '='
	// belongs to the value expression.
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		// Flag-style option with no value.
		return OptionRecord{Option: line, Line: lineNum}, true
	}

	option := strings.TrimSpace(line[:eq])
	if option == "" {
		// A value with no option name ("= foo") is not a record.
		return OptionRecord{}, false
	}

	expr := strings.TrimSpace(line[eq+1:])
	return OptionRecord{
		Option: option,
		Value:  splitValue(expr, delimiter),
		Line:   lineNum,
	}, true
}

// splitValue splits an already-trimmed value expression on the delimiter.
// The first field becomes Primary and the remaining fields become
// Attributes, each edge-trimmed. Empty trailing fields are kept as empty
// strings; an empty expression yields the zero Value.
//
// A delimiter immediately after the '=' yields an empty Primary with the
// following fields as attributes ("opt = , b" parses as Primary "" and
// Attributes ["b"]).
func splitValue(expr string, delimiter rune) Value {
	if expr == "" {
		return Value{}
	}
	if !strings.ContainsRune(expr, delimiter) {
		return Value{Primary: expr}
	}

	fields := strings.Split(expr, string(delimiter))
	attrs := make([]string, 0, len(fields)-1)
	for _, f := range fields[1:] {
		attrs = append(attrs, strings.TrimSpace(f))
	}
	return Value{
		Primary:    strings.TrimSpace(fields[0]),
		Attributes: attrs,
	}
}

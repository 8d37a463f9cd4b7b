// Package configster parses a line-oriented configuration file format into
// an ordered list of option records.
//
// The format is one option per line. An option may carry a value after an
// equals sign, and the value may carry a delimiter-separated attribute list
// after its primary field:
//
//	ExampleOption = 12
//	ExampleOption2 = /home/foo/bar, optional, attribute, list
//	DefaultFeatureFooDisabled
//	# Option = commented_out_using_hashtag
//
// Blank lines and lines whose first non-whitespace character is '#' are
// skipped. Everything else produces a record, in file order; options with
// the same name are preserved as duplicates rather than merged.
//
// The parser is structured as two cooperating functions:
//
//   - Line classifier: trims a line, skips blanks and comments, and splits
//     option from value expression on the first '='.
//   - Value splitter: splits a value expression on the caller-supplied
//     delimiter into a primary field and trailing attributes.
//
// Parsing never fails. Parse is total over any input text; only the file
// reading entry points (ParseFile, ParseReader) can return an error, and
// only for I/O failures.
//
// Usage:
//
//	config, err := configster.ParseFile("app.conf", ',')
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rec := range config {
//	    fmt.Println(rec.Option, rec.Value.Primary, rec.Value.Attributes)
//	}
package configster

// Version is the library version.
const Version = "0.3.0"

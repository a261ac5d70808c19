// Package csvrec loads delimited text files with a header row into
// ordered sequences of key-value records.
//
// The first line of the input names the fields; each subsequent line
// becomes one Record mapping field names to cell values. All values are
// kept as text. Parsing follows standard CSV quoting rules (double-quote
// enclosure, doubled internal quotes) via encoding/csv defaults.
//
// Basic usage:
//
//	set, err := csvrec.Load("towers.csv")
//	if err != nil {
//	    if errors.Is(err, csvrec.ErrFileAccess) {
//	        // path missing or unreadable
//	    }
//	    return err
//	}
//	for _, rec := range set.Records {
//	    fmt.Println(rec["Place"])
//	}
//
// A Loader can be configured to read from any io/fs.FS (embedded data,
// test fixtures) and to emit diagnostic logging:
//
//	loader := csvrec.NewLoader(csvrec.WithFS(fixtures))
//	set, err := loader.Load("testdata/towers.csv")
package csvrec

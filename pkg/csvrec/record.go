package csvrec

// Record is one structured row: a mapping from header field name to the
// row's text value for that field. For well-formed input every Record in
// a RecordSet carries exactly the header's field names as keys.
type Record map[string]string

// Get returns the value for the named field, or "" if the field is not
// present in the record.
func (r Record) Get(field string) string {
	return r[field]
}

// Has reports whether the named field is present in the record.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Equal reports whether two records contain the same fields with the
// same values.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for field, value := range r {
		otherValue, ok := other[field]
		if !ok || otherValue != value {
			return false
		}
	}
	return true
}

// RecordSet is the ordered sequence of Records produced from one file.
//
// Fields preserves the header's column order; Go maps are unordered, so
// callers that need columns in file order should iterate Fields rather
// than ranging over a Record. Records preserves the order data rows
// appear in the source, header row excluded.
//
// A RecordSet is built fresh on every load and is owned entirely by the
// caller; the loader keeps no reference to it.
type RecordSet struct {
	// Fields are the header's field names in column order.
	Fields []string

	// Records are the data rows in file order.
	Records []Record
}

// Len returns the number of data records in the set.
func (s RecordSet) Len() int {
	return len(s.Records)
}

// Equal reports whether two record sets have the same fields in the same
// order and element-wise equal records in the same order.
func (s RecordSet) Equal(other RecordSet) bool {
	if len(s.Fields) != len(other.Fields) || len(s.Records) != len(other.Records) {
		return false
	}
	for i, field := range s.Fields {
		if other.Fields[i] != field {
			return false
		}
	}
	for i, rec := range s.Records {
		if !rec.Equal(other.Records[i]) {
			return false
		}
	}
	return true
}

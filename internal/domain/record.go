package domain

// Header is the ordered set of column names fixed by the first row of an import.
// It defines the positional contract for every data row in the same job and is
// never mutated after creation.
type Header []string

// Row is one tokenized line: its cells plus the 1-based logical line number it
// started on in the source file (header row is line 1).
type Row struct {
	Cells []string
	Line  int
}

// Sheet is the source-format-independent result of reading an import file:
// the header row plus all data rows with their line numbers.
type Sheet struct {
	Header Header
	Rows   []Row
}

// Record maps header names to raw cell values for one data row. Field order
// follows the header; missing positional cells are empty strings, never
// absent keys. Records are built once and read-only afterwards.
type Record struct {
	header Header
	values map[string]string

	// Line is the 1-based logical line number of the originating row.
	Line int
}

// NewRecord zips a header with a row. Cells beyond the header length are
// ignored; missing cells default to the empty string.
func NewRecord(header Header, row Row) Record {
	values := make(map[string]string, len(header))
	for i, field := range header {
		if i < len(row.Cells) {
			values[field] = row.Cells[i]
		} else {
			values[field] = ""
		}
	}
	return Record{header: header, values: values, Line: row.Line}
}

// Get returns the raw value for a field, or the empty string when the field
// is not part of the header. Total accessor: never panics.
func (r Record) Get(field string) string {
	return r.values[field]
}

// Fields returns the field names in header order.
func (r Record) Fields() []string {
	return r.header
}

// Values returns the cell values in header order.
func (r Record) Values() []string {
	out := make([]string, len(r.header))
	for i, field := range r.header {
		out[i] = r.values[field]
	}
	return out
}

// Len reports the number of fields.
func (r Record) Len() int {
	return len(r.header)
}

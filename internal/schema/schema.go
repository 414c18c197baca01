package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// FieldSet is the set of top-level keys a record is expected to carry.
type FieldSet = sets.Set[string]

// NewFieldSet builds a FieldSet from the given names.
func NewFieldSet(names ...string) FieldSet {
	return sets.New[string](names...)
}

// Sorted returns the members of fields in ascending order.
func Sorted(fields FieldSet) []string {
	return sets.List(fields)
}

// Expectation describes the shape of a JSON array response.
// A Count <= 0 disables the cardinality check.
type Expectation struct {
	Name   string
	Count  int
	Fields FieldSet
}

// MismatchError reports that a payload no longer has the shape the client expects.
// It is returned for data drift only; transport and decode failures never produce one.
type MismatchError struct {
	Resource  string
	Index     int
	Missing   []string
	Extra     []string
	WantCount int
	GotCount  int
	Reason    string
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	b.WriteString("schema mismatch")
	if e.Resource != "" {
		b.WriteString(" in ")
		b.WriteString(e.Resource)
	}
	switch {
	case e.Reason != "":
		fmt.Fprintf(&b, ": record %d: %s", e.Index, e.Reason)
	case e.WantCount != e.GotCount:
		fmt.Fprintf(&b, ": expected %d records, got %d", e.WantCount, e.GotCount)
	default:
		fmt.Fprintf(&b, ": record %d", e.Index)
		if len(e.Missing) > 0 {
			fmt.Fprintf(&b, " missing [%s]", strings.Join(e.Missing, ", "))
		}
		if len(e.Extra) > 0 {
			fmt.Fprintf(&b, " unexpected [%s]", strings.Join(e.Extra, ", "))
		}
	}
	return b.String()
}

// AsMismatch unwraps err into a MismatchError.
func AsMismatch(err error) (*MismatchError, bool) {
	var mErr *MismatchError
	if errors.As(err, &mErr) {
		return mErr, true
	}
	return nil, false
}

// IsMismatch reports whether err is (or wraps) a MismatchError.
func IsMismatch(err error) bool {
	_, ok := AsMismatch(err)
	return ok
}

// Keys returns the top-level keys of a decoded record.
func Keys(record map[string]json.RawMessage) FieldSet {
	keys := sets.New[string]()
	for k := range record {
		keys.Insert(k)
	}
	return keys
}

// CheckRecord enforces strict key-set equality between record and fields.
func CheckRecord(index int, record map[string]json.RawMessage, fields FieldSet) error {
	got := Keys(record)
	if got.Equal(fields) {
		return nil
	}
	return &MismatchError{
		Index:   index,
		Missing: sets.List(fields.Difference(got)),
		Extra:   sets.List(got.Difference(fields)),
	}
}

// CheckRequired only reports keys of fields absent from record; extras are returned separately.
func CheckRequired(index int, record map[string]json.RawMessage, fields FieldSet) (extra []string, err error) {
	got := Keys(record)
	extra = sets.List(got.Difference(fields))
	if missing := fields.Difference(got); missing.Len() > 0 {
		return extra, &MismatchError{Index: index, Missing: sets.List(missing)}
	}
	return extra, nil
}

// Validate decodes body as a JSON array of objects and checks it against the expectation.
// Malformed JSON is returned as the decoder's error, not as a MismatchError.
func (e Expectation) Validate(body []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return err
	}
	records := make([]map[string]json.RawMessage, 0, len(raw))
	for i, item := range raw {
		var rec map[string]json.RawMessage
		if err := json.Unmarshal(item, &rec); err != nil || rec == nil {
			return &MismatchError{Resource: e.Name, Index: i, Reason: "element is not an object"}
		}
		records = append(records, rec)
	}
	return e.ValidateRecords(records)
}

// ValidateRecords checks already-decoded records against the expectation.
func (e Expectation) ValidateRecords(records []map[string]json.RawMessage) error {
	if e.Count > 0 && len(records) != e.Count {
		return &MismatchError{Resource: e.Name, WantCount: e.Count, GotCount: len(records)}
	}
	for i, rec := range records {
		if err := CheckRecord(i, rec, e.Fields); err != nil {
			mErr, _ := AsMismatch(err)
			mErr.Resource = e.Name
			return mErr
		}
	}
	return nil
}

// Report summarises a validation run for display or JSON encoding.
type Report struct {
	Resource string   `json:"resource"`
	Records  int      `json:"records"`
	Fields   []string `json:"fields"`
	OK       bool     `json:"ok"`
	Error    string   `json:"error,omitempty"`
	Missing  []string `json:"missing,omitempty"`
	Extra    []string `json:"extra,omitempty"`
}

// NewReport builds a Report from a validation result.
func NewReport(e Expectation, records int, err error) Report {
	r := Report{Resource: e.Name, Records: records, Fields: sets.List(e.Fields), OK: err == nil}
	if err != nil {
		r.Error = err.Error()
		if mErr, ok := AsMismatch(err); ok {
			r.Missing = mErr.Missing
			r.Extra = mErr.Extra
		}
	}
	return r
}

package query

import "fmt"

// Result is the outcome of a query. The set of results is closed: Success,
// Failure, RowCount and Empty.
type Result interface {
	OK() bool
	String() string
	result()
}

type Success struct {
	Message string
}

type Failure struct {
	Message string
}

// RowCount reports how many rows a query affected.
type RowCount struct {
	N int
}

// Empty is a success with nothing to report.
type Empty struct{}

func (Success) OK() bool  { return true }
func (Failure) OK() bool  { return false }
func (RowCount) OK() bool { return true }
func (Empty) OK() bool    { return true }

func (r Success) String() string  { return r.Message }
func (r Failure) String() string  { return r.Message }
func (r RowCount) String() string { return fmt.Sprintf("Affected %d rows.", r.N) }
func (Empty) String() string      { return "" }

func (Success) result()  {}
func (Failure) result()  {}
func (RowCount) result() {}
func (Empty) result()    {}

func failed(qname, reason string) Failure {
	return Failure{Message: fmt.Sprintf("Query %q failed : %s", qname, reason)}
}

func failedIn(qname, tableName, reason string) Failure {
	return Failure{Message: fmt.Sprintf("Query %q failed in Table %q : %s", qname, tableName, reason)}
}

func succeeded(qname string) Success {
	return Success{Message: fmt.Sprintf("Query %q success.", qname)}
}

func succeededWith(qname, msg string) Success {
	return Success{Message: fmt.Sprintf("Query %q success : %s", qname, msg)}
}

// Kind names the variant of r.
func Kind(r Result) string {
	switch r.(type) {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case RowCount:
		return "row_count"
	case Empty:
		return "empty"
	default:
		panic(fmt.Sprintf("query: unknown result %T", r))
	}
}

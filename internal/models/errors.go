package models

// ErrorKind classifies a normalized API failure.
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"    // no response at all
	KindValidation ErrorKind = "validation" // 400 with field detail
	KindNotFound   ErrorKind = "not_found"  // 404
	KindConflict   ErrorKind = "conflict"   // 409
	KindServer     ErrorKind = "server"     // 500 / 503
	KindUnknown    ErrorKind = "unknown"    // anything else
)

// ValidationError mirrors the API's nested field violation structure.
// Only the top level is consumed here; Children is carried through so
// nothing is lost on the wire.
type ValidationError struct {
	Property    string            `json:"property"`
	Value       any               `json:"value"`
	Constraints map[string]string `json:"constraints"`
	Children    []ValidationError `json:"children"`
}

// APIError is the single normalized error every transport failure
// collapses into: one user-facing message plus, for 400s, the field
// level detail the form renders inline.
type APIError struct {
	Kind             ErrorKind
	Status           int
	Message          string
	ValidationErrors []ValidationError
}

func (e *APIError) Error() string {
	return e.Message
}

// SaveResult is what a form submission resolves to. Failures are data,
// not panics: the form needs to render them next to the fields.
type SaveResult struct {
	Success          bool
	Error            string
	ValidationErrors []ValidationError
}

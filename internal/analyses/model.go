package analyses

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the response body of an analysis. Analysis carries the model's
// markdown on success and the rendered error marker otherwise.
type Result struct {
	Status   string `json:"status"`
	Analysis string `json:"analysis"`
	Err      error  `json:"-"`
}

// OK reports whether the analysis succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

package remapdb

// MatcherStats reports replacements for one matcher within a run.
type MatcherStats struct {
	// Name identifies the matcher ("quoted", "path", "query").
	Name string

	// Replaced is the number of occurrences rewritten to new
	// identifiers.
	Replaced int

	// Unmapped is the number of occurrences that matched syntactically
	// but had no store entry. They are left unchanged.
	Unmapped int
}

// TransformationRun reports one execution of the stream transformer
// over one file.
type TransformationRun struct {
	// ID is a unique identifier of this run.
	ID string

	// Input is the path of the processed file.
	Input string

	// Output is the path the result was renamed to.
	Output string

	// Lines is the number of lines processed. It always equals the
	// input line count on success.
	Lines int

	// Matchers holds per-matcher counters in application order.
	Matchers []MatcherStats

	// Err is set when the run failed. A failed run leaves no output
	// artifact behind.
	Err error
}

// Replaced sums replaced occurrences across matchers.
func (r *TransformationRun) Replaced() int {
	var res int
	for _, m := range r.Matchers {
		res += m.Replaced
	}
	return res
}

// Unmapped sums unmapped occurrences across matchers.
func (r *TransformationRun) Unmapped() int {
	var res int
	for _, m := range r.Matchers {
		res += m.Unmapped
	}
	return res
}

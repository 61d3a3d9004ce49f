package county

// LoadError wraps any failure while fetching or decoding the boundary
// document, other than a non-success transport response (which surfaces
// as *fetcher.FetchError).
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return "county: load boundaries: " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

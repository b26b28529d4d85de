package ports

// Selector maps a list of candidates to one choice. Implementations
// may be interactive; the pipeline never depends on terminal I/O
// directly. Returns the chosen index, or ok=false when the user
// cancelled.
type Selector interface {
	Select(title string, options []string) (index int, ok bool, err error)
}

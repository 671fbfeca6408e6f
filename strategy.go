package contactsheet

// Strategy selects how a run walks the tree.
type Strategy uint8

const (
	// Sequential walks the tree depth-first on the calling goroutine.
	// Children are composed before their parent.
	Sequential Strategy = iota

	// Concurrent scans and composes sibling directories in parallel and
	// decodes a directory's images in parallel. Every child directory is
	// finished before its parent composes.
	Concurrent
)

// String returns a string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Concurrent:
		return "concurrent"
	default:
		return "unknown"
	}
}

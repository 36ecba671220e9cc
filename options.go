package inkpad

// Options configures a Document.
type Options struct {
	// Workers is the number of partitions that per-element passes are split into. One or less runs serially on the calling goroutine.
	Workers int
}

// DefaultOptions runs all passes serially.
var DefaultOptions = Options{
	Workers: 1,
}

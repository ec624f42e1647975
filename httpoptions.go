package staticfs

type HTTPHandlerOptions struct {
	// IndexFile is the file served in place of a directory
	// listing whenever a requested directory contains it.
	// Default: "index.html"
	IndexFile string

	// Listings controls whether directories without an index
	// file get an HTML listing of their entries. If disabled
	// such requests are answered with 403. Default: true.
	Listings bool

	// SniffContentType enables magic-number sniffing of the
	// leading payload bytes for files whose extension is not
	// in the content-type table. Default: true.
	SniffContentType bool
}

func DefaultHTTPHandlerOptions() HTTPHandlerOptions {
	const indexFile = "index.html"
	opts := HTTPHandlerOptions{}

	opts.IndexFile = indexFile
	opts.Listings = true
	opts.SniffContentType = true
	return opts
}

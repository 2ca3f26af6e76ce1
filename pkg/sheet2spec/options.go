// Package sheet2spec converts loosely structured spreadsheet descriptions of
// a REST API into an OpenAPI-3-compatible specification object.
package sheet2spec

// Options configures a conversion. Zero values fall back to the defaults
// below.
type Options struct {
	// OpenAPIVersion is the version string written into the document.
	OpenAPIVersion string
	// DefaultVersion is used for info.version when no overview sheet
	// declares one.
	DefaultVersion string
	// DefaultServerURL is the placeholder server inserted when no overview
	// sheet declares a base URL.
	DefaultServerURL string
}

// DefaultOptions returns the default conversion options.
func DefaultOptions() Options {
	return Options{
		OpenAPIVersion:   "3.0.3",
		DefaultVersion:   "1.0.0",
		DefaultServerURL: "https://api.example.com",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.OpenAPIVersion == "" {
		o.OpenAPIVersion = def.OpenAPIVersion
	}
	if o.DefaultVersion == "" {
		o.DefaultVersion = def.DefaultVersion
	}
	if o.DefaultServerURL == "" {
		o.DefaultServerURL = def.DefaultServerURL
	}
	return o
}

package tools

import "context"

// Recorder implements Git and Browser without spawning processes. It records
// every call and returns the configured error, if any.
type Recorder struct {
	InitDirs   []string
	OpenedURLs []string

	InitErr error
	OpenErr error
}

// Init records dir and returns InitErr.
func (r *Recorder) Init(_ context.Context, dir string) error {
	if r.InitErr != nil {
		return r.InitErr
	}
	r.InitDirs = append(r.InitDirs, dir)
	return nil
}

// Open records url and returns OpenErr.
func (r *Recorder) Open(_ context.Context, url string) error {
	if r.OpenErr != nil {
		return r.OpenErr
	}
	r.OpenedURLs = append(r.OpenedURLs, url)
	return nil
}

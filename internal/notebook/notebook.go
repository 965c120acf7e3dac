package notebook

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
)

//go:embed assets/notebook.ipynb
var template []byte

// SupportedFormat is the nbformat version range the template must satisfy.
const SupportedFormat = "~4"

var (
	checkOnce sync.Once
	checkErr  error
)

// Template returns a copy of the fixed notebook document: one empty code
// cell with Python 3 kernel metadata. Every notebook is written with these
// exact bytes.
func Template() []byte {
	out := make([]byte, len(template))
	copy(out, template)
	return out
}

// header holds the version fields of a notebook document.
type header struct {
	NBFormat      int `json:"nbformat"`
	NBFormatMinor int `json:"nbformat_minor"`
}

// FormatVersion reads nbformat and nbformat_minor from a notebook document.
func FormatVersion(data []byte) (*semver.Version, error) {
	var h header
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parsing notebook header: %w", err)
	}
	v, err := semver.NewVersion(fmt.Sprintf("%d.%d.0", h.NBFormat, h.NBFormatMinor))
	if err != nil {
		return nil, fmt.Errorf("notebook format %d.%d: %w", h.NBFormat, h.NBFormatMinor, err)
	}
	return v, nil
}

// CheckFormat returns an error unless data declares a supported nbformat.
func CheckFormat(data []byte) error {
	v, err := FormatVersion(data)
	if err != nil {
		return err
	}
	c, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		return fmt.Errorf("parsing format constraint %q: %w", SupportedFormat, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("notebook format %s does not satisfy %s", v, SupportedFormat)
	}
	return nil
}

// CheckTemplate validates the embedded template once per process. A failure
// means the binary was built with a broken asset.
func CheckTemplate() error {
	checkOnce.Do(func() {
		checkErr = check(template)
	})
	return checkErr
}

func check(data []byte) error {
	if err := CheckFormat(data); err != nil {
		return fmt.Errorf("notebook template: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return fmt.Errorf("notebook template: %w", err)
	}
	if !result.Valid {
		return fmt.Errorf("notebook template is invalid: %s", result.Issues[0])
	}
	return nil
}

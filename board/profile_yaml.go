//go:build !tinygo

package board

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadProfile reads a YAML board profile. Fields absent from the file keep the
// T-Watch S3 defaults; a rails list in the file replaces the default table.
//
// Files ending in .json or .jsonc may carry comments and trailing commas.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}
	return ParseProfile(data)
}

// ParseProfile is LoadProfile without the file read.
func ParseProfile(data []byte) (Profile, error) {
	p := TWatchS3()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return p, nil
}

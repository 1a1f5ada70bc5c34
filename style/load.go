package style

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a theme file extension other than
// .toml, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported theme file format")

// themeFile is the on-disk theme shape: one hex color string per role.
// Missing fields fall back to the corresponding LightTheme color.
type themeFile struct {
	Background string `toml:"background" yaml:"background"`
	Primary    string `toml:"primary"    yaml:"primary"`
	Secondary  string `toml:"secondary"  yaml:"secondary"`
	Text       string `toml:"text"       yaml:"text"`
	Grid       string `toml:"grid"       yaml:"grid"`
	Accent     string `toml:"accent"     yaml:"accent"`
	Success    string `toml:"success"    yaml:"success"`
	Warning    string `toml:"warning"    yaml:"warning"`
	Error      string `toml:"error"      yaml:"error"`
}

// LoadTheme reads a theme from a TOML or YAML file, selected by the file
// extension. Unspecified colors keep their light-theme defaults, so a
// file can override just the roles it cares about.
func LoadTheme(path string) (Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}

	var tf themeFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(raw, &tf); err != nil {
			return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &tf); err != nil {
			return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
		}
	default:
		return Theme{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return tf.toTheme()
}

func (tf themeFile) toTheme() (Theme, error) {
	theme := LightTheme()

	fields := []struct {
		hex string
		dst *Color
	}{
		{tf.Background, &theme.Background},
		{tf.Primary, &theme.Primary},
		{tf.Secondary, &theme.Secondary},
		{tf.Text, &theme.Text},
		{tf.Grid, &theme.Grid},
		{tf.Accent, &theme.Accent},
		{tf.Success, &theme.Success},
		{tf.Warning, &theme.Warning},
		{tf.Error, &theme.Error},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseHex(f.hex)
		if err != nil {
			return Theme{}, err
		}
		*f.dst = c
	}
	return theme, nil
}

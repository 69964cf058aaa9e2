package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Section names in the settings file
const (
	sectionField = "field"
	sectionKeys  = "keys"
	sectionSound = "sound"
)

// Rune aliases for keys that read badly as bare INI values
var runeAliases = map[string]rune{
	"space":     ' ',
	"semicolon": ';',
	"hash":      '#',
	"equals":    '=',
}

var loadOptions = ini.LoadOptions{Insensitive: true}

// DefaultPath returns the per-user settings file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings dir: %w", err)
	}
	return filepath.Join(dir, "invoker", "settings.ini"), nil
}

// Load reads settings from path, filling unspecified values from Default
// A missing file is not an error; the defaults are returned
func Load(path string) (Settings, error) {
	s := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}

	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return s, fmt.Errorf("settings parse: %w", err)
	}
	if err := decode(f, &s); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes settings from in-memory INI data
func Parse(data []byte) (Settings, error) {
	s := Default()
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return s, fmt.Errorf("settings parse: %w", err)
	}
	if err := decode(f, &s); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// Save writes s to path, creating parent directories
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("settings dir: %w", err)
	}
	if err := encode(s).SaveTo(path); err != nil {
		return fmt.Errorf("settings save: %w", err)
	}
	return nil
}

func decode(f *ini.File, s *Settings) error {
	field := f.Section(sectionField)
	if err := readFloat(field, "width", &s.Field.Width); err != nil {
		return err
	}
	if err := readFloat(field, "height", &s.Field.Height); err != nil {
		return err
	}
	if err := readFloat(field, "margin", &s.Field.Margin); err != nil {
		return err
	}

	keys := f.Section(sectionKeys)
	for name, dst := range map[string]*rune{
		"quas":     &s.Keys.Quas,
		"wex":      &s.Keys.Wex,
		"exort":    &s.Keys.Exort,
		"invoke":   &s.Keys.Invoke,
		"pro_mode": &s.Keys.ProMode,
	} {
		if !keys.HasKey(name) {
			continue
		}
		r, err := resolveRune(keys.Key(name).String())
		if err != nil {
			return fmt.Errorf("[%s] %s: %w", sectionKeys, name, err)
		}
		*dst = r
	}

	sound := f.Section(sectionSound)
	if sound.HasKey("enabled") {
		v, err := sound.Key("enabled").Bool()
		if err != nil {
			return fmt.Errorf("[%s] enabled: %w", sectionSound, err)
		}
		s.Sound.Enabled = v
	}
	return readFloat(sound, "volume", &s.Sound.Volume)
}

func readFloat(sec *ini.Section, name string, dst *float64) error {
	if !sec.HasKey(name) {
		return nil
	}
	v, err := sec.Key(name).Float64()
	if err != nil {
		return fmt.Errorf("[%s] %s: %w", sec.Name(), name, err)
	}
	*dst = v
	return nil
}

func encode(s Settings) *ini.File {
	f := ini.Empty()

	field := f.Section(sectionField)
	field.Key("width").SetValue(formatFloat(s.Field.Width))
	field.Key("height").SetValue(formatFloat(s.Field.Height))
	field.Key("margin").SetValue(formatFloat(s.Field.Margin))

	keys := f.Section(sectionKeys)
	for _, b := range s.Keys.list() {
		keys.Key(b.action).SetValue(formatRune(b.key))
	}

	sound := f.Section(sectionSound)
	sound.Key("enabled").SetValue(strconv.FormatBool(s.Sound.Enabled))
	sound.Key("volume").SetValue(formatFloat(s.Sound.Volume))

	return f
}

// resolveRune converts an INI value to a rune
// Accepts single characters and named aliases
func resolveRune(v string) (rune, error) {
	v = strings.TrimSpace(v)
	if r, ok := runeAliases[strings.ToLower(v)]; ok {
		return r, nil
	}
	runes := []rune(v)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid key %q (expected single character or alias)", v)
}

func formatRune(r rune) string {
	for name, alias := range runeAliases {
		if alias == r {
			return name
		}
	}
	return string(r)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

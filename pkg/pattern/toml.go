package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ptTomlFile is the TOML-friendly representation of a pattern file.
// One file defines one pattern.
type ptTomlFile struct {
	ID                    string        `toml:"id"`
	Name                  string        `toml:"name"`
	Repeat                bool          `toml:"repeat"`
	Visualization         string        `toml:"visualization,omitempty"`
	LongBreak             int           `toml:"long_break,omitempty"`
	CyclesBeforeLongBreak int           `toml:"cycles_before_long_break,omitempty"`
	Phases                []ptTomlPhase `toml:"phases"`
}

// ptTomlPhase is the TOML-friendly representation of a Phase.
type ptTomlPhase struct {
	Duration int    `toml:"duration"`
	Message  string `toml:"message,omitempty"`
	Kind     string `toml:"kind,omitempty"`
}

// LoadFromTOML parses a custom pattern from TOML data. Phases with an
// empty kind default to KindCustom. The result is validated.
func LoadFromTOML(data []byte) (Pattern, error) {
	var raw ptTomlFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Pattern{}, fmt.Errorf("pattern: parse TOML: %w", err)
	}

	phases := make([]Phase, len(raw.Phases))
	for i, ph := range raw.Phases {
		kind := Kind(ph.Kind)
		if kind == "" {
			kind = KindCustom
		}
		phases[i] = Phase{Duration: ph.Duration, Message: ph.Message, Kind: kind}
	}

	p := Pattern{
		ID:                    raw.ID,
		Name:                  raw.Name,
		Phases:                phases,
		Repeat:                raw.Repeat,
		Visualization:         raw.Visualization,
		LongBreak:             raw.LongBreak,
		CyclesBeforeLongBreak: raw.CyclesBeforeLongBreak,
	}
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

// SaveToTOML serializes a pattern to TOML format.
func SaveToTOML(p Pattern) ([]byte, error) {
	raw := ptTomlFile{
		ID:                    p.ID,
		Name:                  p.Name,
		Repeat:                p.Repeat,
		Visualization:         p.Visualization,
		LongBreak:             p.LongBreak,
		CyclesBeforeLongBreak: p.CyclesBeforeLongBreak,
		Phases:                make([]ptTomlPhase, len(p.Phases)),
	}
	for i, ph := range p.Phases {
		raw.Phases[i] = ptTomlPhase{Duration: ph.Duration, Message: ph.Message, Kind: string(ph.Kind)}
	}

	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(raw); err != nil {
		return nil, fmt.Errorf("pattern: encode TOML: %w", err)
	}
	return []byte(b.String()), nil
}

// LoadDir reads every *.toml file in dir and registers the patterns it
// finds. A missing directory is not an error. Individual files that fail
// to parse are reported together after the valid ones are registered.
func LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("pattern: read dir: %w", err)
	}

	var errs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		p, err := LoadFromTOML(data)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		if err := Register(p); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", e.Name(), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("pattern: %s", strings.Join(errs, "; "))
	}
	return nil
}

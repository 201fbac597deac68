package data

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var embedded embed.FS

// Loader handles reading catalog files from the read-only data layer
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a new Data Loader with the given data directory fallback hierarchy.
// The embedded default catalog is always consulted last.
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// LoadCatalog reads cards, enemies, relics and classes and validates them as a whole.
func (l *Loader) LoadCatalog() (*Catalog, error) {
	c := &Catalog{}
	if err := l.load("cards.yaml", &c.Cards); err != nil {
		return nil, err
	}
	if err := l.load("enemies.yaml", &c.Enemies); err != nil {
		return nil, err
	}
	if err := l.load("relics.yaml", &c.Relics); err != nil {
		return nil, err
	}
	if err := l.load("classes.yaml", &c.Classes); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.index()
	return c, nil
}

func (l *Loader) load(ref string, target interface{}) error {
	for _, dir := range l.dataDirs {
		if dir == "" {
			continue
		}
		f, err := os.Open(filepath.Join(dir, ref))
		if err != nil {
			continue
		}
		defer f.Close()
		return decode(ref, f, target)
	}

	f, err := embedded.Open("catalog/" + ref)
	if err != nil {
		return fmt.Errorf("could not find or open reference %s in any available data directory", ref)
	}
	defer f.Close()
	return decode(ref, f, target)
}

func decode(ref string, r io.Reader, target interface{}) error {
	if err := yaml.NewDecoder(r).Decode(target); err != nil {
		return fmt.Errorf("failed to decode yaml reference %s: %w", ref, err)
	}
	return nil
}

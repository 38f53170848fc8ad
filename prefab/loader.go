package prefab

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode reads one archetype document; name is the file name the tier is derived from
func Decode(r io.Reader, name string) (Archetype, error) {
	var a Archetype

	tier, err := TierFromName(name)
	if err != nil {
		return a, err
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		return a, fmt.Errorf("decode %s: %w", name, err)
	}

	a.Name = strings.TrimSuffix(name, path.Ext(name))
	a.Tier = tier
	a.normalize()
	if err := a.Validate(); err != nil {
		return a, fmt.Errorf("%s: %w", name, err)
	}
	return a, nil
}

// LoadDir decodes every *.yaml file of dir into a validated table
// Files are loaded in name order so tables are reproducible
func LoadDir(fsys fs.FS, dir string) (*Table, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read archetype dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var archetypes []Archetype
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		a, err := loadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		archetypes = append(archetypes, a)
	}

	t, err := NewTable(archetypes...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return t, nil
}

func loadFile(fsys fs.FS, name string) (Archetype, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Archetype{}, err
	}
	defer f.Close()
	return Decode(f, path.Base(name))
}

// Package catalog loads the static Guild Wars reference data (items,
// weapon upgrades, runes, insignias, profession attributes) from the
// embedded JSON datasets and serves id lookups over it.
//
// The datasets are generated by scripts/gen_catalog.py from a single
// source of truth; the Go side never defines a record inline. A Catalog is
// immutable after construction and safe for concurrent readers.
package catalog

import (
	"embed"
	"encoding/json"

	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/errors"
)

//go:embed data/*.json
var dataFS embed.FS

// Data is the raw decoded shape of the embedded datasets.
type Data struct {
	Items       []*gw.Item                       `json:"items"`
	Modifiers   []*gw.Modifier                   `json:"modifiers"`
	Runes       []*gw.Rune                       `json:"runes"`
	Insignias   []*gw.Insignia                   `json:"insignias"`
	Professions map[gw.Profession][]gw.Attribute `json:"professions"`
}

// Catalog indexes the reference data by id.
type Catalog struct {
	items       map[int]*gw.Item
	modifiers   map[int]*gw.Modifier
	runes       map[int]*gw.Rune
	insignias   map[int]*gw.Insignia
	professions map[gw.Profession][]gw.Attribute
}

// New builds a catalog from raw data, rejecting duplicate ids. Modifier,
// rune, and insignia ids share the template wire format's modifier id
// space, so they must be unique across all three tables.
func New(data *Data) (*Catalog, error) {
	if data == nil {
		return nil, errors.InvalidArgument("data cannot be nil")
	}

	c := &Catalog{
		items:       make(map[int]*gw.Item, len(data.Items)),
		modifiers:   make(map[int]*gw.Modifier, len(data.Modifiers)),
		runes:       make(map[int]*gw.Rune, len(data.Runes)),
		insignias:   make(map[int]*gw.Insignia, len(data.Insignias)),
		professions: data.Professions,
	}

	for _, item := range data.Items {
		if _, ok := c.items[item.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate item id %d", item.ID)
		}
		c.items[item.ID] = item
	}

	seen := make(map[int]string, len(data.Modifiers)+len(data.Runes)+len(data.Insignias))
	claim := func(id int, kind string) error {
		if prev, ok := seen[id]; ok {
			return errors.InvalidArgumentf("modifier id %d claimed by both %s and %s", id, prev, kind)
		}
		seen[id] = kind
		return nil
	}

	for _, mod := range data.Modifiers {
		if err := claim(mod.ID, "modifier"); err != nil {
			return nil, err
		}
		c.modifiers[mod.ID] = mod
	}
	for _, r := range data.Runes {
		if err := claim(r.ID, "rune"); err != nil {
			return nil, err
		}
		c.runes[r.ID] = r
	}
	for _, ins := range data.Insignias {
		if err := claim(ins.ID, "insignia"); err != nil {
			return nil, err
		}
		c.insignias[ins.ID] = ins
	}

	return c, nil
}

// Load parses the embedded datasets into a new catalog. Call it once at
// startup and share the result; the catalog never changes afterwards.
func Load() (*Catalog, error) {
	data := &Data{}
	files := []struct {
		name string
		dst  any
	}{
		{"data/items.json", &data.Items},
		{"data/modifiers.json", &data.Modifiers},
		{"data/runes.json", &data.Runes},
		{"data/insignias.json", &data.Insignias},
		{"data/professions.json", &data.Professions},
	}
	for _, f := range files {
		raw, err := dataFS.ReadFile(f.name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", f.name)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", f.name)
		}
	}
	return New(data)
}

// Item looks up an item by id.
func (c *Catalog) Item(id int) (*gw.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Modifier looks up a weapon upgrade by id.
func (c *Catalog) Modifier(id int) (*gw.Modifier, bool) {
	mod, ok := c.modifiers[id]
	return mod, ok
}

// Rune looks up an armor rune by id.
func (c *Catalog) Rune(id int) (*gw.Rune, bool) {
	r, ok := c.runes[id]
	return r, ok
}

// Insignia looks up an armor insignia by id.
func (c *Catalog) Insignia(id int) (*gw.Insignia, bool) {
	ins, ok := c.insignias[id]
	return ins, ok
}

// ProfessionAttributes returns the attribute lines of a profession.
func (c *Catalog) ProfessionAttributes(p gw.Profession) []gw.Attribute {
	return c.professions[p]
}

// HasAttribute reports whether the attribute belongs to the profession.
func (c *Catalog) HasAttribute(p gw.Profession, a gw.Attribute) bool {
	for _, attr := range c.professions[p] {
		if attr == a {
			return true
		}
	}
	return false
}

// ItemCount reports how many items the catalog holds.
func (c *Catalog) ItemCount() int { return len(c.items) }

// Package template implements the equipment template codec: the
// bidirectional mapping between compact base64-like template codes and
// slot-keyed equipment records, validated against the catalogs.
//
// Decode is deliberately forgiving: structurally broken records are
// dropped rather than failing the whole code, and a code is only rejected
// outright when nothing in it resolves against the item catalog. Encode is
// strict about the wire format but silently strips PvE-only upgrade ids,
// which exist purely for display and are not part of the encoding space.
package template

import (
	"log/slog"
	"strings"

	"github.com/gwforge/builds-api/internal/catalog"
	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/errors"
)

const (
	templateType    = 15
	templateVersion = 0

	// Codes shorter than this cannot carry a header and one record;
	// they are treated as "not a template" rather than corrupt input.
	minCodeLength = 8

	maxRecords          = 7
	maxModifiersPerItem = 7
	maxColorID          = 15
	maxEncodableID      = 1<<maxFieldWidth - 1
)

// Record is one slot entry in the wire format.
type Record struct {
	Slot        gw.EquipmentSlot
	ItemID      int
	Color       gw.DyeColor
	ModifierIDs []int
}

// DecodedItem is a decoded record enriched with catalog data. Item is nil
// when the id did not resolve; the raw id is kept either way.
type DecodedItem struct {
	Slot        gw.EquipmentSlot
	ItemID      int
	Item        *gw.Item
	Color       gw.DyeColor
	ModifierIDs []int
}

// DecodedTemplate is the slot-keyed result of a successful decode.
type DecodedTemplate struct {
	Slots map[gw.EquipmentSlot]*DecodedItem
}

// MainHand returns the main-hand record, if present.
func (t *DecodedTemplate) MainHand() *DecodedItem {
	return t.Slots[gw.SlotMainHand]
}

// OffHand returns the off-hand record, if present.
func (t *DecodedTemplate) OffHand() *DecodedItem {
	return t.Slots[gw.SlotOffHand]
}

// Codec encodes and decodes equipment template codes against a catalog.
// It is stateless apart from its read-only dependencies and safe for
// concurrent use.
type Codec struct {
	catalog *catalog.Catalog
	log     *slog.Logger
}

// Config holds the dependencies for the codec.
type Config struct {
	Catalog *catalog.Catalog
	Logger  *slog.Logger
}

// Validate ensures all required dependencies are provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Catalog == nil {
		return errors.InvalidArgument("catalog cannot be nil")
	}
	return nil
}

// New creates a new template codec.
func New(cfg *Config) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Codec{catalog: cfg.Catalog, log: log}, nil
}

// Decode parses a template code into slot-keyed records.
//
// Errors carry a coded taxonomy: InvalidArgument for input that is too
// short or structurally malformed, NotFound when the code parses but
// nothing in it resolves against the item catalog. Callers that only care
// about success can treat any non-nil error as "not a template".
func (c *Codec) Decode(code string) (*DecodedTemplate, error) {
	code = strings.TrimSpace(code)
	if len(code) < minCodeLength {
		return nil, errors.InvalidArgument("template code too short")
	}

	records, err := unpack(code)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed template code")
	}

	decoded := &DecodedTemplate{Slots: make(map[gw.EquipmentSlot]*DecodedItem)}
	recognized := false
	for _, rec := range records {
		// Tolerate forward-compatible or partially garbled records.
		if rec.ItemID <= 0 || !rec.Slot.IsValid() {
			continue
		}
		item, ok := c.catalog.Item(rec.ItemID)
		if ok {
			recognized = true
		}
		decoded.Slots[rec.Slot] = &DecodedItem{
			Slot:        rec.Slot,
			ItemID:      rec.ItemID,
			Item:        item,
			Color:       rec.Color,
			ModifierIDs: rec.ModifierIDs,
		}
	}

	// Random base64 noise can decode structurally; require at least one
	// catalog hit before accepting the code as a template.
	if !recognized {
		return nil, errors.NotFound("no recognized items in template code")
	}

	return decoded, nil
}

// Encode packs records into a template code. An empty record list yields
// an empty code and no error: there is nothing to encode. PvE-only
// upgrade ids are stripped silently before packing. Packing failures are
// logged and returned as coded errors; Encode never panics.
func (c *Codec) Encode(records []Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		rec.ModifierIDs = c.stripPvEOnly(rec.ModifierIDs)
		filtered = append(filtered, rec)
	}

	code, err := pack(filtered)
	if err != nil {
		c.log.Warn("failed to pack template code", "error", err)
		return "", errors.Wrap(err, "failed to pack template code")
	}
	return code, nil
}

// stripPvEOnly drops modifier ids whose catalog record is display-only.
// Unrecognized ids pass through untouched.
func (c *Codec) stripPvEOnly(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if mod, ok := c.catalog.Modifier(id); ok && mod.PvEOnly {
			continue
		}
		out = append(out, id)
	}
	return out
}

func unpack(code string) ([]Record, error) {
	r := newBitReader(code)

	header, err := r.read(4)
	if err != nil {
		return nil, err
	}
	if header != templateType {
		return nil, errors.InvalidArgumentf("unknown template type %d", header)
	}
	version, err := r.read(4)
	if err != nil {
		return nil, err
	}
	if version != templateVersion {
		return nil, errors.InvalidArgumentf("unsupported template version %d", version)
	}

	itemBits, err := r.read(4)
	if err != nil {
		return nil, err
	}
	itemBits++
	modBits, err := r.read(4)
	if err != nil {
		return nil, err
	}
	modBits++
	count, err := r.read(3)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		slot, err := r.read(3)
		if err != nil {
			return nil, err
		}
		itemID, err := r.read(itemBits)
		if err != nil {
			return nil, err
		}
		colorID, err := r.read(4)
		if err != nil {
			return nil, err
		}
		modCount, err := r.read(3)
		if err != nil {
			return nil, err
		}
		mods := make([]int, 0, modCount)
		for j := 0; j < modCount; j++ {
			modID, err := r.read(modBits)
			if err != nil {
				return nil, err
			}
			mods = append(mods, modID)
		}
		records = append(records, Record{
			Slot:        gw.EquipmentSlot(slot),
			ItemID:      itemID,
			Color:       gw.DyeColorFromID(colorID),
			ModifierIDs: mods,
		})
	}

	return records, nil
}

func pack(records []Record) (string, error) {
	if len(records) > maxRecords {
		return "", errors.InvalidArgumentf("too many records: %d", len(records))
	}

	maxItemID, maxModID := 1, 1
	for _, rec := range records {
		if rec.ItemID <= 0 || rec.ItemID > maxEncodableID {
			return "", errors.InvalidArgumentf("item id %d out of range", rec.ItemID)
		}
		if !rec.Slot.IsValid() {
			return "", errors.InvalidArgumentf("invalid slot %d", rec.Slot)
		}
		if len(rec.ModifierIDs) > maxModifiersPerItem {
			return "", errors.InvalidArgumentf("too many modifiers on slot %d: %d", rec.Slot, len(rec.ModifierIDs))
		}
		if rec.ItemID > maxItemID {
			maxItemID = rec.ItemID
		}
		for _, id := range rec.ModifierIDs {
			if id <= 0 || id > maxEncodableID {
				return "", errors.InvalidArgumentf("modifier id %d out of range", id)
			}
			if id > maxModID {
				maxModID = id
			}
		}
	}

	itemBits := bitsFor(maxItemID)
	modBits := bitsFor(maxModID)

	w := &bitWriter{}
	fields := []struct {
		value, width int
	}{
		{templateType, 4},
		{templateVersion, 4},
		{itemBits - 1, 4},
		{modBits - 1, 4},
		{len(records), 3},
	}
	for _, f := range fields {
		if err := w.write(f.value, f.width); err != nil {
			return "", err
		}
	}
	for _, rec := range records {
		if err := w.write(int(rec.Slot), 3); err != nil {
			return "", err
		}
		if err := w.write(rec.ItemID, itemBits); err != nil {
			return "", err
		}
		if err := w.write(rec.Color.ID(), 4); err != nil {
			return "", err
		}
		if err := w.write(len(rec.ModifierIDs), 3); err != nil {
			return "", err
		}
		for _, id := range rec.ModifierIDs {
			if err := w.write(id, modBits); err != nil {
				return "", err
			}
		}
	}

	// Tiny record sets can pack below the minimum accepted length. The
	// reader never looks past the declared record count, so zero-value
	// padding characters are inert.
	code := w.String()
	for len(code) < minCodeLength {
		code += string(codeCharset[0])
	}
	return code, nil
}

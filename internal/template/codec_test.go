package template_test

import (
	"crypto/sha256"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gwforge/builds-api/internal/catalog"
	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/errors"
	"github.com/gwforge/builds-api/internal/template"
)

// Known-good codes, decoded by hand against the wire layout.
const (
	// One chest record: placeholder item 501 carrying Rune of Superior
	// Vigor (158) and Survivor Insignia (290).
	chestVigorSurvivorCode = "8Igr6gk9Ig"

	// One chest record referencing item 400, which no catalog knows.
	unknownItemCode = "8IArIAAA"

	// Item 501 on chest plus unknown item 400 on feet.
	mixedItemsCode = "8IBL6gHkAA"

	// War Axe (1) with Sundering (204), of the Axe Master (252), and
	// Strength and Honor (271); Tower Shield (26) with of Fortitude (231).
	axeAndShieldCode = "8EhAINmPyHnQFzg"

	// Chest item 501 dyed blue carrying Rune of Superior Vigor (158).
	dyedChestCode = "8Icr6kZ4"
)

type CodecTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	codec   *template.Codec
}

func (s *CodecTestSuite) SetupSuite() {
	cat, err := catalog.Load()
	s.Require().NoError(err)
	s.catalog = cat

	codec, err := template.New(&template.Config{Catalog: cat})
	s.Require().NoError(err)
	s.codec = codec
}

func (s *CodecTestSuite) TestNewRequiresCatalog() {
	_, err := template.New(&template.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CodecTestSuite) TestDecodeKnownCode() {
	decoded, err := s.codec.Decode(chestVigorSurvivorCode)
	s.Require().NoError(err)
	s.Require().Len(decoded.Slots, 1)

	item := decoded.Slots[gw.SlotChest]
	s.Require().NotNil(item)
	s.Equal(501, item.ItemID)
	s.Require().NotNil(item.Item)
	s.Equal(gw.CategoryArmor, item.Item.Category)
	s.Equal(gw.DyeDefault, item.Color)
	s.Equal([]int{158, 290}, item.ModifierIDs)
}

func (s *CodecTestSuite) TestDecodeTrimsWhitespace() {
	decoded, err := s.codec.Decode("  " + chestVigorSurvivorCode + "\n")
	s.Require().NoError(err)
	s.Len(decoded.Slots, 1)
}

func (s *CodecTestSuite) TestDecodeTooShort() {
	_, err := s.codec.Decode("8Igr6")
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CodecTestSuite) TestDecodeInvalidCharacter() {
	_, err := s.codec.Decode("8Igr6gk9I!")
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CodecTestSuite) TestDecodeWrongTemplateType() {
	// A zero header byte is not an equipment template.
	_, err := s.codec.Decode("AAAAAAAAAA")
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CodecTestSuite) TestDecodeNoRecognizedItems() {
	_, err := s.codec.Decode(unknownItemCode)
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CodecTestSuite) TestDecodeRejectsRandomNoise() {
	// Deterministic noise: 256 code-alphabet strings of length 8-20
	// derived from sha256, covering wrong headers, truncated records,
	// and structurally parseable codes with no catalog hits.
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for i := 0; i < 256; i++ {
		sum := sha256.Sum256([]byte("noise-" + strconv.Itoa(i)))
		n := 8 + int(sum[0])%13
		buf := make([]byte, n)
		for j := 0; j < n; j++ {
			buf[j] = charset[int(sum[j+1])%64]
		}
		code := string(buf)

		_, err := s.codec.Decode(code)
		s.Require().Errorf(err, "noise code %q decoded", code)
		s.Require().Truef(errors.IsInvalidArgument(err) || errors.IsNotFound(err),
			"noise code %q produced unexpected error %v", code, err)
	}
}

func (s *CodecTestSuite) TestDecodeKeepsUnrecognizedItems() {
	// One catalog hit is enough to accept the code; the unknown record
	// survives as raw data.
	decoded, err := s.codec.Decode(mixedItemsCode)
	s.Require().NoError(err)
	s.Require().Len(decoded.Slots, 2)

	known := decoded.Slots[gw.SlotChest]
	s.Require().NotNil(known)
	s.NotNil(known.Item)

	unknown := decoded.Slots[gw.SlotFeet]
	s.Require().NotNil(unknown)
	s.Equal(400, unknown.ItemID)
	s.Nil(unknown.Item)
}

func (s *CodecTestSuite) TestDecodeDyeColor() {
	decoded, err := s.codec.Decode(dyedChestCode)
	s.Require().NoError(err)

	item := decoded.Slots[gw.SlotChest]
	s.Require().NotNil(item)
	s.Equal(gw.DyeBlue, item.Color)
	s.Equal([]int{158}, item.ModifierIDs)
}

func (s *CodecTestSuite) TestEncodeKnownCode() {
	code, err := s.codec.Encode([]template.Record{{
		Slot:        gw.SlotChest,
		ItemID:      501,
		Color:       gw.DyeDefault,
		ModifierIDs: []int{158, 290},
	}})
	s.Require().NoError(err)
	s.Equal(chestVigorSurvivorCode, code)
}

func (s *CodecTestSuite) TestEncodeEmpty() {
	code, err := s.codec.Encode(nil)
	s.Require().NoError(err)
	s.Equal("", code)
}

func (s *CodecTestSuite) TestEncodeStripsPvEOnly() {
	withPvE, err := s.codec.Encode([]template.Record{{
		Slot:        gw.SlotMainHand,
		ItemID:      1,
		ModifierIDs: []int{204, 60002},
	}})
	s.Require().NoError(err)

	without, err := s.codec.Encode([]template.Record{{
		Slot:        gw.SlotMainHand,
		ItemID:      1,
		ModifierIDs: []int{204},
	}})
	s.Require().NoError(err)
	s.Equal(without, withPvE)

	decoded, err := s.codec.Decode(withPvE)
	s.Require().NoError(err)
	s.Equal([]int{204}, decoded.Slots[gw.SlotMainHand].ModifierIDs)
}

func (s *CodecTestSuite) TestEncodeRejectsTooManyRecords() {
	records := make([]template.Record, 8)
	for i := range records {
		records[i] = template.Record{Slot: gw.SlotChest, ItemID: 501}
	}
	_, err := s.codec.Encode(records)
	s.Error(err)
}

func (s *CodecTestSuite) TestEncodeRejectsBadRecord() {
	cases := []struct {
		name   string
		record template.Record
	}{
		{"zero item id", template.Record{Slot: gw.SlotChest}},
		{"invalid slot", template.Record{Slot: gw.EquipmentSlot(7), ItemID: 501}},
		{"too many modifiers", template.Record{
			Slot:        gw.SlotChest,
			ItemID:      501,
			ModifierIDs: []int{1, 2, 3, 4, 5, 6, 7, 8},
		}},
		{"modifier id out of range", template.Record{
			Slot:        gw.SlotChest,
			ItemID:      501,
			ModifierIDs: []int{70000},
		}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.codec.Encode([]template.Record{tc.record})
			s.Error(err)
		})
	}
}

func (s *CodecTestSuite) TestEncodePadsShortCodes() {
	code, err := s.codec.Encode([]template.Record{{Slot: gw.SlotMainHand, ItemID: 1}})
	s.Require().NoError(err)
	s.GreaterOrEqual(len(code), 8)

	decoded, err := s.codec.Decode(code)
	s.Require().NoError(err)
	s.Len(decoded.Slots, 1)
}

func (s *CodecTestSuite) TestRoundTrip() {
	records := []template.Record{
		{Slot: gw.SlotMainHand, ItemID: 1, Color: gw.DyeRed, ModifierIDs: []int{204, 252, 271}},
		{Slot: gw.SlotOffHand, ItemID: 26, ModifierIDs: []int{231}},
		{Slot: gw.SlotChest, ItemID: 501, ModifierIDs: []int{158, 290}},
		{Slot: gw.SlotHead, ItemID: 504, ModifierIDs: []int{1000, 291}},
	}

	code, err := s.codec.Encode(records)
	s.Require().NoError(err)

	decoded, err := s.codec.Decode(code)
	s.Require().NoError(err)
	s.Require().Len(decoded.Slots, len(records))

	for _, rec := range records {
		got := decoded.Slots[rec.Slot]
		s.Require().NotNil(got, "slot %s missing", rec.Slot)
		s.Equal(rec.ItemID, got.ItemID)
		s.Equal(rec.Color.ID(), got.Color.ID())
		s.Equal(rec.ModifierIDs, got.ModifierIDs)
	}
}

func (s *CodecTestSuite) TestDecodeWeaponCode() {
	decoded, err := s.codec.Decode(axeAndShieldCode)
	s.Require().NoError(err)

	main := decoded.MainHand()
	s.Require().NotNil(main)
	s.Equal(1, main.ItemID)
	s.Equal([]int{204, 252, 271}, main.ModifierIDs)

	off := decoded.OffHand()
	s.Require().NotNil(off)
	s.Equal(26, off.ItemID)
	s.Equal([]int{231}, off.ModifierIDs)
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

// Package build defines the interface for build operations
package build

import (
	"context"

	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/stats"
	"github.com/gwforge/builds-api/internal/template"
	"github.com/gwforge/builds-api/internal/validation"
)

// Service defines the interface for build operations
type Service interface {
	// Build lifecycle
	CreateBuild(ctx context.Context, input *CreateBuildInput) (*CreateBuildOutput, error)
	GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error)
	UpdateBuild(ctx context.Context, input *UpdateBuildInput) (*UpdateBuildOutput, error)
	DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error)
	ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error)

	// Template codes
	DecodeTemplate(ctx context.Context, input *DecodeTemplateInput) (*DecodeTemplateOutput, error)
	EncodeEquipment(ctx context.Context, input *EncodeEquipmentInput) (*EncodeEquipmentOutput, error)

	// Armor validation
	ValidateArmor(ctx context.Context, input *ValidateArmorInput) (*ValidateArmorOutput, error)
	ClearInvalidArmor(ctx context.Context, input *ClearInvalidArmorInput) (*ClearInvalidArmorOutput, error)

	// Stats
	CalculateStats(ctx context.Context, input *CalculateStatsInput) (*CalculateStatsOutput, error)
}

// CreateBuildInput defines the request for creating a build
type CreateBuildInput struct {
	PlayerID  string
	Name      string
	Primary   gw.Profession
	Secondary gw.Profession // Optional
	Equipment *gw.Equipment // Optional; an empty loadout is created if nil
}

// CreateBuildOutput defines the response for creating a build
type CreateBuildOutput struct {
	Build *gw.Build
}

// GetBuildInput defines the request for getting a build
type GetBuildInput struct {
	BuildID string
}

// GetBuildOutput defines the response for getting a build
type GetBuildOutput struct {
	Build *gw.Build
}

// UpdateBuildInput defines the request for updating a build
type UpdateBuildInput struct {
	Build *gw.Build
}

// UpdateBuildOutput defines the response for updating a build
type UpdateBuildOutput struct {
	Build *gw.Build
}

// DeleteBuildInput defines the request for deleting a build
type DeleteBuildInput struct {
	BuildID string
}

// DeleteBuildOutput defines the response for deleting a build
type DeleteBuildOutput struct {
	Message string
}

// ListBuildsInput defines the request for listing a player's builds
type ListBuildsInput struct {
	PlayerID string
}

// ListBuildsOutput defines the response for listing a player's builds
type ListBuildsOutput struct {
	Builds []*gw.Build
}

// DecodeTemplateInput defines the request for decoding a template code
type DecodeTemplateInput struct {
	Code string
}

// DecodeTemplateOutput defines the response for decoding a template code.
// MainHand and OffHand are the classified weapon configs for the weapon
// slots, Armor holds the projected rune/insignia selections.
type DecodeTemplateOutput struct {
	Decoded  *template.DecodedTemplate
	MainHand *gw.WeaponConfig
	OffHand  *gw.WeaponConfig
	Armor    *gw.ArmorSetConfig
}

// EncodeEquipmentInput defines the request for encoding equipment
type EncodeEquipmentInput struct {
	MainHand *gw.WeaponConfig   // Optional
	OffHand  *gw.WeaponConfig   // Optional
	Armor    *gw.ArmorSetConfig // Optional
}

// EncodeEquipmentOutput defines the response for encoding equipment.
// Code is empty when there was nothing to encode.
type EncodeEquipmentOutput struct {
	Code string
}

// ValidateArmorInput defines the request for validating armor
type ValidateArmorInput struct {
	Armor   *gw.ArmorSetConfig
	Primary gw.Profession
}

// ValidateArmorOutput defines the response for validating armor
type ValidateArmorOutput struct {
	Findings []validation.Finding
}

// ClearInvalidArmorInput defines the request for clearing invalid armor
type ClearInvalidArmorInput struct {
	Armor   *gw.ArmorSetConfig
	Primary gw.Profession
}

// ClearInvalidArmorOutput defines the response for clearing invalid armor
type ClearInvalidArmorOutput struct {
	Armor    *gw.ArmorSetConfig
	Findings []validation.Finding
}

// CalculateStatsInput defines the request for computing stats
type CalculateStatsInput struct {
	Armor     *gw.ArmorSetConfig
	WeaponSet *gw.WeaponSet
	BaseRanks map[gw.Attribute]int // Optional
}

// CalculateStatsOutput defines the response for computing stats
type CalculateStatsOutput struct {
	Breakdown      stats.Breakdown
	EffectiveRanks map[gw.Attribute]int
	ArmorStats     stats.ArmorStats
}

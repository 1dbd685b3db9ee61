// Package build implements the build orchestrator
package build

import (
	"context"
	"fmt"

	"github.com/gwforge/builds-api/internal/catalog"
	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/errors"
	"github.com/gwforge/builds-api/internal/pkg/idgen"
	buildrepo "github.com/gwforge/builds-api/internal/repositories/build"
	buildsvc "github.com/gwforge/builds-api/internal/services/build"
	"github.com/gwforge/builds-api/internal/stats"
	"github.com/gwforge/builds-api/internal/template"
	"github.com/gwforge/builds-api/internal/validation"
)

// Config holds the dependencies for the build orchestrator
type Config struct {
	BuildRepo   buildrepo.Repository
	Catalog     *catalog.Catalog
	Codec       *template.Codec
	Validator   *validation.Validator
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Codec == nil {
		vb.RequiredField("Codec")
	}
	if c.Validator == nil {
		vb.RequiredField("Validator")
	}

	return vb.Build()
}

// Orchestrator implements the build.Service interface
type Orchestrator struct {
	buildRepo   buildrepo.Repository
	catalog     *catalog.Catalog
	codec       *template.Codec
	validator   *validation.Validator
	idGenerator idgen.Generator
}

// New creates a new build orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewPrefixed("build")
	}

	return &Orchestrator{
		buildRepo:   cfg.BuildRepo,
		catalog:     cfg.Catalog,
		codec:       cfg.Codec,
		validator:   cfg.Validator,
		idGenerator: gen,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ buildsvc.Service = (*Orchestrator)(nil)

// Build lifecycle methods

// CreateBuild creates a new build for a player
func (o *Orchestrator) CreateBuild(ctx context.Context, input *buildsvc.CreateBuildInput) (*buildsvc.CreateBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if input.Primary == "" {
		vb.RequiredField("primary")
	} else if o.catalog.ProfessionAttributes(input.Primary) == nil {
		vb.InvalidField("primary", "unknown profession")
	}
	if input.Secondary != "" && o.catalog.ProfessionAttributes(input.Secondary) == nil {
		vb.InvalidField("secondary", "unknown profession")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	equipment := input.Equipment
	if equipment == nil {
		equipment = gw.NewEquipment()
	}

	b := &gw.Build{
		ID:        o.idGenerator.Generate(),
		PlayerID:  input.PlayerID,
		Name:      input.Name,
		Primary:   input.Primary,
		Secondary: input.Secondary,
		Equipment: equipment,
	}

	created, err := o.buildRepo.Create(ctx, buildrepo.CreateInput{BuildData: dehydrateBuild(b)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create build")
	}

	out, err := o.hydrateBuild(created.BuildData)
	if err != nil {
		return nil, err
	}
	return &buildsvc.CreateBuildOutput{Build: out}, nil
}

// GetBuild retrieves a build by ID
func (o *Orchestrator) GetBuild(ctx context.Context, input *buildsvc.GetBuildInput) (*buildsvc.GetBuildOutput, error) {
	if input == nil || input.BuildID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	got, err := o.buildRepo.Get(ctx, buildrepo.GetInput{ID: input.BuildID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get build %s", input.BuildID)
	}

	b, err := o.hydrateBuild(got.BuildData)
	if err != nil {
		return nil, err
	}
	return &buildsvc.GetBuildOutput{Build: b}, nil
}

// UpdateBuild persists changes to an existing build
func (o *Orchestrator) UpdateBuild(ctx context.Context, input *buildsvc.UpdateBuildInput) (*buildsvc.UpdateBuildOutput, error) {
	if input == nil || input.Build == nil {
		return nil, errors.InvalidArgument("build is required")
	}
	if input.Build.ID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	updated, err := o.buildRepo.Update(ctx, buildrepo.UpdateInput{BuildData: dehydrateBuild(input.Build)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update build %s", input.Build.ID)
	}

	b, err := o.hydrateBuild(updated.BuildData)
	if err != nil {
		return nil, err
	}
	return &buildsvc.UpdateBuildOutput{Build: b}, nil
}

// DeleteBuild removes a build
func (o *Orchestrator) DeleteBuild(ctx context.Context, input *buildsvc.DeleteBuildInput) (*buildsvc.DeleteBuildOutput, error) {
	if input == nil || input.BuildID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	if _, err := o.buildRepo.Delete(ctx, buildrepo.DeleteInput{ID: input.BuildID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete build %s", input.BuildID)
	}

	return &buildsvc.DeleteBuildOutput{Message: fmt.Sprintf("build %s deleted", input.BuildID)}, nil
}

// ListBuilds retrieves all builds for a player
func (o *Orchestrator) ListBuilds(ctx context.Context, input *buildsvc.ListBuildsInput) (*buildsvc.ListBuildsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listed, err := o.buildRepo.ListByPlayerID(ctx, buildrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list builds for player %s", input.PlayerID)
	}

	builds := make([]*gw.Build, 0, len(listed.Builds))
	for _, data := range listed.Builds {
		b, err := o.hydrateBuild(data)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	return &buildsvc.ListBuildsOutput{Builds: builds}, nil
}

// Template code methods

// DecodeTemplate decodes a template code into weapon and armor selections
func (o *Orchestrator) DecodeTemplate(ctx context.Context, input *buildsvc.DecodeTemplateInput) (*buildsvc.DecodeTemplateOutput, error) {
	if input == nil || input.Code == "" {
		return nil, errors.InvalidArgument("template code is required")
	}

	decoded, err := o.codec.Decode(input.Code)
	if err != nil {
		return nil, err
	}

	armor, err := o.codec.DecodeArmorSet(input.Code)
	if err != nil {
		return nil, err
	}

	out := &buildsvc.DecodeTemplateOutput{Decoded: decoded, Armor: armor}
	if item := decoded.MainHand(); item != nil {
		out.MainHand = o.codec.ToWeaponConfig(item)
	}
	if item := decoded.OffHand(); item != nil {
		out.OffHand = o.codec.ToWeaponConfig(item)
	}
	return out, nil
}

// EncodeEquipment encodes weapon and armor selections into a template code
func (o *Orchestrator) EncodeEquipment(ctx context.Context, input *buildsvc.EncodeEquipmentInput) (*buildsvc.EncodeEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	code, err := o.codec.EncodeFullEquipment(input.MainHand, input.OffHand, input.Armor)
	if err != nil {
		return nil, err
	}
	return &buildsvc.EncodeEquipmentOutput{Code: code}, nil
}

// Armor validation methods

// ValidateArmor flags armor items illegal for the primary profession
func (o *Orchestrator) ValidateArmor(ctx context.Context, input *buildsvc.ValidateArmorInput) (*buildsvc.ValidateArmorOutput, error) {
	if input == nil || input.Primary == "" {
		return nil, errors.InvalidArgument("primary profession is required")
	}

	findings := o.validator.ValidateArmor(input.Armor, input.Primary)
	return &buildsvc.ValidateArmorOutput{Findings: findings}, nil
}

// ClearInvalidArmor removes flagged armor items and reports what was removed
func (o *Orchestrator) ClearInvalidArmor(ctx context.Context, input *buildsvc.ClearInvalidArmorInput) (*buildsvc.ClearInvalidArmorOutput, error) {
	if input == nil || input.Primary == "" {
		return nil, errors.InvalidArgument("primary profession is required")
	}

	findings := o.validator.ValidateArmor(input.Armor, input.Primary)
	cleared := validation.ClearInvalid(input.Armor, findings)
	return &buildsvc.ClearInvalidArmorOutput{Armor: cleared, Findings: findings}, nil
}

// Stats methods

// CalculateStats computes attribute bonuses, effective ranks, and armor totals
func (o *Orchestrator) CalculateStats(ctx context.Context, input *buildsvc.CalculateStatsInput) (*buildsvc.CalculateStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	breakdown := stats.Combine(
		stats.ArmorAttributeBonuses(input.Armor),
		stats.WeaponFloors(input.WeaponSet),
	)

	effective := make(map[gw.Attribute]int, len(breakdown))
	for attr, bonuses := range breakdown {
		effective[attr] = stats.EffectiveRank(input.BaseRanks[attr], bonuses)
	}

	return &buildsvc.CalculateStatsOutput{
		Breakdown:      breakdown,
		EffectiveRanks: effective,
		ArmorStats:     stats.CalculateArmorStats(input.Armor),
	}, nil
}

// Package build provides the interface for build persistence
package build

//go:generate mockgen -destination=mock/mock_repository.go -package=buildmock github.com/gwforge/builds-api/internal/repositories/build Repository

import (
	"context"
)

// Repository defines the interface for build persistence
type Repository interface {
	// Create creates a new build
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a build with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a build by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update updates an existing build
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a build by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all builds for a player
	// Returns errors.InvalidArgument for empty/invalid player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a build
type CreateInput struct {
	BuildData *Data
}

// CreateOutput defines the output for creating a build
type CreateOutput struct {
	BuildData *Data
}

// GetInput defines the input for getting a build
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a build
type GetOutput struct {
	BuildData *Data
}

// UpdateInput defines the input for updating a build
type UpdateInput struct {
	BuildData *Data
}

// UpdateOutput defines the output for updating a build
type UpdateOutput struct {
	BuildData *Data
}

// DeleteInput defines the input for deleting a build
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a build
type DeleteOutput struct {
}

// ListByPlayerIDInput defines the input for listing builds by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing builds by player
type ListByPlayerIDOutput struct {
	Builds []*Data
}

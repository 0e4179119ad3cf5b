// Package pokedex provides the interface for cached Pokémon persistence
package pokedex

import (
	"context"

	"github.com/teamvirrey/meetup-announcer/internal/entities/pokemon"
)

// Repository defines the interface for the Pokémon data cache
type Repository interface {
	// Put stores a record, overwriting any prior record with the same ID.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves a record by numeric ID or exact name (case-insensitive)
	// Returns errors.InvalidArgument for empty keys
	// Returns errors.NotFound on a cache miss
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Search finds records whose names contain the partial name,
	// case-insensitively, sorted by name
	// Returns errors.InvalidArgument for an empty partial name
	// Returns errors.Internal for storage failures
	Search(ctx context.Context, input SearchInput) (*SearchOutput, error)

	// List returns cached records sorted by name
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a record by ID
	// Returns errors.NotFound if no record has the ID
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Clear removes every cached record
	// Returns errors.Internal for storage failures
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)

	// Stats reports cache counters
	// Returns errors.Internal for storage failures
	Stats(ctx context.Context, input StatsInput) (*StatsOutput, error)
}

// PutInput defines the input for storing a record
type PutInput struct {
	Record *pokemon.Record
}

// PutOutput defines the output for storing a record
type PutOutput struct {
	Record *pokemon.Record
}

// GetInput defines the input for a cache lookup
type GetInput struct {
	// IDOrName is a numeric Pokédex ID or an exact Pokémon name
	IDOrName string
}

// GetOutput defines the output for a cache lookup
type GetOutput struct {
	Record *pokemon.Record
}

// SearchInput defines the input for a partial-name search
type SearchInput struct {
	PartialName string
	// Limit caps the number of results; zero means no cap
	Limit int
}

// SearchOutput defines the output for a partial-name search
type SearchOutput struct {
	Records []*pokemon.Record
}

// ListInput defines the input for listing cached records
type ListInput struct {
	// Limit caps the number of results; zero means no cap
	Limit int
}

// ListOutput defines the output for listing cached records
type ListOutput struct {
	Records []*pokemon.Record
}

// DeleteInput defines the input for deleting a record
type DeleteInput struct {
	ID int
}

// DeleteOutput defines the output for deleting a record
type DeleteOutput struct{}

// ClearInput defines the input for clearing the cache
type ClearInput struct{}

// ClearOutput defines the output for clearing the cache
type ClearOutput struct {
	// Deleted is the number of records removed
	Deleted int
}

// StatsInput defines the input for cache statistics
type StatsInput struct{}

// StatsOutput defines the output for cache statistics
type StatsOutput struct {
	// Count is the number of cached records
	Count int
}

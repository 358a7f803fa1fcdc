package catalog

import "context"

// Repository provides access to the user-extended diagnosis list.
type Repository interface {
	// List returns every custom diagnosis name, sorted.
	List(ctx context.Context) ([]string, error)
	// Add inserts a new custom diagnosis and notifies subscribers.
	Add(ctx context.Context, name, createdBy string) (*CustomDiagnosis, error)
}

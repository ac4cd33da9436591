package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Dimension validation errors
var (
	ErrDimensionIDEmpty   = errors.New("dimension ID cannot be empty")
	ErrDimensionNameEmpty = errors.New("dimension name cannot be empty")
)

// Dimension is a scoring category (e.g. "Health") grouping related questions.
// Questions reference their dimension by ID; the dimension does not contain
// them.
type Dimension struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// NewDimension creates a Dimension with a fresh UUID.
// Returns an error if validation fails.
func NewDimension(name, description string) (*Dimension, error) {
	d := &Dimension{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks if the Dimension has valid data.
func (d *Dimension) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDimensionIDEmpty
	}

	if d.Name == "" {
		return ErrDimensionNameEmpty
	}

	return nil
}

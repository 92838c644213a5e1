package store

import (
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPlaceholderImage = "https://placehold.co/125/png"
	DefaultDescription      = "No description provided"
	maxIDAttempts           = 5
)

// Options configures a Store. Zero values fall back to the package defaults.
type Options struct {
	// PlaceholderImage is used when a product is created without an image.
	PlaceholderImage string
	// DefaultDescription is used when a product description is blank.
	DefaultDescription string
	// NewID returns a fresh product identifier. Defaults to a random UUID.
	NewID func() string
}

// WithDefaults fills unset options with the package defaults.
func (o Options) WithDefaults() Options {
	if strings.TrimSpace(o.PlaceholderImage) == "" {
		o.PlaceholderImage = DefaultPlaceholderImage
	}
	if strings.TrimSpace(o.DefaultDescription) == "" {
		o.DefaultDescription = DefaultDescription
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

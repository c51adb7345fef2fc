package domain

import (
	"context"
	"errors"
)

// ArchiveConfirmationPhrase is the literal an administrator must type before
// a product can be hidden from the storefront.
const ArchiveConfirmationPhrase = "ARCHIVE"

type Service interface {
	// Load replaces the in-process collection with the store's contents.
	Load(ctx context.Context) error

	List(ctx context.Context, req ListRequest) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)

	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Update(ctx context.Context, req UpdateRequest) (*Product, error)
	Archive(ctx context.Context, id string, confirm ArchiveConfirmation) (*Product, error)
	Restore(ctx context.Context, id string) (*Product, error)
	Purge(ctx context.Context, id string) error
}

type ListRequest struct {
	Category        Category
	Query           string
	IncludeArchived bool
}

type CreateRequest struct {
	ID            string
	Name          string
	SKU           *string
	Category      Category
	Description   string
	Images        []string
	Video         *string
	Price         float64
	Weight        *float64
	Purity        *Purity
	Stock         *int
	MakingCharges *float64
}

// UpdateRequest carries full replacement values, matching the store's
// replace semantics. DeletedAt always carries over from the stored product;
// only Archive and Restore move it.
type UpdateRequest struct {
	ID            string
	Name          string
	SKU           *string
	Category      Category
	Description   string
	Images        []string
	Video         *string
	Price         float64
	Weight        *float64
	Purity        *Purity
	Stock         *int
	MakingCharges *float64
}

type ArchiveConfirmation struct {
	Phrase   string
	Password string
}

// CredentialVerifier re-checks the acting user's password at the moment of
// archiving.
type CredentialVerifier interface {
	VerifyPassword(ctx context.Context, email, password string) error
}

var (
	ErrNotFound             = errors.New("not_found")
	ErrInvalidID            = errors.New("invalid_id")
	ErrInvalidName          = errors.New("invalid_name")
	ErrInvalidCategory      = errors.New("invalid_category")
	ErrInvalidPrice         = errors.New("invalid_price")
	ErrNotActive            = errors.New("not_active")
	ErrNotArchived          = errors.New("not_archived")
	ErrConfirmationMismatch = errors.New("confirmation_mismatch")
	ErrPasswordMismatch     = errors.New("password_mismatch")
	ErrNoActor              = errors.New("no_actor")
	ErrDuplicateID          = errors.New("duplicate_id")
)

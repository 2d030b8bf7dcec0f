package interfaces

import (
	"context"

	"espaco_castro/internal/domain/entities"
)

// IInquiryRepository abstracts DynamoDB persistence for Inquiry.
//
// Conventions:
//   - Lookups that miss return the zero Inquiry and a nil error; the use case
//     layer maps that to a not-found condition.
//   - List returns newest-first (created_at descending, id as tie-break).
//     That ordering is the only one callers may rely on.
//   - Delete is idempotent: deleting an absent id is not an error.

type IInquiryRepository interface {
	Create(ctx context.Context, inquiry entities.Inquiry) (entities.Inquiry, error)
	List(ctx context.Context) ([]entities.Inquiry, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, completed bool) (entities.Inquiry, error)
}

package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"uplinepay/internal/store"

	"github.com/google/uuid"
)

// MemberStore defines the database operations required by the member
// processor
type MemberStore interface {
	CreateMember(ctx context.Context, params store.CreateMemberParams) (store.Member, error)
	GetMemberByID(ctx context.Context, memberID uuid.UUID) (store.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (store.Member, error)
	GetIncomeEntriesByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID, limit, offset int) ([]store.IncomeEntry, error)
}

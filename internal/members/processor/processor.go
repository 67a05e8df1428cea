package processor

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"uplinepay/internal/observability"
	"uplinepay/internal/store"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrSponsorNotFound = errors.New("sponsor not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidEmail    = errors.New("invalid email")
)

const incomeHistoryPageSize = 50

// MemberProcessor handles member registration and profile reads.
type MemberProcessor struct {
	store  MemberStore
	logger *observability.Logger
}

// New creates a new MemberProcessor
func New(store MemberStore, logger *observability.Logger) *MemberProcessor {
	return &MemberProcessor{store: store, logger: logger}
}

// RegisterParams holds the input for member registration.
type RegisterParams struct {
	Email     string
	FirstName string
	LastName  string
	SponsorID *uuid.UUID
}

// Register creates a new inactive member, linked under the given
// sponsor when one is supplied.
func (p *MemberProcessor) Register(ctx context.Context, params RegisterParams) (store.Member, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return store.Member{}, ErrInvalidEmail
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	if params.SponsorID != nil {
		if _, err := p.store.GetMemberByID(ctx, *params.SponsorID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.Member{}, ErrSponsorNotFound
			}
			p.logger.Error(ctx, "failed to look up sponsor", err)
			return store.Member{}, err
		}
	}

	member, err := p.store.CreateMember(ctx, store.CreateMemberParams{
		Email:     email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		SponsorID: params.SponsorID,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return store.Member{}, ErrEmailTaken
		}
		p.logger.Error(ctx, "failed to create member", err)
		return store.Member{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "member_id", Value: member.ID.String()})
	p.logger.Info(ctx, "member registered")
	return member, nil
}

// Get retrieves one member's profile, balances included.
func (p *MemberProcessor) Get(ctx context.Context, memberID uuid.UUID) (store.Member, error) {
	member, err := p.store.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Member{}, ErrMemberNotFound
		}
		p.logger.Error(ctx, "failed to get member", err)
		return store.Member{}, err
	}
	return member, nil
}

// IncomeHistory retrieves a page of the member's income entries,
// newest first.
func (p *MemberProcessor) IncomeHistory(ctx context.Context, memberID uuid.UUID, page int) ([]store.IncomeEntry, error) {
	if page < 0 {
		page = 0
	}
	entries, err := p.store.GetIncomeEntriesByBeneficiary(ctx, memberID, incomeHistoryPageSize, page*incomeHistoryPageSize)
	if err != nil {
		p.logger.Error(ctx, "failed to get income history", err)
		return nil, err
	}
	if entries == nil {
		entries = []store.IncomeEntry{}
	}
	return entries, nil
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/worklane/worklane/internal/domain/account"
	"github.com/worklane/worklane/internal/domain/hiring"
	"github.com/worklane/worklane/internal/domain/posting"
	"github.com/worklane/worklane/internal/domain/proposal"
)

var (
	_ account.Repository    = (*AccountRepository)(nil)
	_ posting.Repository    = (*PostingRepository)(nil)
	_ proposal.Repository   = (*ProposalRepository)(nil)
	_ hiring.HireRepository = (*HireRepository)(nil)
)

// AccountRepository is a mock for account.Repository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, acct *account.Account) error {
	args := m.Called(ctx, acct)
	return args.Error(0)
}

func (m *AccountRepository) Get(ctx context.Context, id string) (*account.Account, error) {
	args := m.Called(ctx, id)
	if acct, ok := args.Get(0).(*account.Account); ok {
		return acct, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if acct, ok := args.Get(0).(*account.Account); ok {
		return acct, args.Error(1)
	}
	return nil, args.Error(1)
}

// PostingRepository is a mock for posting.Repository.
type PostingRepository struct {
	mock.Mock
}

func (m *PostingRepository) Create(ctx context.Context, p *posting.Posting) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PostingRepository) Get(ctx context.Context, id string) (*posting.Posting, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*posting.Posting); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostingRepository) List(ctx context.Context, opts posting.ListOptions) ([]posting.Posting, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]posting.Posting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProposalRepository is a mock for proposal.Repository.
type ProposalRepository struct {
	mock.Mock
}

func (m *ProposalRepository) Create(ctx context.Context, p *proposal.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProposalRepository) Get(ctx context.Context, id string) (*proposal.Proposal, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*proposal.Proposal); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProposalRepository) ListForPosting(ctx context.Context, postingID string) ([]proposal.Detail, error) {
	args := m.Called(ctx, postingID)
	if list, ok := args.Get(0).([]proposal.Detail); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProposalRepository) ListByProposer(ctx context.Context, proposerID string) ([]proposal.WithPosting, error) {
	args := m.Called(ctx, proposerID)
	if list, ok := args.Get(0).([]proposal.WithPosting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// HireRepository is a mock for hiring.HireRepository.
type HireRepository struct {
	mock.Mock
}

func (m *HireRepository) CommitHire(ctx context.Context, postingID, proposalID string) (*posting.Posting, *proposal.Proposal, error) {
	args := m.Called(ctx, postingID, proposalID)
	var p *posting.Posting
	var prop *proposal.Proposal
	if v, ok := args.Get(0).(*posting.Posting); ok {
		p = v
	}
	if v, ok := args.Get(1).(*proposal.Proposal); ok {
		prop = v
	}
	return p, prop, args.Error(2)
}

package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type AddTransactionInput struct {
	TeamID int64
	kickoffsdk.TransactionInput
}

type DeleteTransactionInput struct {
	TeamID        int64
	TransactionID int64
}

type FinanceHooks struct {
	svc   *kickoffsdk.FinanceService
	cache *querycache.Store

	AddTransaction    *Mutation[AddTransactionInput, *kickoffsdk.Transaction]
	DeleteTransaction *Mutation[DeleteTransactionInput, None]
}

func newFinanceHooks(svc *kickoffsdk.FinanceService, cache *querycache.Store) *FinanceHooks {
	h := &FinanceHooks{svc: svc, cache: cache}

	h.AddTransaction = newMutation("finance.add_transaction",
		func(ctx context.Context, in AddTransactionInput) (*kickoffsdk.Transaction, error) {
			return svc.AddTransaction(ctx, in.TeamID, in.TransactionInput)
		},
		func(ctx context.Context, in AddTransactionInput, _ *kickoffsdk.Transaction) {
			invalidate(ctx, cache, FinanceKeys.Team(in.TeamID))
		},
	)

	h.DeleteTransaction = newMutation("finance.delete_transaction",
		func(ctx context.Context, in DeleteTransactionInput) (None, error) {
			return None{}, svc.DeleteTransaction(ctx, in.TeamID, in.TransactionID)
		},
		func(ctx context.Context, in DeleteTransactionInput, _ None) {
			invalidate(ctx, cache, FinanceKeys.Team(in.TeamID))
		},
	)

	return h
}

func (h *FinanceHooks) Summary(ctx context.Context, teamID int64) QueryResult[*kickoffsdk.FinanceSummary] {
	return query(ctx, h.cache, FinanceKeys.Summary(teamID), teamID != 0, func(ctx context.Context) (*kickoffsdk.FinanceSummary, error) {
		return h.svc.Summary(ctx, teamID)
	})
}

func (h *FinanceHooks) Transactions(ctx context.Context, teamID int64, p kickoffsdk.ListParams) QueryResult[*kickoffsdk.Page[kickoffsdk.Transaction]] {
	return query(ctx, h.cache, FinanceKeys.Transactions(teamID, p), teamID != 0, func(ctx context.Context) (*kickoffsdk.Page[kickoffsdk.Transaction], error) {
		return h.svc.Transactions(ctx, teamID, p)
	})
}

package kickoffsdk

import (
	"context"
	"net/http"
)

type FinanceService struct {
	c *Client
}

func financePath(teamID int64) string {
	return pathf("/teams", teamID) + "/finance"
}

func (s *FinanceService) Summary(ctx context.Context, teamID int64) (*FinanceSummary, error) {
	var out FinanceSummary
	if err := s.c.getJSON(ctx, financePath(teamID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transactions returns a page of a team's ledger. The backend provides the envelope.
func (s *FinanceService) Transactions(ctx context.Context, teamID int64, p ListParams) (*Page[Transaction], error) {
	var out Page[Transaction]
	if err := s.c.getJSON(ctx, financePath(teamID)+"/transactions", p.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceService) AddTransaction(ctx context.Context, teamID int64, in TransactionInput) (*Transaction, error) {
	var out Transaction
	if err := s.c.sendJSON(ctx, http.MethodPost, financePath(teamID)+"/transactions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceService) DeleteTransaction(ctx context.Context, teamID, transactionID int64) error {
	path := pathf(financePath(teamID)+"/transactions", transactionID)
	return s.c.sendJSON(ctx, http.MethodDelete, path, nil, nil)
}

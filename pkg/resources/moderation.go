package resources

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type ResolveReportInput struct {
	ID     int64
	Action kickoffsdk.ReportAction
	Note   string
}

type BanUserInput struct {
	UserID int64
	Reason string
}

type VerifyInput struct {
	ID      int64
	Approve bool
}

type ModerationHooks struct {
	svc   *kickoffsdk.ModerationService
	cache *querycache.Store

	ResolveReport *Mutation[ResolveReportInput, *kickoffsdk.Report]
	BanUser       *Mutation[BanUserInput, None]
	VerifyTeam    *Mutation[VerifyInput, *kickoffsdk.Team]
	VerifyField   *Mutation[VerifyInput, *kickoffsdk.Field]
	Report        *Mutation[kickoffsdk.CreateReportRequest, *kickoffsdk.Report]
}

func newModerationHooks(svc *kickoffsdk.ModerationService, cache *querycache.Store) *ModerationHooks {
	h := &ModerationHooks{svc: svc, cache: cache}

	h.ResolveReport = newMutation("moderation.resolve_report",
		func(ctx context.Context, in ResolveReportInput) (*kickoffsdk.Report, error) {
			return svc.ResolveReport(ctx, in.ID, in.Action, in.Note)
		},
		func(ctx context.Context, _ ResolveReportInput, _ *kickoffsdk.Report) {
			invalidate(ctx, cache, ModerationKeys.Reports())
		},
	)

	h.BanUser = newMutation("moderation.ban_user",
		func(ctx context.Context, in BanUserInput) (None, error) {
			return None{}, svc.BanUser(ctx, in.UserID, in.Reason)
		},
		func(ctx context.Context, _ BanUserInput, _ None) {
			invalidate(ctx, cache, ModerationKeys.Reports())
		},
	)

	h.VerifyTeam = newMutation("moderation.verify_team",
		func(ctx context.Context, in VerifyInput) (*kickoffsdk.Team, error) {
			return svc.VerifyTeam(ctx, in.ID, in.Approve)
		},
		func(ctx context.Context, in VerifyInput, _ *kickoffsdk.Team) {
			invalidate(ctx, cache, ModerationKeys.Verifications(), TeamKeys.Detail(in.ID))
		},
	)

	h.VerifyField = newMutation("moderation.verify_field",
		func(ctx context.Context, in VerifyInput) (*kickoffsdk.Field, error) {
			return svc.VerifyField(ctx, in.ID, in.Approve)
		},
		func(ctx context.Context, in VerifyInput, _ *kickoffsdk.Field) {
			invalidate(ctx, cache, ModerationKeys.Verifications(), FieldKeys.Detail(in.ID))
		},
	)

	// Filing a report does not touch any cached read.
	h.Report = newMutation("moderation.report", svc.Report, nil)

	return h
}

// Reports lists reports, optionally filtered by status.
func (h *ModerationHooks) Reports(ctx context.Context, status kickoffsdk.ReportStatus) QueryResult[[]kickoffsdk.Report] {
	return query(ctx, h.cache, ModerationKeys.ReportsByStatus(status), true, func(ctx context.Context) ([]kickoffsdk.Report, error) {
		return h.svc.Reports(ctx, status)
	})
}

func (h *ModerationHooks) Verifications(ctx context.Context) QueryResult[[]kickoffsdk.Verification] {
	return query(ctx, h.cache, ModerationKeys.Verifications(), true, h.svc.PendingVerifications)
}

// Search is disabled for a blank query.
func (h *ModerationHooks) Search(ctx context.Context, q string, p kickoffsdk.ListParams) QueryResult[*kickoffsdk.Page[kickoffsdk.ModerationHit]] {
	q = strings.TrimSpace(q)
	return query(ctx, h.cache, ModerationKeys.Search(q, p), q != "", func(ctx context.Context) (*kickoffsdk.Page[kickoffsdk.ModerationHit], error) {
		return h.svc.Search(ctx, q, p)
	})
}

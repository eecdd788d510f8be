package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type UpdateFieldInput struct {
	ID int64
	kickoffsdk.FieldInput
}

type UpdatePricingInput struct {
	FieldID int64
	Rules   []kickoffsdk.PricingRule
}

type FieldHooks struct {
	svc   *kickoffsdk.FieldService
	cache *querycache.Store

	Create        *Mutation[kickoffsdk.FieldInput, *kickoffsdk.Field]
	Update        *Mutation[UpdateFieldInput, *kickoffsdk.Field]
	Delete        *Mutation[int64, None]
	UpdatePricing *Mutation[UpdatePricingInput, []kickoffsdk.PricingRule]
}

func newFieldHooks(svc *kickoffsdk.FieldService, cache *querycache.Store) *FieldHooks {
	h := &FieldHooks{svc: svc, cache: cache}

	h.Create = newMutation("fields.create", svc.Create,
		func(ctx context.Context, _ kickoffsdk.FieldInput, _ *kickoffsdk.Field) {
			invalidate(ctx, cache, FieldKeys.All())
		},
	)

	h.Update = newMutation("fields.update",
		func(ctx context.Context, in UpdateFieldInput) (*kickoffsdk.Field, error) {
			return svc.Update(ctx, in.ID, in.FieldInput)
		},
		func(ctx context.Context, in UpdateFieldInput, out *kickoffsdk.Field) {
			write(ctx, cache, FieldKeys.Detail(in.ID), out)
			invalidate(ctx, cache, FieldKeys.Lists())
		},
	)

	h.Delete = newMutation("fields.delete", noOutput(svc.Delete),
		func(ctx context.Context, _ int64, _ None) {
			invalidate(ctx, cache, FieldKeys.All())
		},
	)

	h.UpdatePricing = newMutation("fields.update_pricing",
		func(ctx context.Context, in UpdatePricingInput) ([]kickoffsdk.PricingRule, error) {
			return svc.UpdatePricing(ctx, in.FieldID, in.Rules)
		},
		func(ctx context.Context, in UpdatePricingInput, out []kickoffsdk.PricingRule) {
			write(ctx, cache, FieldKeys.Pricing(in.FieldID), out)
			invalidate(ctx, cache, FieldKeys.Availability(in.FieldID))
		},
	)

	return h
}

func (h *FieldHooks) List(ctx context.Context, f kickoffsdk.FieldFilter) QueryResult[*kickoffsdk.Page[kickoffsdk.Field]] {
	return query(ctx, h.cache, FieldKeys.List(f), true, func(ctx context.Context) (*kickoffsdk.Page[kickoffsdk.Field], error) {
		return h.svc.List(ctx, f)
	})
}

func (h *FieldHooks) Detail(ctx context.Context, id int64) QueryResult[*kickoffsdk.Field] {
	return query(ctx, h.cache, FieldKeys.Detail(id), id != 0, func(ctx context.Context) (*kickoffsdk.Field, error) {
		return h.svc.Get(ctx, id)
	})
}

func (h *FieldHooks) Mine(ctx context.Context) QueryResult[[]kickoffsdk.Field] {
	return query(ctx, h.cache, FieldKeys.Mine(), true, h.svc.Mine)
}

func (h *FieldHooks) Pricing(ctx context.Context, id int64) QueryResult[[]kickoffsdk.PricingRule] {
	return query(ctx, h.cache, FieldKeys.Pricing(id), id != 0, func(ctx context.Context) ([]kickoffsdk.PricingRule, error) {
		return h.svc.Pricing(ctx, id)
	})
}

// Availability reads the open slots of a field on one date. Disabled until
// both the field and the date are known.
func (h *FieldHooks) Availability(ctx context.Context, id int64, date string) QueryResult[[]kickoffsdk.TimeSlot] {
	enabled := id != 0 && date != ""
	return query(ctx, h.cache, FieldKeys.AvailabilityOn(id, date), enabled, func(ctx context.Context) ([]kickoffsdk.TimeSlot, error) {
		return h.svc.Availability(ctx, id, date)
	})
}

package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type BookingReasonInput struct {
	ID     int64
	Reason string
}

// BookingHooks covers booking reads and the approval workflow. Every
// booking mutation invalidates the whole bookings namespace since a status
// change shows up in calendars, pending lists and history alike.
type BookingHooks struct {
	svc   *kickoffsdk.BookingService
	cache *querycache.Store

	Create  *Mutation[kickoffsdk.CreateBookingRequest, *kickoffsdk.Booking]
	Approve *Mutation[int64, *kickoffsdk.Booking]
	Reject  *Mutation[BookingReasonInput, *kickoffsdk.Booking]
	Cancel  *Mutation[BookingReasonInput, *kickoffsdk.Booking]
}

func newBookingHooks(svc *kickoffsdk.BookingService, cache *querycache.Store) *BookingHooks {
	h := &BookingHooks{svc: svc, cache: cache}

	h.Create = newMutation("bookings.create", svc.Create,
		func(ctx context.Context, _ kickoffsdk.CreateBookingRequest, _ *kickoffsdk.Booking) {
			invalidate(ctx, cache, BookingKeys.All())
		},
	)

	h.Approve = newMutation("bookings.approve", svc.Approve,
		func(ctx context.Context, _ int64, _ *kickoffsdk.Booking) {
			invalidate(ctx, cache, BookingKeys.All())
		},
	)

	h.Reject = newMutation("bookings.reject",
		func(ctx context.Context, in BookingReasonInput) (*kickoffsdk.Booking, error) {
			return svc.Reject(ctx, in.ID, in.Reason)
		},
		func(ctx context.Context, _ BookingReasonInput, _ *kickoffsdk.Booking) {
			invalidate(ctx, cache, BookingKeys.All())
		},
	)

	h.Cancel = newMutation("bookings.cancel",
		func(ctx context.Context, in BookingReasonInput) (*kickoffsdk.Booking, error) {
			return svc.Cancel(ctx, in.ID, in.Reason)
		},
		func(ctx context.Context, _ BookingReasonInput, _ *kickoffsdk.Booking) {
			invalidate(ctx, cache, BookingKeys.All())
		},
	)

	return h
}

func (h *BookingHooks) Detail(ctx context.Context, id int64) QueryResult[*kickoffsdk.Booking] {
	return query(ctx, h.cache, BookingKeys.Detail(id), id != 0, func(ctx context.Context) (*kickoffsdk.Booking, error) {
		return h.svc.Get(ctx, id)
	})
}

func (h *BookingHooks) Mine(ctx context.Context) QueryResult[[]kickoffsdk.Booking] {
	return query(ctx, h.cache, BookingKeys.Mine(), true, h.svc.Mine)
}

// Calendar is disabled until a field and both range bounds are set.
func (h *BookingHooks) Calendar(ctx context.Context, fieldID int64, r kickoffsdk.DateRange) QueryResult[[]kickoffsdk.Booking] {
	enabled := fieldID != 0 && r.StartDate != "" && r.EndDate != ""
	return query(ctx, h.cache, BookingKeys.Calendar(fieldID, r), enabled, func(ctx context.Context) ([]kickoffsdk.Booking, error) {
		return h.svc.Calendar(ctx, fieldID, r)
	})
}

func (h *BookingHooks) OwnerPending(ctx context.Context) QueryResult[[]kickoffsdk.Booking] {
	return query(ctx, h.cache, BookingKeys.OwnerPending(), true, h.svc.OwnerPending)
}

func (h *BookingHooks) History(ctx context.Context, p kickoffsdk.ListParams) QueryResult[*kickoffsdk.Page[kickoffsdk.Booking]] {
	return query(ctx, h.cache, BookingKeys.History(p), true, func(ctx context.Context) (*kickoffsdk.Page[kickoffsdk.Booking], error) {
		return h.svc.History(ctx, p)
	})
}

package kickoffsdk

import (
	"context"
	"net/http"
	"net/url"
)

type BookingService struct {
	c *Client
}

func (s *BookingService) Create(ctx context.Context, in CreateBookingRequest) (*Booking, error) {
	var out Booking
	if err := s.c.sendJSON(ctx, http.MethodPost, "/bookings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (*Booking, error) {
	var out Booking
	if err := s.c.getJSON(ctx, pathf("/bookings", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine returns the bookings made by the logged-in user.
func (s *BookingService) Mine(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := s.c.getJSON(ctx, "/bookings/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Calendar returns every booking of a field inside the date range.
func (s *BookingService) Calendar(ctx context.Context, fieldID int64, r DateRange) ([]Booking, error) {
	q := url.Values{}
	setIf(q, "startDate", r.StartDate)
	setIf(q, "endDate", r.EndDate)

	var out []Booking
	if err := s.c.getJSON(ctx, pathf("/bookings/calendar", fieldID), q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OwnerPending returns bookings awaiting the field owner's decision.
func (s *BookingService) OwnerPending(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := s.c.getJSON(ctx, "/bookings/owner/pending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BookingService) Approve(ctx context.Context, id int64) (*Booking, error) {
	return s.transition(ctx, id, "approve", nil)
}

func (s *BookingService) Reject(ctx context.Context, id int64, reason string) (*Booking, error) {
	return s.transition(ctx, id, "reject", reasonBody(reason))
}

func (s *BookingService) Cancel(ctx context.Context, id int64, reason string) (*Booking, error) {
	return s.transition(ctx, id, "cancel", reasonBody(reason))
}

func (s *BookingService) transition(ctx context.Context, id int64, action string, body any) (*Booking, error) {
	var out Booking
	if err := s.c.sendJSON(ctx, http.MethodPatch, pathf("/bookings", id)+"/"+action, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History returns past bookings. The endpoint answers with a bare list, so
// the envelope is synthesized and Total only counts the returned page.
func (s *BookingService) History(ctx context.Context, p ListParams) (*Page[Booking], error) {
	var out []Booking
	if err := s.c.getJSON(ctx, "/bookings/history", p.values(), &out); err != nil {
		return nil, err
	}
	return synthesizePage(out, p), nil
}

func reasonBody(reason string) any {
	if reason == "" {
		return nil
	}
	return map[string]string{"reason": reason}
}

package kickoffsdk

import (
	"context"
	"net/http"
	"net/url"
)

type FieldService struct {
	c *Client
}

// List returns a page of fields. The backend provides the envelope.
func (s *FieldService) List(ctx context.Context, f FieldFilter) (*Page[Field], error) {
	q := f.values()
	setIf(q, "search", f.Search)
	setIf(q, "city", f.City)
	setIf(q, "surface", f.Surface)

	var out Page[Field]
	if err := s.c.getJSON(ctx, "/fields", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FieldService) Get(ctx context.Context, id int64) (*Field, error) {
	var out Field
	if err := s.c.getJSON(ctx, pathf("/fields", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine returns the fields owned by the logged-in field owner.
func (s *FieldService) Mine(ctx context.Context) ([]Field, error) {
	var out []Field
	if err := s.c.getJSON(ctx, "/fields/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FieldService) Create(ctx context.Context, in FieldInput) (*Field, error) {
	var out Field
	if err := s.c.sendJSON(ctx, http.MethodPost, "/fields", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FieldService) Update(ctx context.Context, id int64, in FieldInput) (*Field, error) {
	var out Field
	if err := s.c.sendJSON(ctx, http.MethodPatch, pathf("/fields", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FieldService) Delete(ctx context.Context, id int64) error {
	return s.c.sendJSON(ctx, http.MethodDelete, pathf("/fields", id), nil, nil)
}

func (s *FieldService) Pricing(ctx context.Context, id int64) ([]PricingRule, error) {
	var out []PricingRule
	if err := s.c.getJSON(ctx, pathf("/fields", id)+"/pricing", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePricing replaces the whole pricing table of a field.
func (s *FieldService) UpdatePricing(ctx context.Context, id int64, rules []PricingRule) ([]PricingRule, error) {
	var out []PricingRule
	body := map[string][]PricingRule{"rules": rules}
	if err := s.c.sendJSON(ctx, http.MethodPut, pathf("/fields", id)+"/pricing", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Availability returns the bookable slots of a field for one day (YYYY-MM-DD).
func (s *FieldService) Availability(ctx context.Context, id int64, date string) ([]TimeSlot, error) {
	q := url.Values{}
	setIf(q, "date", date)

	var out []TimeSlot
	if err := s.c.getJSON(ctx, pathf("/fields", id)+"/availability", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

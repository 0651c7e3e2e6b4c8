// Package composer holds the draft side of invoice composition: an ordered
// list of billable line items validated and priced before anything is
// persisted. The composer owns nothing after submission; the created
// invoice takes over the items.
package composer

import (
	"encoding/json"
	"fmt"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

const (
	maxDescriptionLen = 255
	maxMetaBytes      = 8 * 1024
	maxMetaDepth      = 8
)

// ItemInput is one draft line item as submitted by the caller.
type ItemInput struct {
	Type           string         `json:"type,omitempty"`
	RefID          string         `json:"ref_id,omitempty"`
	Description    string         `json:"description"`
	Qty            int64          `json:"qty"`
	UnitPriceCents int64          `json:"unit_price_cents"`
	Meta           map[string]any `json:"meta,omitempty"`
}

// Composer accumulates draft items. Temporary ids are negative so they can
// never collide with persisted item ids.
type Composer struct {
	items  []model.InvoiceItem
	nextID int32
}

func New() *Composer {
	return &Composer{nextID: -1}
}

// Add validates the input and appends it to the draft. Validation errors
// name the offending field.
func (c *Composer) Add(input ItemInput) (*model.InvoiceItem, error) {
	if input.Description == "" {
		return nil, fieldError("description", "must not be empty")
	}
	if len(input.Description) > maxDescriptionLen {
		return nil, fieldError("description", fmt.Sprintf("must be at most %d characters", maxDescriptionLen))
	}
	if input.Qty <= 0 {
		return nil, fieldError("qty", "must be greater than zero")
	}
	if input.UnitPriceCents < 0 {
		return nil, fieldError("unit_price", "must not be negative")
	}
	if err := validateMeta(input.Meta); err != nil {
		return nil, err
	}

	item := model.InvoiceItem{
		ID:             c.nextID,
		Type:           input.Type,
		RefID:          input.RefID,
		Description:    input.Description,
		Qty:            input.Qty,
		UnitPriceCents: input.UnitPriceCents,
		Meta:           input.Meta,
	}
	item.LineTotalCents = item.LineTotal()

	c.nextID--
	c.items = append(c.items, item)
	return &item, nil
}

// Remove drops the draft item with the given temporary id. Removing an
// unknown id is a no-op; nothing is persisted yet, so there is nothing to
// conflict with.
func (c *Composer) Remove(tmpID int32) {
	filtered := c.items[:0]
	for _, item := range c.items {
		if item.ID != tmpID {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
}

// Items returns the draft items in insertion order.
func (c *Composer) Items() []model.InvoiceItem {
	out := make([]model.InvoiceItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal recomputes the sum of line totals on every call. It is never
// cached across mutations.
func (c *Composer) Subtotal() int64 {
	var sum int64
	for _, item := range c.items {
		sum += item.LineTotal()
	}
	return sum
}

// validateMeta checks that meta, if present, is a well-formed structured
// value within the size and depth bounds. No keys are assumed.
func validateMeta(meta map[string]any) error {
	if meta == nil {
		return nil
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return fieldError("meta", "must be a well-formed structured value")
	}
	if len(raw) > maxMetaBytes {
		return fieldError("meta", fmt.Sprintf("must encode to at most %d bytes", maxMetaBytes))
	}
	if metaDepth(meta, 1) > maxMetaDepth {
		return fieldError("meta", fmt.Sprintf("must nest at most %d levels deep", maxMetaDepth))
	}
	return nil
}

func metaDepth(v any, depth int) int {
	max := depth
	switch val := v.(type) {
	case map[string]any:
		for _, child := range val {
			if d := metaDepth(child, depth+1); d > max {
				max = d
			}
		}
	case []any:
		for _, child := range val {
			if d := metaDepth(child, depth+1); d > max {
				max = d
			}
		}
	}
	return max
}

func fieldError(field, msg string) *errs.Error {
	return &errs.Error{
		Code:    errs.InvalidArgument,
		Message: fmt.Sprintf("%s: %s", field, msg),
	}
}

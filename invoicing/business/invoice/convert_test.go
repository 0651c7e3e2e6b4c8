package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/invoicing/repository/items"
)

func TestConvertDBItemToModelMeta(t *testing.T) {
	testCases := []struct {
		name         string
		meta         []byte
		expectedMeta map[string]any
	}{
		{
			name:         "valid_meta",
			meta:         []byte(`{"sku":"A-1","weight":2.5}`),
			expectedMeta: map[string]any{"sku": "A-1", "weight": 2.5},
		},
		{
			name: "no_meta",
			meta: nil,
		},
		{
			name: "corrupt_meta_dropped",
			meta: []byte(`{"sku":`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := convertDBItemToModel(items.InvoiceItem{
				ID:             7,
				Description:    "Consulting",
				Qty:            1,
				UnitPriceCents: 1500,
				LineTotalCents: 1500,
				Meta:           tc.meta,
			})

			assert.Equal(t, tc.expectedMeta, item.Meta)
			assert.Equal(t, int64(1500), item.LineTotalCents)
		})
	}
}

package models

import (
	"regexp"
	"testing"
)

func TestOrderCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     OrderCreateRequest
		wantErr bool
	}{
		{
			name:    "valid order",
			req:     OrderCreateRequest{EventID: 1, TicketsCount: 3},
			wantErr: false,
		},
		{
			name:    "missing event id",
			req:     OrderCreateRequest{TicketsCount: 1},
			wantErr: true,
		},
		{
			name:    "zero tickets",
			req:     OrderCreateRequest{EventID: 1, TicketsCount: 0},
			wantErr: true,
		},
		{
			name:    "negative tickets",
			req:     OrderCreateRequest{EventID: 1, TicketsCount: -2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	format := regexp.MustCompile(`^ORD-\d{8}-[0-9a-f]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := GenerateOrderNumber()
		if !format.MatchString(n) {
			t.Fatalf("order number %q does not match expected format", n)
		}
		if seen[n] {
			t.Fatalf("duplicate order number generated: %q", n)
		}
		seen[n] = true
	}
}

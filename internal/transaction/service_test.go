package transaction

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Invalid input must be rejected before the repository is touched, so a
// nil repository is safe here.
func TestCreateValidation(t *testing.T) {
	service := NewService(nil)

	tests := []struct {
		name    string
		req     *CreateTransactionRequest
		wantErr error
	}{
		{
			name:    "blank title",
			req:     &CreateTransactionRequest{Title: "  ", Amount: -12},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "zero amount",
			req:     &CreateTransactionRequest{Title: "Coffee", Amount: 0},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "NaN amount",
			req:     &CreateTransactionRequest{Title: "Coffee", Amount: math.NaN()},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "infinite amount",
			req:     &CreateTransactionRequest{Title: "Coffee", Amount: math.Inf(-1)},
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

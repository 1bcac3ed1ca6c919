package controller

import (
	"context"
	"strings"
	"time"

	"github.com/jazelams/soccer-app/auth"
	"github.com/jazelams/soccer-app/model"
)

func (c *controller) RecordPayment(ctx context.Context, p *auth.Principal, input PaymentInput) (*model.Payment, error) {
	if !auth.Allow(p.Role, auth.ActionRecordPayment, false) {
		return nil, ErrForbidden
	}

	if !input.Amount.IsPositive() {
		return nil, validationErrorf("payment amount must be positive")
	}
	if _, err := model.ParsePaymentMethod(string(input.Method)); err != nil {
		return nil, validationErrorf("invalid payment method: %s", input.Method)
	}
	if input.Matchday != nil && (*input.Matchday < 1 || *input.Matchday > model.MatchdayCount) {
		return nil, validationErrorf("matchday must be between 1 and %d, got %d", model.MatchdayCount, *input.Matchday)
	}

	transferRef := strings.TrimSpace(input.TransferRef)
	if input.Method == model.MethodTransfer && transferRef == "" {
		return nil, validationErrorf("a transfer reference is required for TRANSFER payments")
	}
	if input.Method == model.MethodCash {
		// A reference on a cash payment is ignored, not rejected.
		transferRef = ""
	}

	// Make sure the team exists so the insert fails cleanly.
	if _, err := c.db.GetTeamWithPayments(ctx, input.TeamID); err != nil {
		return nil, err
	}

	payment := &model.Payment{
		TeamID:       input.TeamID,
		Amount:       input.Amount,
		Method:       input.Method,
		TransferRef:  transferRef,
		TransferDate: input.TransferDate,
		Matchday:     input.Matchday,
		Notes:        strings.TrimSpace(input.Notes),
	}
	if input.Method == model.MethodCash {
		payment.TransferDate = time.Time{}
	}
	if err := c.db.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

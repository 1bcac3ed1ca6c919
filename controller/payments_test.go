package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jazelams/soccer-app/db/mockdb"
	"github.com/jazelams/soccer-app/model"
)

func TestRecordPaymentValidation(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		input    PaymentInput
		exErrMsg string
	}{
		"zero amount": {
			input:    PaymentInput{TeamID: 5, Amount: dec("0"), Method: model.MethodCash},
			exErrMsg: "payment amount must be positive",
		},
		"negative amount": {
			input:    PaymentInput{TeamID: 5, Amount: dec("-10"), Method: model.MethodCash},
			exErrMsg: "payment amount must be positive",
		},
		"unknown method": {
			input:    PaymentInput{TeamID: 5, Amount: dec("100"), Method: "CHEQUE"},
			exErrMsg: "invalid payment method: CHEQUE",
		},
		"transfer without reference": {
			input:    PaymentInput{TeamID: 5, Amount: dec("100"), Method: model.MethodTransfer},
			exErrMsg: "a transfer reference is required for TRANSFER payments",
		},
		"transfer with blank reference": {
			input:    PaymentInput{TeamID: 5, Amount: dec("100"), Method: model.MethodTransfer, TransferRef: "   "},
			exErrMsg: "a transfer reference is required for TRANSFER payments",
		},
		"matchday too low": {
			input:    PaymentInput{TeamID: 5, Amount: dec("100"), Method: model.MethodCash, Matchday: md(0)},
			exErrMsg: "matchday must be between 1 and 10, got 0",
		},
		"matchday too high": {
			input:    PaymentInput{TeamID: 5, Amount: dec("100"), Method: model.MethodCash, Matchday: md(11)},
			exErrMsg: "matchday must be between 1 and 10, got 11",
		},
	}

	ctrl := newTestController(&mockdb.DB{})

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ctrl.RecordPayment(ctx, treasurerPrincipal(), tc.input)
			if err == nil || err.Error() != tc.exErrMsg {
				t.Errorf("expected error %q, got %v", tc.exErrMsg, err)
			}
			if !IsValidationError(err) {
				t.Errorf("expected a validation error, got %T", err)
			}
		})
	}
}

func TestRecordPaymentCashIgnoresReference(t *testing.T) {
	mdb := &mockdb.DB{}
	mdb.On("GetTeamWithPayments", mock.Anything, int32(5)).Return(statementTeam(5), nil)
	mdb.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)
	ctrl := newTestController(mdb)

	payment, err := ctrl.RecordPayment(context.Background(), adminPrincipal(), PaymentInput{
		TeamID:       5,
		Amount:       dec("250"),
		Method:       model.MethodCash,
		TransferRef:  "IGNORED-REF",
		TransferDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error recording cash payment: %v", err)
	}
	if payment.TransferRef != "" {
		t.Errorf("cash payments should drop the reference, got %q", payment.TransferRef)
	}
	if !payment.TransferDate.IsZero() {
		t.Errorf("cash payments should drop the transfer date, got %v", payment.TransferDate)
	}
}

func TestRecordPaymentTransfer(t *testing.T) {
	mdb := &mockdb.DB{}
	mdb.On("GetTeamWithPayments", mock.Anything, int32(5)).Return(statementTeam(5), nil)
	mdb.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)
	ctrl := newTestController(mdb)

	payment, err := ctrl.RecordPayment(context.Background(), treasurerPrincipal(), PaymentInput{
		TeamID:      5,
		Amount:      dec("300.50"),
		Method:      model.MethodTransfer,
		TransferRef: " OP-1234 ",
		Matchday:    md(3),
		Notes:       "pago jornada 3",
	})
	if err != nil {
		t.Fatalf("unexpected error recording transfer: %v", err)
	}
	if payment.TransferRef != "OP-1234" {
		t.Errorf("expected trimmed reference OP-1234, got %q", payment.TransferRef)
	}
	if payment.Matchday == nil || *payment.Matchday != 3 {
		t.Errorf("expected matchday 3, got %v", payment.Matchday)
	}
	mdb.AssertCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}

func TestRecordPaymentForbidden(t *testing.T) {
	ctrl := newTestController(&mockdb.DB{})

	_, err := ctrl.RecordPayment(context.Background(), repPrincipal(5), PaymentInput{
		TeamID: 5, Amount: dec("100"), Method: model.MethodCash,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/innkeep/innkeep-api/internal/pkg/stripegw"
)

type fakePaymentRepo struct {
	payments []Payment
	byID     *Payment
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]Payment, error) { return f.payments, nil }
func (f *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	if f.byID != nil && f.byID.ID == id {
		return f.byID, nil
	}
	return nil, nil
}

type fakeGateway struct {
	gotAmount float64
	err       error
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amount float64) (*stripegw.Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotAmount = amount
	return &stripegw.Intent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Status:       "requires_payment_method",
	}, nil
}

func TestCreateIntentSuccess(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(&fakePaymentRepo{}, gw)

	secret, err := svc.CreateIntent(context.Background(), "149.99")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if secret != "pi_test_secret" {
		t.Fatalf("expected client secret, got %q", secret)
	}
	if gw.gotAmount != 149.99 {
		t.Fatalf("expected amount 149.99, got %v", gw.gotAmount)
	}
}

func TestCreateIntentValidation(t *testing.T) {
	svc := NewService(&fakePaymentRepo{}, &fakeGateway{})

	cases := []struct {
		name   string
		amount string
		want   error
	}{
		{"empty", "", ErrAmountRequired},
		{"three decimals", "10.005", ErrInvalidAmount},
		{"negative", "-10", ErrInvalidAmount},
		{"not a number", "ten", ErrInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateIntent(context.Background(), tc.amount)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateIntentGatewayFailure(t *testing.T) {
	svc := NewService(&fakePaymentRepo{}, &fakeGateway{err: errors.New("stripe down")})

	_, err := svc.CreateIntent(context.Background(), "100")
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestCreateIntentWithoutGateway(t *testing.T) {
	svc := NewService(&fakePaymentRepo{}, nil)

	_, err := svc.CreateIntent(context.Background(), "100")
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestListRequiresAdmin(t *testing.T) {
	repo := &fakePaymentRepo{payments: []Payment{{ID: uuid.New()}}}
	svc := NewService(repo, &fakeGateway{})

	if _, err := svc.List(context.Background(), "customer"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	payments, err := svc.List(context.Background(), "admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(payments))
	}
}

func TestGetByIDUnknownPayment(t *testing.T) {
	svc := NewService(&fakePaymentRepo{}, &fakeGateway{})

	_, err := svc.GetByID(context.Background(), "admin", uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package payment_test

import (
	"context"
	"testing"

	"alx_stays/internal/adapters/payment"
	"alx_stays/internal/domain"
)

func TestSimulator_AlwaysApprove(t *testing.T) {
	s := payment.NewSimulator(1.0, 1)
	for i := 0; i < 20; i++ {
		ok, err := s.Process(context.Background(), domain.BookingInput{})
		if err != nil || !ok {
			t.Fatalf("approveRate=1 must approve: ok=%v err=%v", ok, err)
		}
	}
}

func TestSimulator_AlwaysDecline(t *testing.T) {
	s := payment.NewSimulator(0, 1)
	for i := 0; i < 20; i++ {
		ok, err := s.Process(context.Background(), domain.BookingInput{})
		if err != nil || ok {
			t.Fatalf("approveRate=0 must decline: ok=%v err=%v", ok, err)
		}
	}
}

func TestSimulator_CanceledContext(t *testing.T) {
	s := payment.NewSimulator(1.0, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Process(ctx, domain.BookingInput{}); err == nil {
		t.Fatal("expected context error")
	}
}

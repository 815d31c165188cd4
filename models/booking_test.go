package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPaymentModeAmount(t *testing.T) {
	tests := []struct {
		price int64
		mode  PaymentMode
		want  int64
	}{
		{10000, PaymentPartial, 2500},
		{10000, PaymentFull, 10000},
		{5000, PaymentPartial, 1250},
		{8000, PaymentPartial, 2000},
		{15000, PaymentPartial, 3750},
		{8003, PaymentPartial, 2000},
		{8003, PaymentFull, 8003},
		{3, PaymentPartial, 0},
	}

	for _, tt := range tests {
		if got := tt.mode.Amount(tt.price); got != tt.want {
			t.Errorf("%s.Amount(%d) = %d, want %d", tt.mode, tt.price, got, tt.want)
		}
	}
}

func TestPaymentModeOf(t *testing.T) {
	if PaymentModeOf(true) != PaymentFull || !PaymentModeOf(true).IsFull() {
		t.Error("full flag should map to full mode")
	}
	if PaymentModeOf(false) != PaymentPartial {
		t.Error("partial flag should map to partial mode")
	}
}

func TestDraftQuote(t *testing.T) {
	d := Draft{Service: Service{Price: 15000}, Mode: PaymentFull}
	q := d.Quote()
	if q.Deposit != 3750 || q.Total != 15000 || q.Due != 15000 {
		t.Fatalf("unexpected quote %+v", q)
	}

	d.Mode = PaymentPartial
	if d.Quote().Due != 3750 {
		t.Fatalf("partial due = %d, want 3750", d.Quote().Due)
	}
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d != (Date{Year: 2024, Month: time.June, Day: 1}) {
		t.Fatalf("unexpected date %+v", d)
	}
	if d.AddDays(30).String() != "2024-07-01" {
		t.Errorf("AddDays crossed month wrong: %s", d.AddDays(30))
	}

	b, _ := json.Marshal(d)
	if string(b) != `"2024-06-01"` {
		t.Errorf("json = %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil || back != d {
		t.Errorf("unmarshal = %+v, %v", back, err)
	}

	if _, err := ParseDate("01/06/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tod != At(9, 0) || tod.String() != "09:00" {
		t.Fatalf("unexpected time %v", tod)
	}
	if got := tod.Label(); got != "9:00" {
		t.Errorf("Label() = %q, want 9:00", got)
	}
	if !IsOffered(tod) {
		t.Error("09:00 should be offered")
	}
	if IsOffered(At(13, 0)) {
		t.Error("13:00 is lunch, not offered")
	}
	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Error("expected error for 25:00")
	}
}

func TestSlotIsComparable(t *testing.T) {
	a := Slot{Date: Date{2024, time.June, 1}, Time: At(10, 0)}
	b := Booking{Date: Date{2024, time.June, 1}, Time: At(10, 0)}.Slot()
	m := map[Slot]bool{a: true}
	if !m[b] {
		t.Fatal("equal slots should share a map key")
	}
}

package classify

import (
	"testing"
)

func TestIsTransactionMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			name: "debit alert",
			body: "Rs.500.00 debited from A/c XX1234 on 03-01-26 at Amazon. Ref 123456789. Avl Bal Rs.5000.00",
			want: true,
		},
		{
			name: "credit alert",
			body: "INR 12,000.00 credited to A/c XX9876 on 01-01-26 by NEFT. Avl Bal INR 45,210.55",
			want: true,
		},
		{
			name: "upi payment",
			body: "You have paid Rs.249 to Netflix via UPI. UPI Ref 400123456789.",
			want: true,
		},
		{
			name: "currency symbol",
			body: "₹150 sent to Ramesh Kumar via UPI. Ref 309812345678.",
			want: true,
		},
		{
			name: "otp message",
			body: "Your OTP is 123456. Do not share.",
			want: false,
		},
		{
			name: "otp with amount and verb",
			body: "Use OTP 482913 to confirm payment of Rs.1,200.00 to be debited from your account.",
			want: false,
		},
		{
			name: "promo with amount",
			body: "Get Rs.200 cashback upto Rs.500 on your next recharge! Offer valid till Sunday.",
			want: false,
		},
		{
			name: "promo apply now",
			body: "Pre-approved loan of Rs.5,00,000 waiting for you. Apply now!",
			want: false,
		},
		{
			name: "no amount",
			body: "Your account has been debited. Contact branch for details.",
			want: false,
		},
		{
			name: "no verb",
			body: "Your relationship value is Rs.1,00,000 this quarter.",
			want: false,
		},
		{
			name: "amount and verb far apart",
			body: "Balance enquiry result: Rs.9,999.00. " + filler(150) + " Statement request received.",
			want: false,
		},
		{
			name: "empty body",
			body: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransactionMessage(tt.body); got != tt.want {
				t.Errorf("IsTransactionMessage(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func filler(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}

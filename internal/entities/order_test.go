package entities_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_ApplyStatusConsistency(t *testing.T) {
	testCases := []struct {
		name        string
		status      entities.OrderStatus
		payment     entities.PaymentStatus
		wantStatus  entities.OrderStatus
		wantChanged bool
	}{
		{"completed advances pending", entities.StatusPending, entities.PaymentCompleted, entities.StatusProcessing, true},
		{"completed keeps shipped", entities.StatusShipped, entities.PaymentCompleted, entities.StatusShipped, false},
		{"failed cancels shipped", entities.StatusShipped, entities.PaymentFailed, entities.StatusCancelled, true},
		{"failed cancels pending", entities.StatusPending, entities.PaymentFailed, entities.StatusCancelled, true},
		{"failed keeps cancelled", entities.StatusCancelled, entities.PaymentFailed, entities.StatusCancelled, false},
		{"pending payment untouched", entities.StatusPending, entities.PaymentPending, entities.StatusPending, false},
		{"refunded untouched", entities.StatusDelivered, entities.PaymentRefunded, entities.StatusDelivered, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := entities.Order{Status: tc.status, PaymentStatus: tc.payment}

			changed := o.ApplyStatusConsistency()
			assert.Equal(t, tc.wantChanged, changed)
			assert.Equal(t, tc.wantStatus, o.Status)

			// idempotent
			snapshot := o
			assert.False(t, o.ApplyStatusConsistency())
			assert.Equal(t, snapshot, o)
		})
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, entities.CanTransition(entities.StatusPending, entities.StatusProcessing))
	assert.True(t, entities.CanTransition(entities.StatusShipped, entities.StatusReturned))
	assert.True(t, entities.CanTransition(entities.StatusProcessing, entities.StatusCancelled))
	assert.False(t, entities.CanTransition(entities.StatusPending, entities.StatusDelivered))
	assert.False(t, entities.CanTransition(entities.StatusCancelled, entities.StatusProcessing))
	assert.False(t, entities.CanTransition(entities.StatusReturned, entities.StatusShipped))
	assert.False(t, entities.CanTransition("bogus", entities.StatusShipped))
}

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	re := regexp.MustCompile(`^ORDER-1700000000123-[0-9A-Z]{6}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := entities.NewOrderID(now)
		assert.Regexp(t, re, id)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 90)
}

func TestOrder_ExpectedTotal(t *testing.T) {
	o := entities.Order{
		Items: []entities.OrderItem{
			{ProductID: "a", Quantity: 2, Price: decimal.RequireFromString("10.50")},
			{ProductID: "b", Quantity: 1, Price: decimal.NewFromInt(4)},
		},
		ShippingCost: decimal.NewFromInt(5),
		Tax:          decimal.RequireFromString("1.25"),
		Discount:     decimal.NewFromInt(3),
	}

	assert.True(t, decimal.NewFromInt(25).Equal(o.ItemsSubtotal()))
	assert.True(t, decimal.RequireFromString("28.25").Equal(o.ExpectedTotal()))
}

func TestOrder_Access(t *testing.T) {
	o := entities.Order{CustomerID: "cust", VendorOwnerID: "merchant"}

	assert.True(t, o.VisibleTo(entities.Claims{UserID: "cust", Role: entities.RoleCustomer}))
	assert.False(t, o.VisibleTo(entities.Claims{UserID: "other", Role: entities.RoleCustomer}))
	assert.True(t, o.VisibleTo(entities.Claims{UserID: "merchant", Role: entities.RoleMerchant}))
	assert.False(t, o.VisibleTo(entities.Claims{UserID: "cust", Role: entities.RoleMerchant}))
	assert.True(t, o.VisibleTo(entities.Claims{UserID: "root", Role: entities.RoleAdmin}))

	assert.False(t, o.ManageableBy(entities.Claims{UserID: "cust", Role: entities.RoleCustomer}))
	assert.True(t, o.ManageableBy(entities.Claims{UserID: "merchant", Role: entities.RoleMerchant}))
	assert.True(t, o.ManageableBy(entities.Claims{UserID: "root", Role: entities.RoleAdmin}))
}

func TestPaymentEvent_TargetPaymentStatus(t *testing.T) {
	testCases := []struct {
		eventType entities.PaymentEventType
		want      entities.PaymentStatus
		ok        bool
	}{
		{entities.EventPaymentSucceeded, entities.PaymentCompleted, true},
		{entities.EventPaymentFailed, entities.PaymentFailed, true},
		{entities.EventPaymentCanceled, entities.PaymentFailed, true},
		{"charge.refunded", "", false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.eventType), func(t *testing.T) {
			got, ok := entities.PaymentEvent{Type: tc.eventType}.TargetPaymentStatus()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), entities.MinorUnits(decimal.RequireFromString("19.99"), "USD"))
	assert.Equal(t, int64(50000), entities.MinorUnits(decimal.NewFromInt(500), "eur"))
	assert.Equal(t, int64(500), entities.MinorUnits(decimal.NewFromInt(500), "JPY"))
	assert.Equal(t, int64(1001), entities.MinorUnits(decimal.RequireFromString("10.005"), "usd"))
}

func TestUser_IsLocked(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	until := now.Add(15 * time.Minute)

	assert.False(t, entities.User{}.IsLocked(now))

	u := entities.User{LockedUntil: &until}
	assert.True(t, u.IsLocked(now))
	assert.True(t, u.IsLocked(now.Add(14*time.Minute)))
	assert.False(t, u.IsLocked(until))
}

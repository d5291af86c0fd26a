package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"restaurant-backend/models"
)

func TestSendSkipsWhenUnconfigured(t *testing.T) {
	es := &EmailService{Host: "smtp.example.com", Port: 587}

	// No credentials: the send is skipped and reported as success so the
	// business operation it accompanies is never blocked.
	assert.True(t, es.Send("to@example.com", "subject", "text", "<p>html</p>"))
}

func TestSendFailureIsReportedNotRaised(t *testing.T) {
	es := &EmailService{
		Host:        "127.0.0.1",
		Port:        1, // nothing listens here
		Username:    "user",
		Password:    "pass",
		From:        "from@example.com",
		SendTimeout: 2 * time.Second,
	}

	assert.False(t, es.Send("to@example.com", "subject", "text", "<p>html</p>"))
}

func TestNotificationBodiesIncludeOrderBreakdown(t *testing.T) {
	order := models.Order{
		OrderID:         "ORD-ABCD1234",
		CustomerName:    "C",
		CustomerEmail:   "c@d.com",
		DeliveryAddress: "1 Test St",
		Items: []models.OrderItem{
			{MenuItemID: "item-1", Name: "Butter Chicken", Price: 18.95, Quantity: 2},
			{MenuItemID: "item-2", Quantity: 1},
		},
		Subtotal: 40, Tax: 3.2, DeliveryFee: 5, Total: 48.2,
	}

	text := itemizedText(order)
	assert.Contains(t, text, "2 x Butter Chicken - $37.90")
	// Lines without a name fall back to the menu item id
	assert.Contains(t, text, "1 x item-2")

	html := itemizedHTML(order)
	assert.Contains(t, html, "<li>2 x Butter Chicken - $37.90</li>")
}

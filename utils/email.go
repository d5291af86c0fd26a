package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"restaurant-backend/models"
)

// EmailService sends transactional mail over SMTP. Every message carries a
// plain-text body with a parallel HTML alternative. When no credentials are
// configured sends are skipped and reported as success so the absence of mail
// configuration never blocks a business operation.
type EmailService struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	SendTimeout time.Duration
}

// NewEmailService builds an EmailService from SMTP_* environment variables
func NewEmailService() *EmailService {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	username := os.Getenv("SMTP_USER")
	from := os.Getenv("SMTP_FROM_EMAIL")
	if from == "" {
		from = username
	}
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		Password:    os.Getenv("SMTP_PASSWORD"),
		From:        from,
		SendTimeout: 15 * time.Second,
	}
}

// Send delivers one message. It reports true on success or when the transport
// is unconfigured, false on any delivery failure. It never panics and a slow
// SMTP server is cut off at SendTimeout and treated as a delivery failure.
func (es *EmailService) Send(to, subject, textBody, htmlBody string) bool {
	if es.Username == "" || es.Password == "" {
		log.Printf("SMTP not configured. Email to %s skipped (%s)", to, subject)
		return true
	}

	m := gomail.NewMessage()
	m.SetHeader("From", es.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	dialer := gomail.NewDialer(es.Host, es.Port, es.Username, es.Password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(m)
	}()
	select {
	case err := <-done:
		if err != nil {
			log.Printf("Error sending email to %s: %v", to, err)
			return false
		}
		return true
	case <-time.After(es.SendTimeout):
		log.Printf("Timed out sending email to %s", to)
		return false
	}
}

// SendContactNotification alerts the admin about a new contact form submission
func (es *EmailService) SendContactNotification(adminEmail string, contact models.ContactForm) bool {
	subject := fmt.Sprintf("New Contact Form Submission from %s", contact.Name)

	body := fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s
Phone: %s

Message:
%s

Submitted at: %s
`, contact.Name, contact.Email, contact.Phone, contact.Message, contact.CreatedAt.Format(time.RFC1123))

	bodyHTML := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #DC2626;">New Contact Form Submission</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <p style="white-space: pre-wrap;">%s</p>
    <p style="color: #666; font-size: 12px;">Submitted at: %s</p>
  </div>
</body>
</html>`, contact.Name, contact.Email, contact.Email, contact.Phone, contact.Message, contact.CreatedAt.Format(time.RFC1123))

	return es.Send(adminEmail, subject, body, bodyHTML)
}

// SendReservationNotification alerts the admin about a new table reservation
func (es *EmailService) SendReservationNotification(adminEmail string, res models.Reservation) bool {
	subject := fmt.Sprintf("New Table Reservation from %s", res.Name)

	special := res.SpecialRequests
	if special == "" {
		special = "None"
	}

	body := fmt.Sprintf(`New Table Reservation

Name: %s
Email: %s
Phone: %s

Reservation Details:
Date: %s
Time: %s
Number of Guests: %d

Special Requests:
%s

Submitted at: %s
`, res.Name, res.Email, res.Phone, res.Date, res.Time, res.Guests, special, res.CreatedAt.Format(time.RFC1123))

	bodyHTML := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #DC2626;">New Table Reservation</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
    <p><strong>Phone:</strong> %s</p>
    <div style="background-color: #fff3cd; padding: 15px; border-left: 4px solid #DC2626;">
      <p><strong>Date:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>
      <p><strong>Number of Guests:</strong> %d</p>
    </div>
    <p><strong>Special Requests:</strong> %s</p>
    <p style="color: #666; font-size: 12px;">Submitted at: %s</p>
  </div>
</body>
</html>`, res.Name, res.Email, res.Email, res.Phone, res.Date, res.Time, res.Guests, special, res.CreatedAt.Format(time.RFC1123))

	return es.Send(adminEmail, subject, body, bodyHTML)
}

func itemizedText(order models.Order) string {
	var b strings.Builder
	for _, item := range order.Items {
		name := item.Name
		if name == "" {
			name = item.MenuItemID
		}
		if item.Price > 0 {
			fmt.Fprintf(&b, "  %d x %s - $%.2f\n", item.Quantity, name, item.Price*float64(item.Quantity))
		} else {
			fmt.Fprintf(&b, "  %d x %s\n", item.Quantity, name)
		}
	}
	return b.String()
}

func itemizedHTML(order models.Order) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range order.Items {
		name := item.Name
		if name == "" {
			name = item.MenuItemID
		}
		if item.Price > 0 {
			fmt.Fprintf(&b, "<li>%d x %s - $%.2f</li>", item.Quantity, name, item.Price*float64(item.Quantity))
		} else {
			fmt.Fprintf(&b, "<li>%d x %s</li>", item.Quantity, name)
		}
	}
	b.WriteString("</ul>")
	return b.String()
}

// SendOrderConfirmation confirms a placed order to the customer
func (es *EmailService) SendOrderConfirmation(order models.Order) bool {
	subject := fmt.Sprintf("Order Confirmation - %s", order.OrderID)

	body := fmt.Sprintf(`Dear %s,

Thank you for your order! Your order %s has been received and is being prepared.

Order Summary:
%s
Subtotal: $%.2f
Tax: $%.2f
Delivery Fee: $%.2f
Total: $%.2f

Payment Method: %s
Delivery Address: %s

We will notify you once your order is on its way.
`, order.CustomerName, order.OrderID, itemizedText(order),
		order.Subtotal, order.Tax, order.DeliveryFee, order.Total,
		order.PaymentMethod, order.DeliveryAddress)

	bodyHTML := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #DC2626;">Thank you for your order, %s!</h2>
    <p>Your order <strong>%s</strong> has been received and is being prepared.</p>
    %s
    <p>Subtotal: $%.2f<br>Tax: $%.2f<br>Delivery Fee: $%.2f<br><strong>Total: $%.2f</strong></p>
    <p><strong>Payment Method:</strong> %s</p>
    <p><strong>Delivery Address:</strong> %s</p>
    <p>We will notify you once your order is on its way.</p>
  </div>
</body>
</html>`, order.CustomerName, order.OrderID, itemizedHTML(order),
		order.Subtotal, order.Tax, order.DeliveryFee, order.Total,
		order.PaymentMethod, order.DeliveryAddress)

	return es.Send(order.CustomerEmail, subject, body, bodyHTML)
}

// SendNewOrderNotification alerts the admin about a new online order
func (es *EmailService) SendNewOrderNotification(adminEmail string, order models.Order) bool {
	subject := fmt.Sprintf("New Order %s from %s", order.OrderID, order.CustomerName)

	body := fmt.Sprintf(`New Online Order

Order: %s
Status: %s

Customer:
Name: %s
Email: %s
Phone: %s
Delivery Address: %s

Items:
%s
Subtotal: $%.2f
Tax: $%.2f
Delivery Fee: $%.2f
Total: $%.2f

Payment Method: %s
Placed at: %s
`, order.OrderID, order.Status,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.DeliveryAddress,
		itemizedText(order),
		order.Subtotal, order.Tax, order.DeliveryFee, order.Total,
		order.PaymentMethod, order.CreatedAt.Format(time.RFC1123))

	bodyHTML := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #DC2626;">New Online Order %s</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Delivery Address:</strong> %s</p>
    %s
    <p>Subtotal: $%.2f<br>Tax: $%.2f<br>Delivery Fee: $%.2f<br><strong>Total: $%.2f</strong></p>
    <p><strong>Payment Method:</strong> %s</p>
    <p style="color: #666; font-size: 12px;">Placed at: %s</p>
  </div>
</body>
</html>`, order.OrderID,
		order.CustomerName, order.CustomerEmail, order.CustomerEmail, order.CustomerPhone,
		order.DeliveryAddress, itemizedHTML(order),
		order.Subtotal, order.Tax, order.DeliveryFee, order.Total,
		order.PaymentMethod, order.CreatedAt.Format(time.RFC1123))

	return es.Send(adminEmail, subject, body, bodyHTML)
}

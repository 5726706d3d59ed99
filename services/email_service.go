package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"foodrush/models"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order *models.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order %s confirmed - FoodRush", order.OrderNumber))

	var lines strings.Builder
	for _, item := range order.Items {
		lines.WriteString(fmt.Sprintf(
			`<tr><td>%dx %s</td><td style="text-align:right;">%.2f</td></tr>`,
			item.Quantity, item.Name, item.UnitPrice*float64(item.Quantity),
		))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #e11d48; text-align: center; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        td { padding: 8px 0; border-bottom: 1px solid #eee; }
        .total { font-weight: bold; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">FoodRush</div>
        <h2>Your order is confirmed</h2>
        <p>Order number: <strong>%s</strong></p>
        <table>
            %s
            <tr class="total"><td>Total</td><td style="text-align:right;">%.2f</td></tr>
        </table>
        <p>Delivery address: %s</p>
        <div class="footer">Thank you for ordering with FoodRush.</div>
    </div>
</body>
</html>`, order.OrderNumber, lines.String(), order.TotalAmount, order.DeliveryAddress)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// OrderLine is a single line rendered in the order confirmation email
type OrderLine struct {
	ProductName string
	Quantity    int
	LineTotal   string
}

// OrderConfirmationData carries the values rendered into the confirmation email
type OrderConfirmationData struct {
	CustomerName  string
	OrderNumber   string
	Lines         []OrderLine
	SubTotal      string
	Discount      string
	LoyaltyCredit string
	Shipping      string
	Tax           string
	Total         string
	PointsEarned  int64
}

// SendWelcomeEmail sends a welcome email to a newly registered customer
func (s *EmailService) SendWelcomeEmail(toEmail, name string) error {
	htmlContent, err := s.renderTemplate("welcome", welcomeTemplate, struct {
		Name        string
		AppName     string
		FrontendURL string
	}{
		Name:        name,
		AppName:     "FreshBasket",
		FrontendURL: s.config.FrontendURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Welcome to FreshBasket"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// SendOrderConfirmationEmail sends an order confirmation email
func (s *EmailService) SendOrderConfirmationEmail(toEmail string, data OrderConfirmationData) error {
	htmlContent, err := s.renderTemplate("order_confirmation", orderConfirmationTemplate, struct {
		OrderConfirmationData
		AppName  string
		OrderURL string
	}{
		OrderConfirmationData: data,
		AppName:               "FreshBasket",
		OrderURL:              fmt.Sprintf("%s/orders/%s", s.config.FrontendURL, url.PathEscape(data.OrderNumber)),
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Order Confirmed - %s", data.OrderNumber)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// SendPasswordResetEmail sends a password reset email
func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	// Build the reset URL
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := s.renderTemplate("password_reset", passwordResetTemplate, struct {
		Email    string
		ResetURL string
		AppName  string
	}{
		Email:    toEmail,
		ResetURL: resetURL,
		AppName:  "FreshBasket",
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Reset Your Password - FreshBasket"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func (s *EmailService) renderTemplate(name, body string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// welcomeTemplate is the HTML template for welcome emails
const welcomeTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Welcome</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #2f855a 0%, #38a169 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.AppName}}</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 20px 0; font-size: 24px; font-weight: 600;">Welcome, {{.Name}}!</h2>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
                                Your account is ready. Fresh groceries are a few clicks away, and every order earns you loyalty points you can spend on your next basket.
                            </p>
                            <table role="presentation" style="margin: 0 auto 30px auto;">
                                <tr>
                                    <td style="background: linear-gradient(135deg, #2f855a 0%, #38a169 100%); border-radius: 8px;">
                                        <a href="{{.FrontendURL}}" style="display: inline-block; padding: 16px 32px; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 600;">
                                            Start Shopping
                                        </a>
                                    </td>
                                </tr>
                            </table>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #cbd5e0; font-size: 12px; margin: 0;">
                                © 2026 {{.AppName}}. All rights reserved.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`

// orderConfirmationTemplate is the HTML template for order confirmation emails
const orderConfirmationTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Order Confirmed</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #2f855a 0%, #38a169 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.AppName}}</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 10px 0; font-size: 24px; font-weight: 600;">Thanks for your order, {{.CustomerName}}!</h2>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 30px 0;">
                                Order <strong>{{.OrderNumber}}</strong> is confirmed and being prepared.
                            </p>
                            <table role="presentation" style="width: 100%; border-collapse: collapse; margin-bottom: 30px;">
                                {{range .Lines}}
                                <tr>
                                    <td style="padding: 8px 0; color: #4a5568; font-size: 14px; border-bottom: 1px solid #e2e8f0;">{{.ProductName}} × {{.Quantity}}</td>
                                    <td style="padding: 8px 0; color: #4a5568; font-size: 14px; text-align: right; border-bottom: 1px solid #e2e8f0;">{{.LineTotal}}</td>
                                </tr>
                                {{end}}
                                <tr>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px;">Subtotal</td>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px; text-align: right;">{{.SubTotal}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px;">Discount</td>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px; text-align: right;">-{{.Discount}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px;">Loyalty credit</td>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px; text-align: right;">-{{.LoyaltyCredit}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px;">Shipping</td>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px; text-align: right;">{{.Shipping}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px;">Tax</td>
                                    <td style="padding: 8px 0; color: #718096; font-size: 14px; text-align: right;">{{.Tax}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 12px 0; color: #1a1a2e; font-size: 16px; font-weight: 600; border-top: 2px solid #e2e8f0;">Total</td>
                                    <td style="padding: 12px 0; color: #1a1a2e; font-size: 16px; font-weight: 600; text-align: right; border-top: 2px solid #e2e8f0;">{{.Total}}</td>
                                </tr>
                            </table>
                            {{if .PointsEarned}}
                            <p style="color: #2f855a; font-size: 14px; line-height: 1.6; margin: 0 0 30px 0;">
                                You earned <strong>{{.PointsEarned}}</strong> loyalty points with this order.
                            </p>
                            {{end}}
                            <table role="presentation" style="margin: 0 auto;">
                                <tr>
                                    <td style="background: linear-gradient(135deg, #2f855a 0%, #38a169 100%); border-radius: 8px;">
                                        <a href="{{.OrderURL}}" style="display: inline-block; padding: 16px 32px; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 600;">
                                            Track Your Order
                                        </a>
                                    </td>
                                </tr>
                            </table>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #cbd5e0; font-size: 12px; margin: 0;">
                                © 2026 {{.AppName}}. All rights reserved.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`

// passwordResetTemplate is the HTML template for password reset emails
const passwordResetTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Reset Your Password</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #2f855a 0%, #38a169 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.AppName}}</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 20px 0; font-size: 24px; font-weight: 600;">Reset Your Password</h2>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
                                We received a request to reset the password for the account associated with <strong>{{.Email}}</strong>.
                            </p>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 30px 0;">
                                Click the button below to reset your password. This link will expire in <strong>1 hour</strong>.
                            </p>
                            <table role="presentation" style="margin: 0 auto 30px auto;">
                                <tr>
                                    <td style="background: linear-gradient(135deg, #2f855a 0%, #38a169 100%); border-radius: 8px;">
                                        <a href="{{.ResetURL}}" style="display: inline-block; padding: 16px 32px; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 600;">
                                            Reset Password
                                        </a>
                                    </td>
                                </tr>
                            </table>
                            <p style="color: #718096; font-size: 14px; line-height: 1.6; margin: 0;">
                                If you didn't request this password reset, you can safely ignore this email. Your password will remain unchanged.
                            </p>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #cbd5e0; font-size: 12px; margin: 0;">
                                © 2026 {{.AppName}}. All rights reserved.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`

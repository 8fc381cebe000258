package services

import (
	"bytes"
	"html/template"
)

const (
	verificationSubject = "Verify Your Email - To-Do App"
	resetSubject        = "Reset Your Password - To-Do App"
)

type mailData struct {
	Link string
}

var verificationMail = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #6366f1; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .button { display: inline-block; padding: 12px 30px; background: #6366f1; color: white; text-decoration: none; border-radius: 6px; margin: 20px 0; }
    .footer { text-align: center; margin-top: 20px; color: #6b7280; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Welcome to To-Do App!</h1></div>
    <div class="content">
      <h2>Verify Your Email Address</h2>
      <p>Thank you for signing up! Please click the button below to verify your email address and activate your account.</p>
      <a href="{{.Link}}" class="button">Verify Email</a>
      <p>Or copy and paste this link in your browser:</p>
      <p style="word-break: break-all; color: #6366f1;">{{.Link}}</p>
      <p><strong>This link will expire in 24 hours.</strong></p>
    </div>
    <div class="footer"><p>If you didn't create an account, please ignore this email.</p></div>
  </div>
</body>
</html>
`))

var resetMail = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #ef4444; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .button { display: inline-block; padding: 12px 30px; background: #ef4444; color: white; text-decoration: none; border-radius: 6px; margin: 20px 0; }
    .footer { text-align: center; margin-top: 20px; color: #6b7280; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Password Reset Request</h1></div>
    <div class="content">
      <h2>Reset Your Password</h2>
      <p>We received a request to reset your password. Click the button below to create a new password.</p>
      <a href="{{.Link}}" class="button">Reset Password</a>
      <p>Or copy and paste this link in your browser:</p>
      <p style="word-break: break-all; color: #ef4444;">{{.Link}}</p>
      <p><strong>This link will expire in 1 hour.</strong></p>
    </div>
    <div class="footer"><p>If you didn't request a password reset, please ignore this email or contact support if you have concerns.</p></div>
  </div>
</body>
</html>
`))

func renderMail(tmpl *template.Template, link string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, mailData{Link: link}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package mailer

import "html/template"

type otpTemplateData struct {
	Name  string
	OTP   string
	Brand string
}

var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937;">
    <h2>Welcome to {{.Brand}}, {{.Name}}!</h2>
    <p>Use the code below to verify your account.</p>
    <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">{{.OTP}}</p>
    <p>If you did not create an account you can ignore this email.</p>
  </body>
</html>`))

var passwordTemplate = template.Must(template.New("password").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937;">
    <h2>Hi {{.Name}},</h2>
    <p>We received a request to reset your {{.Brand}} password. Your code is:</p>
    <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">{{.OTP}}</p>
    <p>If you did not ask for a reset, your password is unchanged.</p>
  </body>
</html>`))

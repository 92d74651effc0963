package utils

import (
	"fmt"
	"html"
)

const mailStyle = `
		<style>
			body {
				font-family: Arial, sans-serif;
				background-color: #f4f4f4;
				margin: 0;
				padding: 0;
			}
			.container {
				background-color: #ffffff;
				margin: 20px auto;
				padding: 20px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
				max-width: 600px;
			}
			h1 {
				color: #333333;
			}
			p {
				color: #666666;
			}
			.code {
				font-weight: bold;
				color: #007bff;
			}
		</style>`

// wrapHTML places already escaped body markup in the shared layout.
func wrapHTML(title, body string) string {
	return `
	<!DOCTYPE html>
	<html>
	<head>
		<title>` + html.EscapeString(title) + `</title>` + mailStyle + `
	</head>
	<body>
		<div class="container">
			<h1>` + html.EscapeString(title) + `</h1>
			` + body + `
		</div>
	</body>
	</html>
	`
}

func ResetCodeEmail(to, code string) Email {
	return Email{
		To:      to,
		Subject: "Password Reset Code",
		Text:    "Your password reset code is: " + code,
		HTML: wrapHTML("Password Reset Code",
			`<p>Your password reset code is:</p>
			<p class="code">`+html.EscapeString(code)+`</p>
			<p>If you did not request a password reset, please ignore this email.</p>`),
	}
}

// ResetLinkEmail is used when the identity provider issues a reset link
// instead of a code.
func ResetLinkEmail(to, link string) Email {
	return Email{
		To:      to,
		Subject: "Reset your MediCare password",
		Text:    "Follow this link to reset your password: " + link,
		HTML: wrapHTML("Reset your password",
			`<p>Follow this link to reset your password:</p>
			<p><a class="code" href="`+html.EscapeString(link)+`">Reset password</a></p>
			<p>If you did not request a password reset, please ignore this email.</p>`),
	}
}

func VerificationEmail(to, name, link string) Email {
	return Email{
		To:      to,
		Subject: "Verify your MediCare account",
		Text:    fmt.Sprintf("Hello %s, confirm your e-mail address by opening: %s", name, link),
		HTML: wrapHTML("Verify your e-mail",
			`<p>Hello `+html.EscapeString(name)+`,</p>
			<p>Please confirm your e-mail address to finish setting up your account.</p>
			<p><a class="code" href="`+html.EscapeString(link)+`">Verify e-mail</a></p>`),
	}
}

func BookingConfirmationEmail(to, patientName, doctorName, date, slot string, total float64) Email {
	return Email{
		To:      to,
		Subject: "Appointment confirmed with " + doctorName,
		Text: fmt.Sprintf("Hello %s, your clinic visit with %s on %s at %s is confirmed. Amount paid: Rs. %.2f",
			patientName, doctorName, date, slot, total),
		HTML: wrapHTML("Appointment confirmed",
			`<p>Hello `+html.EscapeString(patientName)+`,</p>
			<p>Your clinic visit with <strong>`+html.EscapeString(doctorName)+`</strong> is confirmed.</p>
			<p class="code">`+html.EscapeString(date)+` at `+html.EscapeString(slot)+`</p>
			<p>Amount paid: Rs. `+fmt.Sprintf("%.2f", total)+`</p>`),
	}
}

func ReminderEmail(to, patientName, doctorName, date, slot string) Email {
	return Email{
		To:      to,
		Subject: "Reminder: appointment tomorrow with " + doctorName,
		Text: fmt.Sprintf("Hello %s, this is a reminder of your appointment with %s on %s at %s.",
			patientName, doctorName, date, slot),
		HTML: wrapHTML("Appointment reminder",
			`<p>Hello `+html.EscapeString(patientName)+`,</p>
			<p>This is a reminder of your appointment with <strong>`+html.EscapeString(doctorName)+`</strong>.</p>
			<p class="code">`+html.EscapeString(date)+` at `+html.EscapeString(slot)+`</p>`),
	}
}

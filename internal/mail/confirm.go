package mail

import (
	"context"
	"fmt"

	"github.com/glibera/readlogger/internal/auth"
)

// confirmTemplate holds the per-language confirmation email texts.
type confirmTemplate struct {
	subject string
	body    string
}

// The %s placeholder receives the confirmation link.
var confirmTemplates = map[string]confirmTemplate{
	"en": {
		subject: "Welcome to the Read Logger Service!",
		body: "Welcome to our service,\r\n" +
			"We are very happy that you joined our society.\r\n\r\n" +
			"Please confirm your email by clicking the link below:\r\n" +
			"%s\r\n\r\n" +
			"Welcome,\r\n" +
			"Read Logger Team\r\n\r\n" +
			"If you did not sign up to the Read Logger service please ignore this email.",
	},
	"pl": {
		subject: "Witamy w serwisie Czytacz!",
		body: "Witamy w naszym serwisie,\r\n" +
			"Jesteśmy szczęśliwi, że dołączyłeś(aś) do naszej społeczności.\r\n\r\n" +
			"Proszę, potwierdź swój adres e-mail klikając w poniższy link:\r\n" +
			"%s\r\n\r\n" +
			"Witamy,\r\n" +
			"Zespół Czytacza\r\n\r\n" +
			"Jeśli nie rejestrowałeś(aś) się w serwisie Czytacz, proszę zignoruj tego e-maila.",
	},
}

// ConfirmMailer composes and sends account confirmation emails.
type ConfirmMailer struct {
	sender  Sender
	linkFmt string
}

// NewConfirmMailer creates a confirmation mailer. linkFmt must contain one %s
// placeholder receiving the opaque confirmation payload.
func NewConfirmMailer(sender Sender, linkFmt string) *ConfirmMailer {
	return &ConfirmMailer{sender: sender, linkFmt: linkFmt}
}

// SendConfirmation sends the confirmation email in the user's language.
// Unsupported languages fall back to English.
func (m *ConfirmMailer) SendConfirmation(ctx context.Context, email, token, language string) error {
	tpl, ok := confirmTemplates[language]
	if !ok {
		tpl = confirmTemplates["en"]
	}

	link := fmt.Sprintf(m.linkFmt, auth.EncodeConfirmLink(email, token))
	body := fmt.Sprintf(tpl.body, link)

	return m.sender.Send(ctx, email, tpl.subject, body)
}

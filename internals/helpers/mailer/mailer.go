package mailer

import (
	"bytes"
	"context"
	"html/template"

	"github.com/rs/zerolog"
)

const (
	welcomeSubject = "Bienvenue à la Newsletter ASAFS"
	contactSubject = "Nous avons reçu votre message - ASAFS"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: auto;">
  <h1 style="color: #2563eb;">Bienvenue chez ASAFS !</h1>
  <p>Merci de vous être inscrit à notre newsletter.</p>
  <p>Vous recevrez désormais nos dernières actualités, événements et programmes directement dans votre boîte mail.</p>
  <hr />
  <p style="font-size: 0.8em; color: #666;">Si vous n'êtes pas à l'origine de cette inscription, veuillez ignorer ce message ou nous contacter.</p>
</div>
`))

var contactTmpl = template.Must(template.New("contact").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: auto;">
  <h2 style="color: #2563eb;">Bonjour {{.Name}},</h2>
  <p>Nous avons bien reçu votre message et nous vous remercions de nous avoir contactés.</p>
  <p>Notre équipe examine votre demande et vous répondra dans les plus brefs délais.</p>
  <br />
  <p>Cordialement,<br />L'équipe ASAFS</p>
</div>
`))

// Mailer renders the transactional emails. Delivery failures are logged
// and swallowed so the calling request still succeeds.
type Mailer struct {
	sender Sender
	log    zerolog.Logger
}

func New(sender Sender, log zerolog.Logger) *Mailer {
	return &Mailer{sender: sender, log: log.With().Str("component", "mailer").Logger()}
}

func (m *Mailer) SendWelcomeNewsletter(ctx context.Context, email string) {
	m.render(ctx, email, welcomeSubject, welcomeTmpl, nil)
}

func (m *Mailer) SendContactAcknowledgment(ctx context.Context, email, name string) {
	m.render(ctx, email, contactSubject, contactTmpl, struct{ Name string }{name})
}

func (m *Mailer) render(ctx context.Context, to, subject string, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		m.log.Error().Err(err).Str("template", tmpl.Name()).Msg("render email")
		return
	}
	if err := m.sender.Send(ctx, to, subject, buf.String()); err != nil {
		m.log.Error().Err(err).Str("to", to).Msg("failed to send email")
	}
}

package notifications

import (
	"bytes"
	"html/template"
	"strings"

	"niiting-backend/internal/store"
)

const welcomeTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Hello,</p>
  <p>Thank you for joining the {{.SiteName}} mailing list.</p>
  <p>{{.Tagline}}</p>
  <p>You will hear from us when new work or journal entries go up. Nothing more often than that.</p>
  <p>&mdash; {{.Signature}}</p>
</body>
</html>`

var welcomeTmpl = template.Must(template.New("subscribe_welcome").Parse(welcomeTemplate))

type welcomeData struct {
	SiteName  string
	Tagline   string
	Signature string
}

func buildWelcomeHTML(sub store.Subscriber, settings store.SiteSettings, siteName string) (string, error) {
	tagline := strings.TrimSpace(settings.Navbar.Subtitle)
	if tagline == "" {
		tagline = strings.TrimSpace(settings.Hero.Description)
	}
	signature := siteName
	if contact := strings.TrimSpace(settings.Footer.ContactEmail); contact != "" {
		signature = siteName + " · " + contact
	}
	data := welcomeData{
		SiteName:  siteName,
		Tagline:   tagline,
		Signature: signature,
	}
	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

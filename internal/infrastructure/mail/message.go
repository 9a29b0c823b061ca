package mail

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"placement_service/internal/domain/entities"
)

const (
	defaultClickSource = "바로기업 홈페이지"
	footerNotice       = "본 메일은 한평생 바로기업 웹사이트를 통해 수신되었습니다."
	footerAddress      = "서울시 도봉구 창동 마들로13길 61 씨드큐브 905호 | 02-2135-6221"
)

var kst = time.FixedZone("KST", 9*3600)

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

// Message is a rendered email ready for any transport.
type Message struct {
	From     string
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

type consultationView struct {
	Subject       string
	Name          string
	Contact       string
	TelLink       string
	ClickSource   string
	Education     string
	Reason        string
	SubmittedAt   string
	FooterNotice  string
	FooterAddress string
}

// BuildConsultationMessage renders the operator notice for a new consultation.
func BuildConsultationMessage(from string, to []string, c entities.Consultation) (Message, error) {
	source := strings.TrimSpace(c.ClickSource)
	if source == "" {
		source = defaultClickSource
	}
	submitted := c.CreatedAt
	if submitted.IsZero() {
		submitted = time.Now()
	}

	view := consultationView{
		Subject:       "[상담 접수] " + c.Name + "님",
		Name:          c.Name,
		Contact:       c.Contact,
		TelLink:       strings.ReplaceAll(c.Contact, "-", ""),
		ClickSource:   source,
		Education:     c.Education,
		Reason:        c.Reason,
		SubmittedAt:   submitted.In(kst).Format("2006-01-02 15:04:05"),
		FooterNotice:  footerNotice,
		FooterAddress: footerAddress,
	}

	var html, text bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, "consultation.html", view); err != nil {
		return Message{}, err
	}
	if err := textTemplates.ExecuteTemplate(&text, "consultation.txt", view); err != nil {
		return Message{}, err
	}

	return Message{
		From:     from,
		To:       to,
		Subject:  view.Subject,
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}

// FormatFrom builds a From header value; a blank name yields the bare address.
func FormatFrom(name, email string) string {
	if strings.TrimSpace(name) == "" {
		return email
	}
	return name + " <" + email + ">"
}

// Package notifier delivers applicant notifications after booking state
// changes have been committed. Every send runs on its own goroutine:
// delivery is best-effort and never blocks or fails the calling operation.
package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/logger"
	"lab-recruitment-backend/pkg/mailer"
	"lab-recruitment-backend/pkg/sms"
)

const lookupTimeout = 5 * time.Second

const bookingMailTemplate = `<p>Hello,</p>
<p>Your interview for the <b>{{.Choice}}</b> position of <b>{{.RecruitName}}</b> has been booked.</p>
<p>Time: <b>{{.Time}}</b><br>Location: <b>{{.Location}}</b></p>
<p>Please arrive on time.</p>
<p>-- {{.Signature}}</p>`

const cancellationMailTemplate = `<p>Hello,</p>
<p>Your interview for the <b>{{.Choice}}</b> position of <b>{{.RecruitName}}</b>, scheduled at <b>{{.Time}}</b>, has been cancelled.</p>
<p>You may log in and book a new interview slot.</p>
<p>-- {{.Signature}}</p>`

const statusMailTemplate = `<p>Hello,</p>
<p>The status of your submission for the <b>{{.Choice}}</b> position of <b>{{.RecruitName}}</b> has been updated to: <b>{{.StatusName}}</b>.</p>
<p>Please log in to our website for details.</p>
<p>-- {{.Signature}}</p>`

// smsStatuses are the terminal statuses that additionally trigger an SMS
var smsStatuses = map[string]bool{
	domain.StatusResumePassed.Name():      true,
	domain.StatusResumeRejected.Name():    true,
	domain.StatusInterviewRejected.Name(): true,
	domain.StatusAdmitted.Name():          true,
}

type mailData struct {
	RecruitName string
	Choice      string
	Time        string
	Location    string
	StatusName  string
	Signature   string
}

// Notifier resolves applicant contact addresses and sends booking mail/SMS
type Notifier struct {
	userRepo  domain.UserRepository
	mailer    *mailer.Mailer
	sms       *sms.Client // nil when SMS is not configured
	signature string

	bookingTmpl      *template.Template
	cancellationTmpl *template.Template
	statusTmpl       *template.Template
}

// New creates a notifier. The SMS client may be nil.
func New(userRepo domain.UserRepository, m *mailer.Mailer, smsClient *sms.Client, signature string) *Notifier {
	return &Notifier{
		userRepo:         userRepo,
		mailer:           m,
		sms:              smsClient,
		signature:        signature,
		bookingTmpl:      template.Must(template.New("booking").Parse(bookingMailTemplate)),
		cancellationTmpl: template.Must(template.New("cancellation").Parse(cancellationMailTemplate)),
		statusTmpl:       template.Must(template.New("status").Parse(statusMailTemplate)),
	}
}

// NotifyBooking sends the booking confirmation mail
func (n *Notifier) NotifyBooking(uid string, notice domain.BookingNotice) {
	go n.sendMail(uid, "Interview booking confirmed", n.bookingTmpl, mailData{
		RecruitName: notice.RecruitName,
		Choice:      notice.Choice,
		Time:        notice.Time.Format(time.DateTime),
		Location:    notice.Location,
		Signature:   n.signature,
	})
}

// NotifyCancellation sends the cancellation mail
func (n *Notifier) NotifyCancellation(uid string, notice domain.BookingNotice) {
	go n.sendMail(uid, "Interview cancelled", n.cancellationTmpl, mailData{
		RecruitName: notice.RecruitName,
		Choice:      notice.Choice,
		Time:        notice.Time.Format(time.DateTime),
		Location:    notice.Location,
		Signature:   n.signature,
	})
}

// NotifyStatusChange sends the status update mail, plus an SMS for terminal
// statuses when the applicant has a phone number on file
func (n *Notifier) NotifyStatusChange(uid, recruitName, choice, statusName string) {
	go func() {
		user := n.lookupUser(uid)
		if user == nil {
			return
		}

		n.deliverMail(user, fmt.Sprintf("Your submission status is now: %s", statusName), n.statusTmpl, mailData{
			RecruitName: recruitName,
			Choice:      choice,
			StatusName:  statusName,
			Signature:   n.signature,
		})

		if n.sms == nil || !smsStatuses[statusName] || user.Phone == nil || *user.Phone == "" {
			return
		}
		content := fmt.Sprintf(
			"[%s] Your submission for the %s position of %s has been updated to: %s.",
			n.signature, choice, recruitName, statusName,
		)
		if err := n.sms.Send(*user.Phone, content); err != nil {
			logger.Log.Error("Failed to send status SMS", "uid", uid, "error", err)
		}
	}()
}

func (n *Notifier) sendMail(uid, subject string, tmpl *template.Template, data mailData) {
	user := n.lookupUser(uid)
	if user == nil {
		return
	}
	n.deliverMail(user, subject, tmpl, data)
}

func (n *Notifier) lookupUser(uid string) *domain.User {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	user, err := n.userRepo.GetByID(ctx, uid)
	if err != nil {
		logger.Log.Error("Failed to resolve user for notification", "uid", uid, "error", err)
		return nil
	}
	if user.Email == "" {
		logger.Log.Warn("User has no email address, skipping notification", "uid", uid)
		return nil
	}
	return user
}

func (n *Notifier) deliverMail(user *domain.User, subject string, tmpl *template.Template, data mailData) {
	if !n.mailer.IsConfigured() {
		logger.Log.Warn("Mailer not configured, dropping notification", "uid", user.UID)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		logger.Log.Error("Failed to render notification mail", "uid", user.UID, "error", err)
		return
	}
	if err := n.mailer.Send(user.Email, subject, body.String()); err != nil {
		logger.Log.Error("Failed to send notification mail", "uid", user.UID, "error", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/leadgenius/internal/entity"
	"github.com/xavierca1/leadgenius/internal/infra/integration/sendgrid"
	"github.com/xavierca1/leadgenius/internal/infra/mail"
)

type DispatchEmailUseCase struct {
	Repo        entity.LeadRepositoryInterface
	Log         entity.SendLogRepositoryInterface
	Email       EmailGateway
	FromAddress string
	FromName    string
}

func NewDispatchEmailUseCase(
	repo entity.LeadRepositoryInterface,
	sendLog entity.SendLogRepositoryInterface,
	email EmailGateway,
	fromAddress, fromName string,
) *DispatchEmailUseCase {
	return &DispatchEmailUseCase{
		Repo:        repo,
		Log:         sendLog,
		Email:       email,
		FromAddress: fromAddress,
		FromName:    fromName,
	}
}

// SendEmail wraps the draft body in the HTML layout, sends it, and appends a
// send-log entry whatever the outcome. Only a successful send moves the lead
// to Contacted; a rejected send leaves the status untouched and surfaces the
// failure. There is no automatic retry.
func (uc *DispatchEmailUseCase) SendEmail(ctx context.Context, leadID string, draft entity.OutreachDraft) (*entity.SendLogEntry, error) {
	if uc.Email == nil {
		return nil, &DomainError{
			Code:    CodeDispatchDisabled,
			Message: "email dispatch is disabled: no email credentials configured",
		}
	}

	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: CodeLeadNotFound, Message: "no lead with id " + leadID}
		}
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: err.Error()}
	}

	if lead.Email == "" {
		return nil, &DomainError{
			Code:    CodeLeadHasNoEmail,
			Message: lead.Name + " has no contact email on record",
		}
	}

	if strings.TrimSpace(draft.Subject) == "" || strings.TrimSpace(draft.EmailBody) == "" {
		return nil, &DomainError{Code: CodeEmptyDraft, Message: "draft subject and body are required"}
	}

	htmlBody, err := mail.FormatOutreachHTML(draft.EmailBody, uc.FromName)
	if err != nil {
		return nil, &TechnicalError{Code: CodeEmailError, Message: err.Error()}
	}

	entry := &entity.SendLogEntry{
		LeadID:    lead.ID,
		To:        lead.Email,
		Subject:   draft.Subject,
		Timestamp: time.Now(),
		Channel:   entity.ChannelEmail,
	}

	sendErr := uc.Email.Send(ctx, sendgrid.SendInput{
		From:     uc.FromAddress,
		FromName: uc.FromName,
		To:       lead.Email,
		Subject:  draft.Subject,
		HTMLBody: htmlBody,
	})

	if sendErr != nil {
		entry.Outcome = entity.OutcomeFailure
		entry.Message = sendErr.Error()
		uc.appendLog(ctx, entry)

		return nil, &TechnicalError{
			Code:    CodeEmailError,
			Message: "failed to send email to " + lead.Name + ": " + sendErr.Error(),
		}
	}

	entry.Outcome = entity.OutcomeSuccess
	entry.Message = "sent to " + lead.Email
	uc.appendLog(ctx, entry)

	status := entity.StatusContacted
	if _, err := uc.Repo.Update(ctx, lead.ID, entity.LeadUpdate{Status: &status}); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "email sent but status update failed: " + err.Error(),
		}
	}

	return entry, nil
}

// LinkedInMessage hands the LinkedIn variant back for the caller to place on
// a clipboard. Pure data hand-off, no network call.
func (uc *DispatchEmailUseCase) LinkedInMessage(draft entity.OutreachDraft) string {
	return draft.LinkedInMessage
}

// Reject is the shortcut that parks a lead as Rejected.
func (uc *DispatchEmailUseCase) Reject(ctx context.Context, leadID string) (*entity.Lead, error) {
	status := entity.StatusRejected
	lead, err := uc.Repo.Update(ctx, leadID, entity.LeadUpdate{Status: &status})
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: CodeLeadNotFound, Message: "no lead with id " + leadID}
		}
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: err.Error()}
	}
	return lead, nil
}

func (uc *DispatchEmailUseCase) appendLog(ctx context.Context, entry *entity.SendLogEntry) {
	if uc.Log == nil {
		return
	}
	if err := uc.Log.Append(ctx, entry); err != nil {
		log.Printf("failed to append send log entry for %s: %v", entry.LeadID, err)
	}
}

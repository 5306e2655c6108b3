package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xavierca1/leadgenius/internal/entity"
	"github.com/xavierca1/leadgenius/internal/infra/integration/gemini"
)

// StrategyLabel names the prompt recipe used for every draft. If the prompt
// template changes in an incompatible way, bump this so exported drafts say
// which recipe produced them.
const StrategyLabel = "growthboost-personalized-v1"

type ComposeOutreachUseCase struct {
	Generator OutreachGenerator
}

func NewComposeOutreachUseCase(generator OutreachGenerator) *ComposeOutreachUseCase {
	return &ComposeOutreachUseCase{Generator: generator}
}

// Execute composes one draft. The external API does the writing; the
// personalization score is computed locally by checking the text for
// lead-specific tokens rather than trusting the model's self-report.
func (uc *ComposeOutreachUseCase) Execute(ctx context.Context, lead entity.Lead) (*entity.OutreachDraft, error) {
	if uc.Generator == nil {
		return nil, &DomainError{
			Code:    CodeComposerDisabled,
			Message: "outreach composition is disabled: no generative API key configured",
		}
	}

	businessType := lead.Category
	if businessType == "" {
		businessType = "a local business"
	}

	out, err := uc.Generator.GenerateOutreach(ctx, gemini.OutreachInput{
		BusinessName: lead.Name,
		BusinessType: businessType,
		Location:     lead.Address,
		Website:      lead.Website,
		Phone:        lead.Phone,
		Email:        lead.Email,
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeCompositionError,
			Message: "failed to compose outreach for " + lead.Name + ": " + err.Error(),
		}
	}

	return &entity.OutreachDraft{
		LeadID:               lead.ID,
		Subject:              out.Subject,
		EmailBody:            out.EmailBody,
		LinkedInMessage:      out.LinkedInDM,
		PersonalizationScore: personalizationScore(lead, out.Subject+" "+out.EmailBody),
		Strategy:             StrategyLabel,
		WordCount:            wordCount(out.EmailBody),
		GeneratedAt:          time.Now(),
	}, nil
}

// ExecuteBatch composes drafts for many leads, each independently. Failures
// are collected, not propagated; the progress callback fires per lead.
func (uc *ComposeOutreachUseCase) ExecuteBatch(ctx context.Context, leads []entity.Lead, progress func(ComposeProgress)) (*BatchComposeOutput, error) {
	if uc.Generator == nil {
		return nil, &DomainError{
			Code:    CodeComposerDisabled,
			Message: "outreach composition is disabled: no generative API key configured",
		}
	}

	output := &BatchComposeOutput{Drafts: []entity.OutreachDraft{}}

	for i, lead := range leads {
		draft, err := uc.Execute(ctx, lead)

		if err != nil {
			output.Failures = append(output.Failures, ComposeFailure{
				LeadID:   lead.ID,
				LeadName: lead.Name,
				Reason:   err.Error(),
			})
		} else {
			output.Drafts = append(output.Drafts, *draft)
		}

		if progress != nil {
			p := ComposeProgress{Index: i + 1, Total: len(leads), LeadName: lead.Name, Failed: err != nil}
			if err != nil {
				p.Message = err.Error()
			}
			progress(p)
		}
	}

	return output, nil
}

// SaveDrafts exports drafts to a timestamped JSON side file and returns the
// path written. Drafts are never persisted with the leads themselves.
func (uc *ComposeOutreachUseCase) SaveDrafts(drafts []entity.OutreachDraft, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	name := fmt.Sprintf("outreach_messages_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save outreach drafts: %w", err)
	}

	return path, nil
}

// personalizationScore checks whether the generated text actually mentions
// the lead: name is worth 4 points, city 3, category 3. Generic filler
// scores zero.
func personalizationScore(lead entity.Lead, text string) float64 {
	lower := strings.ToLower(text)
	score := 0.0

	if lead.Name != "" && strings.Contains(lower, strings.ToLower(lead.Name)) {
		score += 4
	}
	if city := cityToken(lead.Address); city != "" && strings.Contains(lower, strings.ToLower(city)) {
		score += 3
	}
	if lead.Category != "" && strings.Contains(lower, strings.ToLower(lead.Category)) {
		score += 3
	}

	return score
}

// cityToken pulls the city out of a formatted address. "123 Main St,
// Denver, CO 80202" yields "Denver"; a bare "Denver, CO" yields "Denver".
func cityToken(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) >= 3 {
		return strings.TrimSpace(parts[len(parts)-2])
	}
	if len(parts) >= 1 && strings.TrimSpace(parts[0]) != "" {
		return strings.TrimSpace(parts[0])
	}
	return ""
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

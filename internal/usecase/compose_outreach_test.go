package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadgenius/internal/entity"
	"github.com/xavierca1/leadgenius/internal/infra/integration/gemini"
)

func testLead() entity.Lead {
	return entity.Lead{
		ID:       "lead-1",
		Name:     "Riverside Law",
		Address:  "88 River Rd, Denver, CO 80202",
		Category: "law firm",
		Website:  "https://riverside.law",
		Email:    "info@riverside.law",
		Status:   entity.StatusNew,
	}
}

func TestComposeOutreach(t *testing.T) {
	generator := new(MockOutreachGenerator)
	generator.On("GenerateOutreach", mock.Anything, mock.MatchedBy(func(input gemini.OutreachInput) bool {
		return input.BusinessName == "Riverside Law" && input.BusinessType == "law firm"
	})).Return(&gemini.OutreachOutput{
		Subject:    "A thought for Riverside Law",
		EmailBody:  "Hi, I noticed Riverside Law serves Denver and had an idea worth sharing. Open to it?",
		LinkedInDM: "Hi! Quick idea for Riverside Law.",
	}, nil)

	uc := NewComposeOutreachUseCase(generator)
	draft, err := uc.Execute(context.Background(), testLead())

	assert.Nil(t, err)
	assert.Equal(t, "lead-1", draft.LeadID)
	assert.Equal(t, "A thought for Riverside Law", draft.Subject)
	assert.Equal(t, StrategyLabel, draft.Strategy)
	assert.Equal(t, 16, draft.WordCount)
	assert.False(t, draft.GeneratedAt.IsZero())

	// name (4) + city (3), no category mention
	assert.Equal(t, 7.0, draft.PersonalizationScore)
}

func TestComposeOutreachDefaultsBusinessType(t *testing.T) {
	generator := new(MockOutreachGenerator)
	generator.On("GenerateOutreach", mock.Anything, mock.MatchedBy(func(input gemini.OutreachInput) bool {
		return input.BusinessType == "a local business"
	})).Return(&gemini.OutreachOutput{Subject: "s", EmailBody: "b", LinkedInDM: "d"}, nil)

	lead := testLead()
	lead.Category = ""

	uc := NewComposeOutreachUseCase(generator)
	_, err := uc.Execute(context.Background(), lead)

	assert.Nil(t, err)
	generator.AssertExpectations(t)
}

func TestComposeOutreachWhenGeneratorFails(t *testing.T) {
	generator := new(MockOutreachGenerator)
	generator.On("GenerateOutreach", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

	uc := NewComposeOutreachUseCase(generator)
	draft, err := uc.Execute(context.Background(), testLead())

	assert.Nil(t, draft)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodeCompositionError, err.(*TechnicalError).Code)
}

func TestComposeOutreachWhenDisabled(t *testing.T) {
	uc := NewComposeOutreachUseCase(nil)

	_, err := uc.Execute(context.Background(), testLead())
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeComposerDisabled, err.(*DomainError).Code)

	_, err = uc.ExecuteBatch(context.Background(), []entity.Lead{testLead()}, nil)
	assert.True(t, IsDomainError(err))
}

func TestComposeOutreachBatchContinuesOnFailure(t *testing.T) {
	generator := new(MockOutreachGenerator)
	generator.On("GenerateOutreach", mock.Anything, mock.MatchedBy(func(input gemini.OutreachInput) bool {
		return input.BusinessName == "Riverside Law"
	})).Return(nil, errors.New("quota exceeded"))
	generator.On("GenerateOutreach", mock.Anything, mock.MatchedBy(func(input gemini.OutreachInput) bool {
		return input.BusinessName == "Sunrise Bakery"
	})).Return(&gemini.OutreachOutput{Subject: "s", EmailBody: "b", LinkedInDM: "d"}, nil)

	second := testLead()
	second.ID = "lead-2"
	second.Name = "Sunrise Bakery"

	uc := NewComposeOutreachUseCase(generator)

	var progressed []ComposeProgress
	output, err := uc.ExecuteBatch(context.Background(), []entity.Lead{testLead(), second}, func(p ComposeProgress) {
		progressed = append(progressed, p)
	})

	assert.Nil(t, err)
	assert.Len(t, output.Drafts, 1)
	assert.Equal(t, "lead-2", output.Drafts[0].LeadID)
	assert.Len(t, output.Failures, 1)
	assert.Equal(t, "lead-1", output.Failures[0].LeadID)
	assert.Contains(t, output.Failures[0].Reason, "quota exceeded")

	assert.Len(t, progressed, 2)
	assert.True(t, progressed[0].Failed)
	assert.False(t, progressed[1].Failed)
}

func TestSaveDrafts(t *testing.T) {
	uc := NewComposeOutreachUseCase(nil)
	dir := t.TempDir()

	drafts := []entity.OutreachDraft{{LeadID: "lead-1", Subject: "s", EmailBody: "b"}}
	path, err := uc.SaveDrafts(drafts, dir)

	assert.Nil(t, err)
	assert.Contains(t, path, "outreach_messages_")
	assert.Contains(t, path, ".json")

	data, err := os.ReadFile(path)
	assert.Nil(t, err)

	var saved []entity.OutreachDraft
	assert.Nil(t, json.Unmarshal(data, &saved))
	assert.Len(t, saved, 1)
	assert.Equal(t, "lead-1", saved[0].LeadID)
}

func TestPersonalizationScore(t *testing.T) {
	lead := testLead()

	assert.Equal(t, 0.0, personalizationScore(lead, "Hello, I help businesses grow."))
	assert.Equal(t, 4.0, personalizationScore(lead, "I came across Riverside Law recently."))
	assert.Equal(t, 7.0, personalizationScore(lead, "Riverside Law stood out to me in Denver."))
	assert.Equal(t, 10.0, personalizationScore(lead, "Riverside Law is a Denver law firm worth knowing."))
}

func TestCityToken(t *testing.T) {
	assert.Equal(t, "Denver", cityToken("123 Main St, Denver, CO 80202"))
	assert.Equal(t, "Denver", cityToken("Denver, CO"))
	assert.Equal(t, "Denver", cityToken("Denver"))
	assert.Equal(t, "", cityToken(""))
}

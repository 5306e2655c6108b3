package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadgenius/internal/entity"
	"github.com/xavierca1/leadgenius/internal/infra/integration/places"
)

func TestGenerateLeads(t *testing.T) {
	repo := new(MockLeadRepository)
	directory := new(MockPlacesDirectory)
	scraper := new(MockEmailScraper)

	candidates := []places.Place{
		{Name: "Sunrise Bakery", Address: "12 Main St, Denver, CO", Phone: "555-0100", Website: "https://sunrise.example"},
		{Name: "Moonlight Cafe", Address: "34 Oak Ave, Denver, CO"},
		{Name: "Daybreak Donuts", Website: "https://daybreak.example"},
	}

	directory.On("Search", mock.Anything, "bakery", "Denver", 20).Return(candidates, nil)
	scraper.On("FindEmail", mock.Anything, "https://sunrise.example").Return("hello@sunrise.example", nil)
	scraper.On("FindEmail", mock.Anything, "https://daybreak.example").Return("", errors.New("no email found"))
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Lead")).Return(nil)

	uc := NewGenerateLeadsUseCase(repo, directory, scraper)

	var progressed []GenerateProgress
	output, err := uc.Execute(context.Background(), GenerateLeadsInput{Category: "bakery", Location: "Denver"}, func(p GenerateProgress) {
		progressed = append(progressed, p)
	})

	assert.Nil(t, err)
	assert.Len(t, output.Created, 3)
	assert.Equal(t, 1, output.EmailsFound)
	assert.Equal(t, 0, output.Skipped)

	assert.Equal(t, "Sunrise Bakery", output.Created[0].Name)
	assert.Equal(t, "hello@sunrise.example", output.Created[0].Email)
	assert.Equal(t, "bakery", output.Created[0].Category)
	assert.Equal(t, entity.StatusNew, output.Created[0].Status)

	assert.Empty(t, output.Created[1].Email)
	assert.Empty(t, output.Created[2].Email)

	assert.Len(t, progressed, 3)
	assert.True(t, progressed[0].EmailFound)
	assert.False(t, progressed[2].EmailFound)
	assert.Equal(t, 3, progressed[2].Total)

	repo.AssertNumberOfCalls(t, "Create", 3)
	scraper.AssertNumberOfCalls(t, "FindEmail", 2)
}

func TestGenerateLeadsSkipsNamelessCandidates(t *testing.T) {
	repo := new(MockLeadRepository)
	directory := new(MockPlacesDirectory)

	directory.On("Search", mock.Anything, "bakery", "Denver", 20).Return([]places.Place{
		{Name: ""},
		{Name: "Sunrise Bakery"},
	}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Lead")).Return(nil)

	uc := NewGenerateLeadsUseCase(repo, directory, nil)
	output, err := uc.Execute(context.Background(), GenerateLeadsInput{Category: "bakery", Location: "Denver"}, nil)

	assert.Nil(t, err)
	assert.Len(t, output.Created, 1)
	assert.Equal(t, 1, output.Skipped)
}

func TestGenerateLeadsWhenDirectoryFails(t *testing.T) {
	repo := new(MockLeadRepository)
	directory := new(MockPlacesDirectory)

	directory.On("Search", mock.Anything, "bakery", "Denver", 20).Return(nil, errors.New("REQUEST_DENIED"))

	uc := NewGenerateLeadsUseCase(repo, directory, nil)
	output, err := uc.Execute(context.Background(), GenerateLeadsInput{Category: "bakery", Location: "Denver"}, nil)

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodePlacesError, err.(*TechnicalError).Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerateLeadsWhenDisabled(t *testing.T) {
	uc := NewGenerateLeadsUseCase(new(MockLeadRepository), nil, nil)

	output, err := uc.Execute(context.Background(), GenerateLeadsInput{Category: "bakery", Location: "Denver"}, nil)

	assert.Nil(t, output)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeGeneratorDisabled, err.(*DomainError).Code)
}

func TestGenerateLeadsValidatesInput(t *testing.T) {
	uc := NewGenerateLeadsUseCase(new(MockLeadRepository), new(MockPlacesDirectory), nil)

	_, err := uc.Execute(context.Background(), GenerateLeadsInput{Location: "Denver"}, nil)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeValidation, err.(*DomainError).Code)

	_, err = uc.Execute(context.Background(), GenerateLeadsInput{Category: "bakery"}, nil)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeValidation, err.(*DomainError).Code)
}

func TestGenerateLeadsWhenRepositoryFails(t *testing.T) {
	repo := new(MockLeadRepository)
	directory := new(MockPlacesDirectory)

	directory.On("Search", mock.Anything, "bakery", "Denver", 20).Return([]places.Place{{Name: "Sunrise Bakery"}}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Lead")).Return(errors.New("disk full"))

	uc := NewGenerateLeadsUseCase(repo, directory, nil)
	output, err := uc.Execute(context.Background(), GenerateLeadsInput{Category: "bakery", Location: "Denver"}, nil)

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodeDatabaseError, err.(*TechnicalError).Code)
}

package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/xavierca1/leadgenius/internal/entity"
)

const defaultMaxResults = 20

type GenerateLeadsUseCase struct {
	Repo      entity.LeadRepositoryInterface
	Directory PlacesDirectory
	Scraper   EmailScraper
}

func NewGenerateLeadsUseCase(
	repo entity.LeadRepositoryInterface,
	directory PlacesDirectory,
	scraper EmailScraper,
) *GenerateLeadsUseCase {
	return &GenerateLeadsUseCase{
		Repo:      repo,
		Directory: directory,
		Scraper:   scraper,
	}
}

// Execute runs one bounded generation batch. The directory query failing is
// fatal to the whole run; a website that can't be scraped only costs that
// candidate its email. Every created lead starts as New. The progress
// callback fires after each candidate; pass nil to skip progress reporting.
func (uc *GenerateLeadsUseCase) Execute(ctx context.Context, input GenerateLeadsInput, progress func(GenerateProgress)) (*GenerateLeadsOutput, error) {
	if uc.Directory == nil {
		return nil, &DomainError{
			Code:    CodeGeneratorDisabled,
			Message: "lead generation is disabled: no places API key configured",
		}
	}

	if strings.TrimSpace(input.Category) == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "category is required"}
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "location is required"}
	}
	if input.MaxResults <= 0 {
		input.MaxResults = defaultMaxResults
	}

	candidates, err := uc.Directory.Search(ctx, input.Category, input.Location, input.MaxResults)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodePlacesError,
			Message: "places directory query failed: " + err.Error(),
		}
	}

	output := &GenerateLeadsOutput{Created: []entity.Lead{}}

	for i, candidate := range candidates {
		if strings.TrimSpace(candidate.Name) == "" {
			output.Skipped++
			continue
		}

		email := ""
		if candidate.Website != "" && uc.Scraper != nil {
			found, err := uc.Scraper.FindEmail(ctx, candidate.Website)
			if err != nil {
				log.Printf("could not scrape %s: %v", candidate.Website, err)
			} else if found != "" {
				email = found
				output.EmailsFound++
			}
		}

		lead, err := entity.NewLead(
			candidate.Name,
			candidate.Phone,
			email,
			candidate.Website,
			candidate.Address,
			input.Category,
			entity.StatusNew,
		)
		if err != nil {
			output.Skipped++
			continue
		}

		if err := uc.Repo.Create(ctx, lead); err != nil {
			return nil, &TechnicalError{
				Code:    CodeDatabaseError,
				Message: "failed to persist lead " + lead.Name + ": " + err.Error(),
			}
		}

		output.Created = append(output.Created, *lead)

		if progress != nil {
			progress(GenerateProgress{
				Index:      i + 1,
				Total:      len(candidates),
				LeadName:   lead.Name,
				EmailFound: email != "",
			})
		}
	}

	return output, nil
}

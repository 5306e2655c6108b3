package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadgenius/internal/entity"
	"github.com/xavierca1/leadgenius/internal/infra/integration/gemini"
	"github.com/xavierca1/leadgenius/internal/infra/integration/places"
	"github.com/xavierca1/leadgenius/internal/infra/integration/sendgrid"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id string, update entity.LeadUpdate) (*entity.Lead, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLeadRepository) ExportCSV(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockSendLogRepository struct {
	mock.Mock
}

func (m *MockSendLogRepository) Append(ctx context.Context, entry *entity.SendLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSendLogRepository) List(ctx context.Context) ([]entity.SendLogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SendLogEntry), args.Error(1)
}

type MockPlacesDirectory struct {
	mock.Mock
}

func (m *MockPlacesDirectory) Search(ctx context.Context, category, location string, limit int) ([]places.Place, error) {
	args := m.Called(ctx, category, location, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]places.Place), args.Error(1)
}

type MockEmailScraper struct {
	mock.Mock
}

func (m *MockEmailScraper) FindEmail(ctx context.Context, website string) (string, error) {
	args := m.Called(ctx, website)
	return args.String(0), args.Error(1)
}

type MockOutreachGenerator struct {
	mock.Mock
}

func (m *MockOutreachGenerator) GenerateOutreach(ctx context.Context, input gemini.OutreachInput) (*gemini.OutreachOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gemini.OutreachOutput), args.Error(1)
}

type MockEmailGateway struct {
	mock.Mock
}

func (m *MockEmailGateway) Send(ctx context.Context, input sendgrid.SendInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

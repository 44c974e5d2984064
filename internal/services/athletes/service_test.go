package athletes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/warpedwall/ninja-index/internal/models"
)

// Mock implementation for testing

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAthleteByID(ctx context.Context, id uint) (*models.Athlete, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Athlete), args.Error(1)
}

func (m *MockRepository) GetAthleteByName(ctx context.Context, name string) (*models.Athlete, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Athlete), args.Error(1)
}

func (m *MockRepository) ListAthletes(ctx context.Context) ([]models.Athlete, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Athlete), args.Error(1)
}

func (m *MockRepository) ListAthletesWithCounts(ctx context.Context) ([]AthleteWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]AthleteWithCount), args.Error(1)
}

func (m *MockRepository) CreateAthlete(ctx context.Context, athlete *models.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *MockRepository) UpdateAthlete(ctx context.Context, athlete *models.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *MockRepository) AddAlias(ctx context.Context, id uint, alias string) error {
	args := m.Called(ctx, id, alias)
	return args.Error(0)
}

func (m *MockRepository) DeleteAthlete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestResolveOrCreate_ExistingDisplayName(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	existing := &models.Athlete{Model: gorm.Model{ID: 7}, DisplayName: "Jessie Graff"}
	repo.On("GetAthleteByName", mock.Anything, "Jessie Graff").Return(existing, nil)

	athlete, err := service.ResolveOrCreate(context.Background(), "  Jessie Graff ")
	require.NoError(t, err)
	assert.Equal(t, uint(7), athlete.ID)
	repo.AssertNotCalled(t, "CreateAthlete", mock.Anything, mock.Anything)
}

func TestResolveOrCreate_AliasMatch(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	repo.On("GetAthleteByName", mock.Anything, "The Weatherman").Return(nil, NewNotFoundError("athlete", "The Weatherman"))
	repo.On("ListAthletes", mock.Anything).Return([]models.Athlete{
		{Model: gorm.Model{ID: 3}, DisplayName: "Joe Moravsky", Aliases: datatypes.JSONSlice[string]{"the weatherman"}},
	}, nil)

	athlete, err := service.ResolveOrCreate(context.Background(), "The Weatherman")
	require.NoError(t, err)
	assert.Equal(t, uint(3), athlete.ID)
	assert.Equal(t, "Joe Moravsky", athlete.DisplayName, "canonical display name is preserved")
	repo.AssertNotCalled(t, "CreateAthlete", mock.Anything, mock.Anything)
}

func TestResolveOrCreate_CreatesWhenUnknown(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	repo.On("GetAthleteByName", mock.Anything, "New Ninja").Return(nil, NewNotFoundError("athlete", "New Ninja"))
	repo.On("ListAthletes", mock.Anything).Return([]models.Athlete{}, nil)
	repo.On("CreateAthlete", mock.Anything, mock.MatchedBy(func(a *models.Athlete) bool {
		return a.DisplayName == "New Ninja"
	})).Return(nil)

	athlete, err := service.ResolveOrCreate(context.Background(), "New Ninja")
	require.NoError(t, err)
	assert.Equal(t, "New Ninja", athlete.DisplayName)
	repo.AssertExpectations(t)
}

func TestResolveOrCreate_DuplicateCreateRace(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	winner := &models.Athlete{Model: gorm.Model{ID: 11}, DisplayName: "Kaden Lebsack"}

	// First lookup misses, create collides, second lookup finds the winner
	repo.On("GetAthleteByName", mock.Anything, "Kaden Lebsack").
		Return(nil, NewNotFoundError("athlete", "Kaden Lebsack")).Once()
	repo.On("ListAthletes", mock.Anything).Return([]models.Athlete{}, nil)
	repo.On("CreateAthlete", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
	repo.On("GetAthleteByName", mock.Anything, "Kaden Lebsack").Return(winner, nil).Once()

	athlete, err := service.ResolveOrCreate(context.Background(), "Kaden Lebsack")
	require.NoError(t, err)
	assert.Equal(t, uint(11), athlete.ID)
	repo.AssertExpectations(t)
}

func TestResolveOrCreate_EmptyName(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	_, err := service.ResolveOrCreate(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "GetAthleteByName", mock.Anything, mock.Anything)
}

func TestAddAlias_EmptyAlias(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	err := service.AddAlias(context.Background(), 1, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByUserAndRecruit(ctx context.Context, uid, recruitID string) (*domain.Application, error) {
	args := m.Called(ctx, uid, recruitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListByRecruit(ctx context.Context, recruitID string) ([]domain.Application, error) {
	args := m.Called(ctx, recruitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockRecruitRepo struct {
	mock.Mock
}

func (m *MockRecruitRepo) Create(ctx context.Context, recruit *domain.Recruit) error {
	return m.Called(ctx, recruit).Error(0)
}

func (m *MockRecruitRepo) GetByID(ctx context.Context, id string) (*domain.Recruit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruit), args.Error(1)
}

func (m *MockRecruitRepo) List(ctx context.Context) ([]domain.Recruit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recruit), args.Error(1)
}

func (m *MockRecruitRepo) Update(ctx context.Context, recruit *domain.Recruit) error {
	return m.Called(ctx, recruit).Error(0)
}

func (m *MockRecruitRepo) GetSettings(ctx context.Context, recruitID string) (*domain.RecruitSettings, error) {
	args := m.Called(ctx, recruitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruitSettings), args.Error(1)
}

func (m *MockRecruitRepo) UpsertSettings(ctx context.Context, settings *domain.RecruitSettings) error {
	return m.Called(ctx, settings).Error(0)
}

func TestBatchUpdateStatus(t *testing.T) {
	ctx := context.Background()
	recruit := &domain.Recruit{ID: "rec1", Name: "2026 Autumn Recruitment"}

	t.Run("Should reject an unknown status id", func(t *testing.T) {
		uc := usecase.NewApplicationAdminUsecase(new(MockApplicationRepo), new(MockRecruitRepo), &recordingNotifier{})
		_, err := uc.BatchUpdateStatus(ctx, []string{"a"}, domain.ApplicationStatus(42))
		assertAppCode(t, err, 400)
	})

	t.Run("Should reject an empty id list", func(t *testing.T) {
		uc := usecase.NewApplicationAdminUsecase(new(MockApplicationRepo), new(MockRecruitRepo), &recordingNotifier{})
		_, err := uc.BatchUpdateStatus(ctx, nil, domain.StatusResumePassed)
		assertAppCode(t, err, 400)
	})

	t.Run("Should skip missing submissions and notify the updated ones", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		recruitRepo := new(MockRecruitRepo)
		notifier := &recordingNotifier{}
		uc := usecase.NewApplicationAdminUsecase(appRepo, recruitRepo, notifier)

		appRepo.On("GetByID", ctx, "a").Return(&domain.Application{
			ID: "a", UID: "u1", RecruitID: "rec1", FirstChoice: "backend",
		}, nil)
		appRepo.On("GetByID", ctx, "gone").Return(nil, domain.ErrNotFound)
		appRepo.On("GetByID", ctx, "b").Return(&domain.Application{
			ID: "b", UID: "u2", RecruitID: "rec1", FirstChoice: "backend",
		}, nil)
		appRepo.On("UpdateStatus", ctx, "a", domain.StatusResumePassed).Return(nil)
		appRepo.On("UpdateStatus", ctx, "b", domain.StatusResumePassed).Return(nil)
		recruitRepo.On("GetByID", ctx, "rec1").Return(recruit, nil)

		updated, err := uc.BatchUpdateStatus(ctx, []string{"a", "gone", "b"}, domain.StatusResumePassed)
		require.NoError(t, err)
		assert.Equal(t, 2, updated)
		assert.Equal(t, 2, notifier.statusChanges)
		appRepo.AssertExpectations(t)
	})
}

func TestRecruitValidation(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should reject a cycle without a name", func(t *testing.T) {
		uc := usecase.NewRecruitUsecase(new(MockRecruitRepo), validate)
		_, err := uc.Create(ctx, &domain.Recruit{
			StartTime: time.Now(),
			EndTime:   time.Now().Add(time.Hour),
		})
		assertAppCode(t, err, 400)
	})

	t.Run("Should reject an inverted cycle window", func(t *testing.T) {
		uc := usecase.NewRecruitUsecase(new(MockRecruitRepo), validate)
		_, err := uc.Create(ctx, &domain.Recruit{
			Name:      "2026 Autumn Recruitment",
			StartTime: time.Now().Add(time.Hour),
			EndTime:   time.Now(),
		})
		assertAppCode(t, err, 400)
	})

	t.Run("Should assign an id on create", func(t *testing.T) {
		repo := new(MockRecruitRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Recruit")).Return(nil)
		uc := usecase.NewRecruitUsecase(repo, validate)

		created, err := uc.Create(ctx, &domain.Recruit{
			Name:      "2026 Autumn Recruitment",
			StartTime: time.Now(),
			EndTime:   time.Now().Add(time.Hour),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})
}

func TestRecruitVisibility(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRecruitRepo)
	uc := usecase.NewRecruitUsecase(repo, validator.New())

	now := time.Now()
	repo.On("List", ctx).Return([]domain.Recruit{
		{ID: "open", Active: true, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		{ID: "inactive", Active: false, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		{ID: "closed", Active: true, StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
	}, nil)

	t.Run("Applicants only see active cycles", func(t *testing.T) {
		recruits, err := uc.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, recruits, 2)
		assert.True(t, recruits[0].Available)
		assert.False(t, recruits[1].Available, "a cycle past its end time is not available")
	})

	t.Run("Admins see inactive cycles too", func(t *testing.T) {
		recruits, err := uc.List(ctx, true)
		require.NoError(t, err)
		assert.Len(t, recruits, 3)
	})
}

func TestSetBookingWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an inverted window", func(t *testing.T) {
		uc := usecase.NewRecruitUsecase(new(MockRecruitRepo), validator.New())
		start := time.Now()
		err := uc.SetBookingWindow(ctx, "rec1", start, start)
		assertAppCode(t, err, 400)
	})

	t.Run("Should reject an unknown cycle", func(t *testing.T) {
		repo := new(MockRecruitRepo)
		repo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)
		uc := usecase.NewRecruitUsecase(repo, validator.New())

		err := uc.SetBookingWindow(ctx, "ghost", time.Now(), time.Now().Add(time.Hour))
		assertAppCode(t, err, 404)
	})

	t.Run("Should upsert the window", func(t *testing.T) {
		repo := new(MockRecruitRepo)
		repo.On("GetByID", ctx, "rec1").Return(&domain.Recruit{ID: "rec1"}, nil)
		repo.On("UpsertSettings", ctx, mock.AnythingOfType("*domain.RecruitSettings")).Return(nil).
			Run(func(args mock.Arguments) {
				settings := args.Get(1).(*domain.RecruitSettings)
				assert.Equal(t, "rec1", settings.RecruitID)
			})
		uc := usecase.NewRecruitUsecase(repo, validator.New())

		err := uc.SetBookingWindow(ctx, "rec1", time.Now(), time.Now().Add(time.Hour))
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestInterviewAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Reschedule should require at least one field", func(t *testing.T) {
		uc := usecase.NewInterviewAdminUsecase(newInterviewStore())
		err := uc.Reschedule(ctx, "iv1", domain.InterviewUpdate{})
		assertAppCode(t, err, 400)
	})

	t.Run("Reschedule should report an unknown interview", func(t *testing.T) {
		uc := usecase.NewInterviewAdminUsecase(newInterviewStore())
		loc := "Building 5"
		err := uc.Reschedule(ctx, "ghost", domain.InterviewUpdate{Location: &loc})
		assertAppCode(t, err, 404)
	})

	t.Run("Reschedule should patch only the provided fields", func(t *testing.T) {
		store := newInterviewStore()
		require.NoError(t, store.Create(ctx, &domain.Interview{
			ID: "iv1", ApplicationID: "app1", UID: "u1",
			Time:     time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
			Location: "Building 3, Room 301",
		}))
		uc := usecase.NewInterviewAdminUsecase(store)

		loc := "Building 5, Room 101"
		require.NoError(t, uc.Reschedule(ctx, "iv1", domain.InterviewUpdate{Location: &loc}))

		interview, err := store.GetByID(ctx, "iv1")
		require.NoError(t, err)
		assert.Equal(t, loc, interview.Location)
		assert.Equal(t, time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC), interview.Time)
	})

	t.Run("RecordResult should report an unknown interview", func(t *testing.T) {
		uc := usecase.NewInterviewAdminUsecase(newInterviewStore())
		err := uc.RecordResult(ctx, "ghost", "admin1", true, 90, "solid")
		assertAppCode(t, err, 404)
	})

	t.Run("RecordResult should store the review", func(t *testing.T) {
		store := newInterviewStore()
		require.NoError(t, store.Create(ctx, &domain.Interview{ID: "iv1", UID: "u1"}))
		uc := usecase.NewInterviewAdminUsecase(store)

		require.NoError(t, uc.RecordResult(ctx, "iv1", "admin1", true, 90, "solid"))
		assert.Equal(t, 1, store.reviewCount())
	})
}

// reviewCount reports the stored review count of the in-memory store
func (s *interviewStore) reviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews)
}

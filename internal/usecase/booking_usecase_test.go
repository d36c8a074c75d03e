package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/internal/usecase"
	"lab-recruitment-backend/pkg/apperror"
	"lab-recruitment-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init()
}

// In-memory stores. The booking engine is exercised against real mutable
// state so the concurrent claim behaviour can be tested for real; all
// stores are mutex-guarded and safe for parallel callers.

type appStore struct {
	mu   sync.Mutex
	apps map[string]*domain.Application
}

func newAppStore() *appStore {
	return &appStore{apps: make(map[string]*domain.Application)}
}

func (s *appStore) put(app *domain.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *app
	s.apps[app.ID] = &cp
}

func (s *appStore) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *app
	return &cp, nil
}

func (s *appStore) GetByUserAndRecruit(ctx context.Context, uid, recruitID string) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, app := range s.apps {
		if app.UID == uid && app.RecruitID == recruitID {
			cp := *app
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *appStore) ListByRecruit(ctx context.Context, recruitID string) ([]domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Application
	for _, app := range s.apps {
		if app.RecruitID == recruitID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (s *appStore) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return domain.ErrNotFound
	}
	app.Status = status
	return nil
}

type slotStore struct {
	mu    sync.Mutex
	slots map[string]*domain.InterviewSlot
	rooms *roomStore

	// when set, Create fails with this error
	failCreate error
}

func newSlotStore(rooms *roomStore) *slotStore {
	return &slotStore{slots: make(map[string]*domain.InterviewSlot), rooms: rooms}
}

func (s *slotStore) put(slot *domain.InterviewSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *slot
	s.slots[slot.ID] = &cp
}

func (s *slotStore) Create(ctx context.Context, slot *domain.InterviewSlot) error {
	if s.failCreate != nil {
		return s.failCreate
	}
	s.put(slot)
	return nil
}

func (s *slotStore) GetByID(ctx context.Context, id string) (*domain.InterviewSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *slot
	return &cp, nil
}

func (s *slotStore) GetByInterviewID(ctx context.Context, interviewID string) (*domain.InterviewSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range s.slots {
		if slot.InterviewID != nil && *slot.InterviewID == interviewID {
			cp := *slot
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *slotStore) ListByRoom(ctx context.Context, roomID string) ([]domain.InterviewSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.InterviewSlot
	for _, slot := range s.slots {
		if slot.RoomID == roomID {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (s *slotStore) ListAvailableByRooms(ctx context.Context, roomIDs []string) ([]domain.AvailableSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[string]bool, len(roomIDs))
	for _, id := range roomIDs {
		wanted[id] = true
	}
	var out []domain.AvailableSlot
	for _, slot := range s.slots {
		if slot.Booked || !wanted[slot.RoomID] {
			continue
		}
		room := s.rooms.get(slot.RoomID)
		out = append(out, domain.AvailableSlot{
			SlotID:    slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			RoomName:  room.Name,
			Location:  room.Location,
		})
	}
	return out, nil
}

// Claim mirrors the conditional UPDATE: the booked flag flips only when it
// was unset, and the check and the flip happen under one lock.
func (s *slotStore) Claim(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[id]
	if !ok || slot.Booked {
		return false, nil
	}
	slot.Booked = true
	return true, nil
}

func (s *slotStore) LinkInterview(ctx context.Context, id, interviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[id]
	if !ok {
		return domain.ErrNotFound
	}
	slot.InterviewID = &interviewID
	return nil
}

func (s *slotStore) Release(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[id]
	if !ok {
		return domain.ErrNotFound
	}
	slot.Booked = false
	slot.InterviewID = nil
	return nil
}

func (s *slotStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, id)
	return nil
}

func (s *slotStore) DeleteUnbookedByRoom(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, slot := range s.slots {
		if slot.RoomID == roomID && !slot.Booked {
			delete(s.slots, id)
		}
	}
	return nil
}

func (s *slotStore) HasBookedByRoom(ctx context.Context, roomID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range s.slots {
		if slot.RoomID == roomID && slot.Booked {
			return true, nil
		}
	}
	return false, nil
}

type roomStore struct {
	mu    sync.Mutex
	rooms map[string]*domain.InterviewRoom
}

func newRoomStore() *roomStore {
	return &roomStore{rooms: make(map[string]*domain.InterviewRoom)}
}

func (s *roomStore) get(id string) domain.InterviewRoom {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.rooms[id]
}

func (s *roomStore) Create(ctx context.Context, room *domain.InterviewRoom) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *room
	s.rooms[room.ID] = &cp
	return nil
}

func (s *roomStore) GetByID(ctx context.Context, id string) (*domain.InterviewRoom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *room
	return &cp, nil
}

func (s *roomStore) ListByRecruit(ctx context.Context, recruitID string) ([]domain.InterviewRoom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.InterviewRoom
	for _, room := range s.rooms {
		if room.RecruitID == recruitID {
			out = append(out, *room)
		}
	}
	return out, nil
}

func (s *roomStore) ListByRecruitAndChoice(ctx context.Context, recruitID, choice string) ([]domain.InterviewRoom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.InterviewRoom
	for _, room := range s.rooms {
		if room.RecruitID == recruitID && room.Choice == choice {
			out = append(out, *room)
		}
	}
	return out, nil
}

func (s *roomStore) Update(ctx context.Context, room *domain.InterviewRoom) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *room
	s.rooms[room.ID] = &cp
	return nil
}

func (s *roomStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
	return nil
}

type interviewStore struct {
	mu         sync.Mutex
	interviews map[string]*domain.Interview
	reviews    map[string]*domain.InterviewReview

	failCreate error
}

func newInterviewStore() *interviewStore {
	return &interviewStore{
		interviews: make(map[string]*domain.Interview),
		reviews:    make(map[string]*domain.InterviewReview),
	}
}

func (s *interviewStore) Create(ctx context.Context, interview *domain.Interview) error {
	if s.failCreate != nil {
		return s.failCreate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *interview
	s.interviews[interview.ID] = &cp
	return nil
}

func (s *interviewStore) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	interview, ok := s.interviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *interview
	return &cp, nil
}

func (s *interviewStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.interviews[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.interviews, id)
	return nil
}

func (s *interviewStore) Update(ctx context.Context, id string, update domain.InterviewUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	interview, ok := s.interviews[id]
	if !ok {
		return domain.ErrNotFound
	}
	if update.Time != nil {
		interview.Time = *update.Time
	}
	if update.Location != nil {
		interview.Location = *update.Location
	}
	if update.Notes != nil {
		interview.Notes = *update.Notes
	}
	return nil
}

func (s *interviewStore) ListByRecruit(ctx context.Context, recruitID string) ([]domain.InterviewDetail, error) {
	return nil, nil
}

func (s *interviewStore) ListByUser(ctx context.Context, uid, recruitID string) ([]domain.MyBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.MyBooking
	for _, interview := range s.interviews {
		if interview.UID == uid {
			out = append(out, domain.MyBooking{
				InterviewID:   interview.ID,
				ApplicationID: interview.ApplicationID,
				Time:          interview.Time,
				Location:      interview.Location,
			})
		}
	}
	return out, nil
}

func (s *interviewStore) CreateReview(ctx context.Context, review *domain.InterviewReview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *review
	s.reviews[review.ID] = &cp
	return nil
}

func (s *interviewStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.interviews)
}

type recruitStore struct {
	mu       sync.Mutex
	recruits map[string]*domain.Recruit
	settings map[string]*domain.RecruitSettings
}

func newRecruitStore() *recruitStore {
	return &recruitStore{
		recruits: make(map[string]*domain.Recruit),
		settings: make(map[string]*domain.RecruitSettings),
	}
}

func (s *recruitStore) Create(ctx context.Context, recruit *domain.Recruit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *recruit
	s.recruits[recruit.ID] = &cp
	return nil
}

func (s *recruitStore) GetByID(ctx context.Context, id string) (*domain.Recruit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recruit, ok := s.recruits[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *recruit
	return &cp, nil
}

func (s *recruitStore) List(ctx context.Context) ([]domain.Recruit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Recruit
	for _, recruit := range s.recruits {
		out = append(out, *recruit)
	}
	return out, nil
}

func (s *recruitStore) Update(ctx context.Context, recruit *domain.Recruit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *recruit
	s.recruits[recruit.ID] = &cp
	return nil
}

func (s *recruitStore) GetSettings(ctx context.Context, recruitID string) (*domain.RecruitSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings, ok := s.settings[recruitID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *settings
	return &cp, nil
}

func (s *recruitStore) UpsertSettings(ctx context.Context, settings *domain.RecruitSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *settings
	s.settings[settings.RecruitID] = &cp
	return nil
}

// passTx runs the callback on the caller's context. Rollback is not
// emulated; the compensating-release test covers the failure path instead.
type passTx struct{}

func (passTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	mu            sync.Mutex
	bookings      int
	cancellations int
	statusChanges int
}

func (n *recordingNotifier) NotifyBooking(uid string, notice domain.BookingNotice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bookings++
}

func (n *recordingNotifier) NotifyCancellation(uid string, notice domain.BookingNotice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancellations++
}

func (n *recordingNotifier) NotifyStatusChange(uid, recruitName, choice, statusName string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statusChanges++
}

type bookingFixture struct {
	apps       *appStore
	slots      *slotStore
	rooms      *roomStore
	interviews *interviewStore
	recruits   *recruitStore
	notifier   *recordingNotifier
	uc         domain.BookingUsecase
}

// newBookingFixture seeds one active cycle, one backend room and one free
// slot, plus a passed submission for uid "u1".
func newBookingFixture() *bookingFixture {
	rooms := newRoomStore()
	f := &bookingFixture{
		apps:       newAppStore(),
		slots:      newSlotStore(rooms),
		rooms:      rooms,
		interviews: newInterviewStore(),
		recruits:   newRecruitStore(),
		notifier:   &recordingNotifier{},
	}
	f.uc = usecase.NewBookingUsecase(f.apps, f.slots, f.rooms, f.interviews, f.recruits, passTx{}, f.notifier)

	ctx := context.Background()
	_ = f.recruits.Create(ctx, &domain.Recruit{
		ID:        "rec1",
		Name:      "2026 Autumn Recruitment",
		Active:    true,
		StartTime: time.Now().Add(-24 * time.Hour),
		EndTime:   time.Now().Add(24 * time.Hour),
	})
	_ = f.rooms.Create(ctx, &domain.InterviewRoom{
		ID:        "room1",
		RecruitID: "rec1",
		Name:      "Room A",
		Location:  "Building 3, Room 301",
		Choice:    "backend",
	})
	f.slots.put(&domain.InterviewSlot{
		ID:        "slot1",
		RoomID:    "room1",
		StartTime: time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC),
	})
	f.apps.put(&domain.Application{
		ID:          "app1",
		UID:         "u1",
		RecruitID:   "rec1",
		FirstChoice: "backend",
		Status:      domain.StatusResumePassed,
	})
	return f
}

func assertAppCode(t *testing.T, err error, code int) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestBookConcurrentSingleWinner(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	const callers = 32
	for i := 0; i < callers; i++ {
		f.apps.put(&domain.Application{
			ID:          "capp" + strconv.Itoa(i),
			UID:         "cuser" + strconv.Itoa(i),
			RecruitID:   "rec1",
			FirstChoice: "backend",
			Status:      domain.StatusResumePassed,
		})
	}

	var wg sync.WaitGroup
	results := make([]error, callers)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			appID := "capp" + strconv.Itoa(i)
			uid := "cuser" + strconv.Itoa(i)
			_, results[i] = f.uc.Book(ctx, appID, "slot1", uid)
		}(i)
	}
	close(start)
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 409, appErr.Code)
		conflicts++
	}
	assert.Equal(t, 1, wins, "exactly one caller must win the slot")
	assert.Equal(t, callers-1, conflicts)
	assert.Equal(t, 1, f.interviews.count(), "exactly one interview created")

	slot, err := f.slots.GetByID(ctx, "slot1")
	require.NoError(t, err)
	assert.True(t, slot.Booked)
	require.NotNil(t, slot.InterviewID)
}

func TestBookSecondCallerConflicts(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	f.apps.put(&domain.Application{
		ID: "app2", UID: "u2", RecruitID: "rec1",
		FirstChoice: "backend", Status: domain.StatusResumePassed,
	})

	interview, err := f.uc.Book(ctx, "app1", "slot1", "u1")
	require.NoError(t, err)
	require.NotNil(t, interview)
	assert.Equal(t, "Building 3, Room 301", interview.Location)

	app, err := f.apps.GetByID(ctx, "app1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAwaitingInterview, app.Status)

	_, err = f.uc.Book(ctx, "app2", "slot1", "u2")
	assertAppCode(t, err, 409)

	// The loser's submission must not move
	app2, err := f.apps.GetByID(ctx, "app2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResumePassed, app2.Status)
}

func TestBookEligibility(t *testing.T) {
	t.Run("Should reject a caller who does not own the submission", func(t *testing.T) {
		f := newBookingFixture()
		_, err := f.uc.Book(context.Background(), "app1", "slot1", "intruder")
		assertAppCode(t, err, 403)
	})

	t.Run("Should reject a submission that is not resume passed", func(t *testing.T) {
		f := newBookingFixture()
		f.apps.put(&domain.Application{
			ID: "app1", UID: "u1", RecruitID: "rec1",
			FirstChoice: "backend", Status: domain.StatusAwaitingInterview,
		})
		_, err := f.uc.Book(context.Background(), "app1", "slot1", "u1")
		assertAppCode(t, err, 403)
	})

	t.Run("Should reject an unknown submission", func(t *testing.T) {
		f := newBookingFixture()
		_, err := f.uc.Book(context.Background(), "missing", "slot1", "u1")
		assertAppCode(t, err, 403)
	})
}

func TestBookThenCancelRoundTrip(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	interview, err := f.uc.Book(ctx, "app1", "slot1", "u1")
	require.NoError(t, err)

	require.NoError(t, f.uc.Cancel(ctx, interview.ID))

	slot, err := f.slots.GetByID(ctx, "slot1")
	require.NoError(t, err)
	assert.False(t, slot.Booked, "cancelled slot must be free again")
	assert.Nil(t, slot.InterviewID)

	app, err := f.apps.GetByID(ctx, "app1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResumePassed, app.Status, "submission reverts to resume passed")

	_, err = f.interviews.GetByID(ctx, interview.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The slot is bookable again
	rebooked, err := f.uc.Book(ctx, "app1", "slot1", "u1")
	require.NoError(t, err)
	assert.NotEqual(t, interview.ID, rebooked.ID)

	assert.Equal(t, 2, f.notifier.bookings)
	assert.Equal(t, 1, f.notifier.cancellations)
}

func TestCancelUnknownInterview(t *testing.T) {
	f := newBookingFixture()
	err := f.uc.Cancel(context.Background(), "no-such-interview")
	assertAppCode(t, err, 404)
}

func TestCancelKeepsProgressedStatus(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	interview, err := f.uc.Book(ctx, "app1", "slot1", "u1")
	require.NoError(t, err)

	// The submission moved past the interview stage in the meantime
	require.NoError(t, f.apps.UpdateStatus(ctx, "app1", domain.StatusAdmitted))

	require.NoError(t, f.uc.Cancel(ctx, interview.ID))

	app, err := f.apps.GetByID(ctx, "app1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAdmitted, app.Status, "progressed status must not be reverted")

	slot, err := f.slots.GetByID(ctx, "slot1")
	require.NoError(t, err)
	assert.False(t, slot.Booked)
}

func TestBookReleasesSlotWhenTransactionFails(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	f.interviews.failCreate = errors.New("insert failed")

	_, err := f.uc.Book(ctx, "app1", "slot1", "u1")
	assertAppCode(t, err, 500)

	slot, err := f.slots.GetByID(ctx, "slot1")
	require.NoError(t, err)
	assert.False(t, slot.Booked, "claimed slot must be released after a failed booking")
	assert.Equal(t, 0, f.notifier.bookings)
}

func TestAvailableSlots(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	t.Run("Should list free slots of matching rooms only", func(t *testing.T) {
		// A room serving another choice must not leak into the listing
		_ = f.rooms.Create(ctx, &domain.InterviewRoom{
			ID: "room2", RecruitID: "rec1", Name: "Room B",
			Location: "Building 3, Room 302", Choice: "frontend",
		})
		f.slots.put(&domain.InterviewSlot{
			ID: "slot2", RoomID: "room2",
			StartTime: time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC),
		})

		slots, err := f.uc.AvailableSlots(ctx, "app1", "u1")
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "slot1", slots[0].SlotID)
		assert.Equal(t, "Room A", slots[0].RoomName)
	})

	t.Run("Should hide a booked slot", func(t *testing.T) {
		won, err := f.slots.Claim(ctx, "slot1")
		require.NoError(t, err)
		require.True(t, won)

		slots, err := f.uc.AvailableSlots(ctx, "app1", "u1")
		require.NoError(t, err)
		assert.Empty(t, slots)
		assert.NotNil(t, slots, "empty listing is a JSON array, not null")
	})

	t.Run("Should refuse a caller who does not own the submission", func(t *testing.T) {
		_, err := f.uc.AvailableSlots(ctx, "app1", "intruder")
		assertAppCode(t, err, 403)
	})
}

func TestBookingOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be open inside the window for a passed submission", func(t *testing.T) {
		f := newBookingFixture()
		_ = f.recruits.UpsertSettings(ctx, &domain.RecruitSettings{
			RecruitID:     "rec1",
			BookStartTime: time.Now().Add(-time.Hour),
			BookEndTime:   time.Now().Add(time.Hour),
		})
		window, err := f.uc.BookingOpen(ctx, "rec1", "u1")
		require.NoError(t, err)
		assert.True(t, window.Available)
		require.NotNil(t, window.StartTime)
	})

	t.Run("Should be closed outside the window", func(t *testing.T) {
		f := newBookingFixture()
		_ = f.recruits.UpsertSettings(ctx, &domain.RecruitSettings{
			RecruitID:     "rec1",
			BookStartTime: time.Now().Add(time.Hour),
			BookEndTime:   time.Now().Add(2 * time.Hour),
		})
		window, err := f.uc.BookingOpen(ctx, "rec1", "u1")
		require.NoError(t, err)
		assert.False(t, window.Available)
	})

	t.Run("Should be closed without a booking window", func(t *testing.T) {
		f := newBookingFixture()
		window, err := f.uc.BookingOpen(ctx, "rec1", "u1")
		require.NoError(t, err)
		assert.False(t, window.Available)
	})

	t.Run("Should be closed for a user without a passed submission", func(t *testing.T) {
		f := newBookingFixture()
		_ = f.recruits.UpsertSettings(ctx, &domain.RecruitSettings{
			RecruitID:     "rec1",
			BookStartTime: time.Now().Add(-time.Hour),
			BookEndTime:   time.Now().Add(time.Hour),
		})
		window, err := f.uc.BookingOpen(ctx, "rec1", "stranger")
		require.NoError(t, err)
		assert.False(t, window.Available)
	})
}

func TestMyBookings(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	bookings, err := f.uc.MyBookings(ctx, "u1", "rec1")
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)

	interview, err := f.uc.Book(ctx, "app1", "slot1", "u1")
	require.NoError(t, err)

	bookings, err = f.uc.MyBookings(ctx, "u1", "rec1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, interview.ID, bookings[0].InterviewID)
}

package scheduling

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clinicore/booking-app/models"
)

// fakeStore is an in-memory implementation of every scheduling store.
// CreateLocked serialises on the mutex, mirroring the transactional lock
// the GORM store takes, so the concurrency property is testable without
// a database.
type fakeStore struct {
	mu       sync.Mutex
	doctors  map[uint]*models.Doctor
	slots    []models.AvailabilitySlot
	leaves   []models.LeaveDay
	bookings map[uint]*models.Booking
	nextID   uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		doctors:  make(map[uint]*models.Doctor),
		bookings: make(map[uint]*models.Booking),
	}
}

func (f *fakeStore) addDoctor(id uint, name string) {
	doctor := &models.Doctor{Name: name}
	doctor.ID = id
	f.doctors[id] = doctor
}

func (f *fakeStore) addSlot(doctorID uint, day models.DayOfWeek, start, end string) {
	slot := models.AvailabilitySlot{DoctorID: doctorID, Day: day, StartTime: start, EndTime: end}
	slot.ID = uint(len(f.slots) + 1)
	f.slots = append(f.slots, slot)
}

func (f *fakeStore) addLeave(doctorID uint, date time.Time, reason string) {
	f.leaves = append(f.leaves, models.LeaveDay{DoctorID: doctorID, Date: DateOnly(date), Reason: reason})
}

func (f *fakeStore) addBooking(doctorID uint, date time.Time, timeOfDay string, status models.BookingStatus, userID uint) *models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	b := &models.Booking{DoctorID: doctorID, Date: DateOnly(date), Time: timeOfDay, Status: status, UserID: userID}
	b.ID = f.nextID
	f.bookings[b.ID] = b
	return b
}

func (f *fakeStore) GetDoctor(doctorID uint) (*models.Doctor, error) {
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil, ErrNotFound
	}
	return doctor, nil
}

func (f *fakeStore) SlotsForDay(doctorID uint, day models.DayOfWeek) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, slot := range f.slots {
		if slot.DoctorID == doctorID && slot.Day == day {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (f *fakeStore) AvailableDays(doctorID uint) ([]models.DayOfWeek, error) {
	seen := make(map[models.DayOfWeek]bool)
	var out []models.DayOfWeek
	for day := models.Monday; day <= models.Sunday; day++ {
		for _, slot := range f.slots {
			if slot.DoctorID == doctorID && slot.Day == day && !seen[day] {
				seen[day] = true
				out = append(out, day)
			}
		}
	}
	return out, nil
}

func (f *fakeStore) FindLeave(doctorID uint, date time.Time) (*models.LeaveDay, error) {
	for i := range f.leaves {
		if f.leaves[i].DoctorID == doctorID && f.leaves[i].Date.Equal(DateOnly(date)) {
			return &f.leaves[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SlotTaken(doctorID uint, date time.Time, timeOfDay string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slotTakenLocked(doctorID, date, timeOfDay), nil
}

func (f *fakeStore) slotTakenLocked(doctorID uint, date time.Time, timeOfDay string) bool {
	for _, b := range f.bookings {
		if b.DoctorID == doctorID && b.Date.Equal(DateOnly(date)) && b.Time == timeOfDay && b.Status.Occupies() {
			return true
		}
	}
	return false
}

func (f *fakeStore) BookedTimes(doctorID uint, date time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, b := range f.bookings {
		if b.DoctorID == doctorID && b.Date.Equal(DateOnly(date)) && b.Status.Occupies() {
			out = append(out, b.Time)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateLocked(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.slotTakenLocked(b.DoctorID, b.Date, b.Time) {
		return ErrSlotConflict
	}
	f.nextID++
	b.ID = f.nextID
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeStore) GetBooking(id uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeStore) Save(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

type fixedClock struct {
	today time.Time
}

func (c fixedClock) Today() time.Time {
	return DateOnly(c.today)
}

// Tuesday September 1, 2026; the following Monday is September 7.
var (
	testToday   = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	nextMonday  = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	yesterday   = time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	aWednesday  = time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)
	quietLogger = func() *logrus.Logger {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		return l
	}()
)

func newTestService(store *fakeStore) *Service {
	return NewService(store, store, store, store, fixedClock{today: testToday}, quietLogger)
}

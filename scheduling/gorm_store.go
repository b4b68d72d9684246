package scheduling

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clinicore/booking-app/models"
)

// gormStore backs every scheduling store interface with the shared
// relational database.
type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) GetDoctor(doctorID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (s *gormStore) SlotsForDay(doctorID uint, day models.DayOfWeek) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := s.db.Where("doctor_id = ? AND day = ?", doctorID, day).
		Order("start_time").
		Find(&slots).Error
	return slots, err
}

func (s *gormStore) AvailableDays(doctorID uint) ([]models.DayOfWeek, error) {
	var days []models.DayOfWeek
	err := s.db.Model(&models.AvailabilitySlot{}).
		Where("doctor_id = ?", doctorID).
		Distinct("day").
		Order("day").
		Pluck("day", &days).Error
	return days, err
}

func (s *gormStore) FindLeave(doctorID uint, date time.Time) (*models.LeaveDay, error) {
	var leave models.LeaveDay
	err := s.db.Where("doctor_id = ? AND date = ?", doctorID, DateOnly(date)).First(&leave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (s *gormStore) SlotTaken(doctorID uint, date time.Time, timeOfDay string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("doctor_id = ? AND date = ? AND time = ? AND status NOT IN ?",
			doctorID, DateOnly(date), timeOfDay, models.SlotReleasingStatuses).
		Count(&count).Error
	return count > 0, err
}

func (s *gormStore) BookedTimes(doctorID uint, date time.Time) ([]string, error) {
	var times []string
	err := s.db.Model(&models.Booking{}).
		Where("doctor_id = ? AND date = ? AND status NOT IN ?",
			doctorID, DateOnly(date), models.SlotReleasingStatuses).
		Order("time").
		Pluck("time", &times).Error
	return times, err
}

// CreateLocked closes the check-then-act race twice over: the insert
// runs in a transaction that first locks any conflicting row FOR UPDATE,
// and the partial unique index on (doctor_id, date, time) catches
// writers the lock missed. Either path reports ErrSlotConflict.
func (s *gormStore) CreateLocked(b *models.Booking) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_id = ? AND date = ? AND time = ? AND status NOT IN ?",
				b.DoctorID, b.Date, b.Time, models.SlotReleasingStatuses).
			First(&existing).Error
		if err == nil {
			return ErrSlotConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(b).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotConflict
			}
			return err
		}
		return nil
	})
}

func (s *gormStore) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *gormStore) Save(b *models.Booking) error {
	return s.db.Save(b).Error
}

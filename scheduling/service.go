package scheduling

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service bundles the slot validator and the booking workflow over the
// availability, leave and booking stores.
type Service struct {
	doctors      DoctorStore
	availability AvailabilityStore
	leaves       LeaveStore
	bookings     BookingStore
	clock        Clock
	logger       *logrus.Logger
}

func NewService(doctors DoctorStore, availability AvailabilityStore, leaves LeaveStore, bookings BookingStore, clock Clock, logger *logrus.Logger) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		doctors:      doctors,
		availability: availability,
		leaves:       leaves,
		bookings:     bookings,
		clock:        clock,
		logger:       logger,
	}
}

// NewGormService wires the service to GORM-backed stores and the system
// clock.
func NewGormService(db *gorm.DB, logger *logrus.Logger) *Service {
	store := &gormStore{db: db}
	return NewService(store, store, store, store, SystemClock(), logger)
}

package scheduling

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/booking-app/models"
)

func smithRequest(clock string) BookingRequest {
	return BookingRequest{
		PatientName:  "Jane Doe",
		PatientPhone: "5550100",
		PatientEmail: "jane@example.com",
		DoctorID:     1,
		Date:         nextMonday,
		Time:         clock,
	}
}

var (
	patientActor = Actor{Kind: ActorPatient, UserID: 7}
	otherPatient = Actor{Kind: ActorPatient, UserID: 8}
	smithActor   = Actor{Kind: ActorDoctor, UserID: 2, DoctorID: 1}
	otherDoctor  = Actor{Kind: ActorDoctor, UserID: 3, DoctorID: 2}
	adminActor   = Actor{Kind: ActorAdmin, UserID: 1}
)

// The Dr. Smith scenario: Monday 09:00-12:00 availability, booking at
// 10:00 succeeds, the same slot is then taken, 13:00 is outside hours,
// and cancelling frees the slot for a retry.
func TestBookingScenario(t *testing.T) {
	store := smithStore()
	svc := newTestService(store)

	booking, rej, err := svc.CreateBooking(smithRequest("10:00"), 7)
	require.NoError(t, err)
	require.Nil(t, rej)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, uint(7), booking.UserID)

	_, rej, err = svc.CreateBooking(smithRequest("10:00"), 8)
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonSlotTaken, rej.Code)

	_, rej, err = svc.CreateBooking(smithRequest("13:00"), 8)
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonOutsideHours, rej.Code)

	_, rej, err = svc.CancelBooking(booking.ID, patientActor)
	require.NoError(t, err)
	require.Nil(t, rej)

	retry, rej, err := svc.CreateBooking(smithRequest("10:00"), 8)
	require.NoError(t, err)
	require.Nil(t, rej)
	assert.Equal(t, models.StatusPending, retry.Status)
}

func TestCreateBookingRejectionCreatesNoRow(t *testing.T) {
	store := smithStore()
	svc := newTestService(store)

	booking, rej, err := svc.CreateBooking(smithRequest("13:00"), 7)
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.Nil(t, booking)
	assert.Empty(t, store.bookings)
}

func TestCreateBookingUnknownDoctor(t *testing.T) {
	svc := newTestService(newFakeStore())

	req := smithRequest("10:00")
	req.DoctorID = 99
	_, _, err := svc.CreateBooking(req, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Exactly one of N concurrent requests for the same slot may win; the
// rest are turned away with SlotTaken.
func TestCreateBookingConcurrentSingleWinner(t *testing.T) {
	const writers = 20

	store := smithStore()
	svc := newTestService(store)

	var wg sync.WaitGroup
	created := make(chan uint, writers)
	rejected := make(chan ReasonCode, writers)
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(owner uint) {
			defer wg.Done()
			booking, rej, err := svc.CreateBooking(smithRequest("10:00"), owner)
			switch {
			case err != nil:
				errs <- err
			case rej != nil:
				rejected <- rej.Code
			default:
				created <- booking.ID
			}
		}(uint(i + 1))
	}
	wg.Wait()
	close(created)
	close(rejected)
	close(errs)

	require.Empty(t, errs)
	assert.Len(t, created, 1)
	assert.Len(t, rejected, writers-1)
	for code := range rejected {
		assert.Equal(t, ReasonSlotTaken, code)
	}
	assert.Len(t, store.bookings, 1)
}

func TestCancelBookingNotOwner(t *testing.T) {
	store := smithStore()
	booking := store.addBooking(1, nextMonday, "10:00", models.StatusPending, 7)
	svc := newTestService(store)

	_, rej, err := svc.CancelBooking(booking.ID, otherPatient)
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonNotOwner, rej.Code)
}

func TestCancelBookingAdminOverride(t *testing.T) {
	store := smithStore()
	booking := store.addBooking(1, nextMonday, "10:00", models.StatusAccepted, 7)
	svc := newTestService(store)

	cancelled, rej, err := svc.CancelBooking(booking.ID, adminActor)
	require.NoError(t, err)
	require.Nil(t, rej)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestCancelBookingInvalidState(t *testing.T) {
	for _, status := range []models.BookingStatus{models.StatusRejected, models.StatusCompleted, models.StatusCancelled} {
		store := smithStore()
		booking := store.addBooking(1, nextMonday, "10:00", status, 7)
		svc := newTestService(store)

		_, rej, err := svc.CancelBooking(booking.ID, patientActor)
		require.NoError(t, err)
		require.NotNil(t, rej, "status %s should not be cancellable", status)
		assert.Equal(t, ReasonInvalidState, rej.Code)
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	svc := newTestService(smithStore())

	_, _, err := svc.CancelBooking(42, patientActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatusDoctorAccepts(t *testing.T) {
	store := smithStore()
	booking := store.addBooking(1, nextMonday, "10:00", models.StatusPending, 7)
	svc := newTestService(store)

	updated, rej, err := svc.SetStatus(booking.ID, models.StatusAccepted, smithActor)
	require.NoError(t, err)
	require.Nil(t, rej)
	assert.Equal(t, models.StatusAccepted, updated.Status)
}

func TestSetStatusDoctorDoesNotOwnBooking(t *testing.T) {
	store := smithStore()
	booking := store.addBooking(1, nextMonday, "10:00", models.StatusPending, 7)
	svc := newTestService(store)

	_, rej, err := svc.SetStatus(booking.ID, models.StatusAccepted, otherDoctor)
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonNotAuthorized, rej.Code)
}

// Doctors accept, reject or complete; cancellation belongs to the
// patient and admin paths.
func TestSetStatusDoctorCannotCancel(t *testing.T) {
	store := smithStore()
	booking := store.addBooking(1, nextMonday, "10:00", models.StatusPending, 7)
	svc := newTestService(store)

	_, rej, err := svc.SetStatus(booking.ID, models.StatusCancelled, smithActor)
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonNotAuthorized, rej.Code)
}

func TestSetStatusPatientNotAuthorized(t *testing.T) {
	store := smithStore()
	booking := store.addBooking(1, nextMonday, "10:00", models.StatusPending, 7)
	svc := newTestService(store)

	_, rej, err := svc.SetStatus(booking.ID, models.StatusAccepted, patientActor)
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonNotAuthorized, rej.Code)
}

// Terminal bookings admit no further status writes, including by the
// assigned doctor or an administrator.
func TestSetStatusTerminalGuard(t *testing.T) {
	for _, status := range []models.BookingStatus{models.StatusRejected, models.StatusCompleted, models.StatusCancelled} {
		store := smithStore()
		booking := store.addBooking(1, nextMonday, "10:00", status, 7)
		svc := newTestService(store)

		_, rej, err := svc.SetStatus(booking.ID, models.StatusAccepted, smithActor)
		require.NoError(t, err)
		require.NotNil(t, rej, "status %s should be terminal", status)
		assert.Equal(t, ReasonInvalidTransition, rej.Code)

		_, rej, err = svc.SetStatus(booking.ID, models.StatusCompleted, adminActor)
		require.NoError(t, err)
		require.NotNil(t, rej)
		assert.Equal(t, ReasonInvalidTransition, rej.Code)
	}
}

func TestSetStatusAdminAnyAllowedTransition(t *testing.T) {
	store := smithStore()
	booking := store.addBooking(1, nextMonday, "10:00", models.StatusAccepted, 7)
	svc := newTestService(store)

	updated, rej, err := svc.SetStatus(booking.ID, models.StatusCancelled, adminActor)
	require.NoError(t, err)
	require.Nil(t, rej)
	assert.Equal(t, models.StatusCancelled, updated.Status)
}

// A rejected booking frees its slot: validating the identical
// (doctor, date, time) succeeds again.
func TestRejectReleasesSlotForValidation(t *testing.T) {
	store := smithStore()
	booking := store.addBooking(1, nextMonday, "10:00", models.StatusPending, 7)
	svc := newTestService(store)

	rej, err := svc.Validate(1, nextMonday, "10:00")
	require.NoError(t, err)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonSlotTaken, rej.Code)

	_, rej, err = svc.SetStatus(booking.ID, models.StatusRejected, smithActor)
	require.NoError(t, err)
	require.Nil(t, rej)

	rej, err = svc.Validate(1, nextMonday, "10:00")
	require.NoError(t, err)
	assert.Nil(t, rej)
}

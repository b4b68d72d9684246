package scheduling

// ActorKind tags the authenticated caller explicitly instead of inferring
// a role from the existence of a linked doctor profile.
type ActorKind string

const (
	ActorPatient ActorKind = "patient"
	ActorDoctor  ActorKind = "doctor"
	ActorAdmin   ActorKind = "admin"
)

// Actor is the authenticated caller, resolved once at the session
// boundary by the auth middleware. DoctorID is set only for doctors.
type Actor struct {
	Kind     ActorKind `json:"kind"`
	UserID   uint      `json:"user_id"`
	DoctorID uint      `json:"doctor_id,omitempty"`
}

func (a Actor) IsAdmin() bool {
	return a.Kind == ActorAdmin
}

func (a Actor) IsDoctor() bool {
	return a.Kind == ActorDoctor
}

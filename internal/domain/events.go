package domain

// События гостевого CRUD, уходящие в realtime-канал
type GuestEvent string

const (
	GuestUpdated        GuestEvent = "guest_updated"
	GuestCheckedIn      GuestEvent = "guest_checked_in"
	GuestCheckinCleared GuestEvent = "guest_checkin_cleared"
)

func (e GuestEvent) Valid() bool {
	switch e {
	case GuestUpdated, GuestCheckedIn, GuestCheckinCleared:
		return true
	}
	return false
}

package domain

// TimeSlot is one of the fixed time ranges capacity is tracked against
type TimeSlot string

// Бронирования принимаются только на фиксированные слоты
const (
	Slot11AM TimeSlot = "11:00 AM"
	Slot12PM TimeSlot = "12:00 PM"
	Slot1PM  TimeSlot = "1:00 PM"
	Slot2PM  TimeSlot = "2:00 PM"
	Slot6PM  TimeSlot = "6:00 PM"
	Slot7PM  TimeSlot = "7:00 PM"
	Slot8PM  TimeSlot = "8:00 PM"
	Slot9PM  TimeSlot = "9:00 PM"
)

// TimeSlots перечень всех допустимых слотов в хронологическом порядке
var TimeSlots = []TimeSlot{
	Slot11AM,
	Slot12PM,
	Slot1PM,
	Slot2PM,
	Slot6PM,
	Slot7PM,
	Slot8PM,
	Slot9PM,
}

// IsValid returns true if the slot is one of the enumerated values
func (s TimeSlot) IsValid() bool {
	for _, slot := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinBookingSeats          = 1
	MaxSpecialRequestsLength = 500
	MaxCommentLength         = 1000
)

// ActiveStatuses статусы бронирований, удерживающих места в слоте
// Используется при подсчёте доступных мест
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

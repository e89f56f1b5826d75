package employee

// Employee is an entry of the HR API user directory.
type Employee struct {
	UserID      string
	Username    string
	DisplayName string
	Email       *string
}

func (e Employee) Name() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	if e.Username != "" {
		return e.Username
	}
	return e.UserID
}

// Today's presence status shown on employee cards.
const (
	PresenceOnLeave = "on-leave"
	PresencePresent = "present"
	PresenceAbsent  = "absent"
)

// Find looks up a directory entry by user id.
func Find(employees []Employee, userID string) (Employee, bool) {
	for _, e := range employees {
		if e.UserID == userID {
			return e, true
		}
	}
	return Employee{}, false
}

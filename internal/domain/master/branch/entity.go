package branch

import "time"

// Branch is master data. Its timezone (IANA name) localizes schedule times for
// every employee attached to it.
type Branch struct {
	ID        string
	Name      string
	Address   *string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package repository

import "time"

// Selection is the persisted selection of one named tab set.
type Selection struct {
	SetID     string
	SetName   string
	TabKey    string
	TabIndex  int
	UpdatedAt time.Time
}

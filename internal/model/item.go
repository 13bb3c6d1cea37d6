package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is how CreatedAt is shown in listings.
const TimeLayout = "2006-01-02 15:04"

// Item is the domain model for a todo entry.
// CreatedAt never changes after creation and Completed only goes false -> true.
type Item struct {
	ID          string    `json:"id,omitempty"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewItem returns a pending item stamped with the current local time.
// The description is kept exactly as given.
func NewItem(description string, now time.Time) Item {
	return Item{
		ID:          uuid.NewString(),
		Description: description,
		CreatedAt:   now.Local(),
	}
}

// ShortID is the first block of the UUID, enough to address an item by hand.
func (it Item) ShortID() string {
	if i := strings.IndexByte(it.ID, '-'); i > 0 {
		return it.ID[:i]
	}
	return it.ID
}

// EnsureID gives legacy records (written without an id) a fresh one.
func (it *Item) EnsureID() bool {
	if it.ID != "" {
		return false
	}
	it.ID = uuid.NewString()
	return true
}

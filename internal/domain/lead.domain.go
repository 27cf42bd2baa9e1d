package domain

import "time"

// LeadStatus represents possible states of a lead.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "New"
	LeadStatusContacted  LeadStatus = "Contacted"
	LeadStatusInProgress LeadStatus = "In Progress"
	LeadStatusConverted  LeadStatus = "Converted"
	LeadStatusLost       LeadStatus = "Lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusInProgress, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// LeadNote is one entry of the append-oriented annotation log on a lead.
type LeadNote struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

type Lead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Source      string     `json:"source"`
	Status      LeadStatus `json:"status"`
	Notes       string     `json:"notes"`
	LeadNotes   []LeadNote `json:"leadNotes"`
	OwnerUserID string     `json:"ownerUserId"`
	Owner       *OwnerInfo `json:"owner,omitempty"`
	Revision    int64      `json:"revision"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CreateLeadRequest struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Source    string     `json:"source"`
	Status    LeadStatus `json:"status"`
	Notes     string     `json:"notes"`
	LeadNotes []LeadNote `json:"leadNotes"`
}

// UpdateLeadRequest is a partial update: nil fields are left unchanged.
// Owner and timestamps are never client-settable.
type UpdateLeadRequest struct {
	Name      *string     `json:"name"`
	Email     *string     `json:"email"`
	Phone     *string     `json:"phone"`
	Source    *string     `json:"source"`
	Status    *LeadStatus `json:"status"`
	Notes     *string     `json:"notes"`
	LeadNotes *[]LeadNote `json:"leadNotes"`
	Revision  *int64      `json:"revision"`
}

package model

import "time"

// Metadata carries the fields owned by the document store (id, createdAt)
// and the modification stamp written by the service layer.
type Metadata struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	ModifiedAt time.Time `json:"modifiedAt,omitzero"`
}

func (m Metadata) GetID() string {
	return m.ID
}

package dto

// CreatedResponse carries the key the store assigned to a new record.
type CreatedResponse struct {
	ID string `json:"id"`
}

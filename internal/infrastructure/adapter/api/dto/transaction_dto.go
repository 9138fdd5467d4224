package dto

// CreateTransactionRequest represents the API request for recording a transaction
type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"required,oneof=expense income"`
	Tag         string `json:"tag" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// TransactionResponse represents the API response for a recorded transaction
type TransactionResponse struct {
	ID          uint64 `json:"id"`
	Type        string `json:"type"`
	Tag         string `json:"tag"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

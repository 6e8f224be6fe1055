package dto

type CreateEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Location     string `json:"location"`
	EventDate    string `json:"event_date" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,gt=0"`
	PriceCents   int64  `json:"price_cents" binding:"min=0"`
	ApprovalMode string `json:"approval_mode" binding:"required,oneof=automatic manual"`
}

type CreateBookingRequest struct {
	EventID     string `json:"event_id" binding:"required,uuid"`
	UserID      string `json:"user_id" binding:"required,uuid"`
	TicketCount int    `json:"ticket_count"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

package concierge

type AskRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"` // "en" (default) or "ar"
}

type AskResponse struct {
	Reply    string `json:"reply"`
	Language string `json:"language"`
}

package dto

type MessageRequest struct {
	Recipient string `json:"recipient" validate:"max=32"`
	Body      string `json:"body" validate:"max=4096"`
	Template  string `json:"template" validate:"max=64"`
	Share     string `json:"share" validate:"max=16"`
}

type MessageResponse struct {
	RecipientDigits string `json:"recipient_digits"`
	Body            string `json:"body"`
	URL             string `json:"url"`
}

type TemplateResponse struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

package get_assistance_links

// AssistanceResponse ссылки виджета помощи
type AssistanceResponse struct {
	WhatsAppURL  string `json:"whatsappUrl"`
	PhoneURL     string `json:"phoneUrl"`
	PhoneDisplay string `json:"phoneDisplay"`
	Message      string `json:"message"`
}

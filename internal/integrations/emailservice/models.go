package emailservice

// SendEmailRequest тело запроса POST /send-email
type SendEmailRequest struct {
	Recipients  []string `json:"recipients"`
	SubjectLine string   `json:"subject_line"`
	Body        string   `json:"body"`
	IsHTML      bool     `json:"is_html"`
}

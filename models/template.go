package models

// MessageTemplate text carries the placeholder tokens {food}, {benefit},
// {condition}, {why_now} and {cta}.
type MessageTemplate struct {
	TemplateID string `json:"template_id"`
	Text       string `json:"text"`
	Style      string `json:"style"`
	Lang       string `json:"lang"`
}

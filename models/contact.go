package models

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	MessageID string `json:"message_id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Subject   string `json:"subject" bson:"subject"`
	Message   string `json:"message" bson:"message"`
	Date      string `json:"date" bson:"date"`
}

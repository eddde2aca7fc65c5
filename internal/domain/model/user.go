package model

// User is a back-office identity.
type User struct {
	ID       string `json:"id"`
	Username string `json:"usuario"`
	Name     string `json:"nombre,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"rol,omitempty"`
}

// Ref returns the compact reference stored on orders created by the user.
func (u User) Ref() *UserRef {
	return &UserRef{ID: u.ID, Username: u.Username, Name: u.Name}
}

// ContactForm is a public contact-page submission.
type ContactForm struct {
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Subject string `json:"asunto"`
	Message string `json:"mensaje"`
}

// WholesaleForm is a wholesale-inquiry submission.
type WholesaleForm struct {
	Name     string `json:"nombre"`
	Business string `json:"comercio"`
	Phone    string `json:"telefono"`
	Email    string `json:"email"`
	Products string `json:"productos"`
	Message  string `json:"mensaje"`
}

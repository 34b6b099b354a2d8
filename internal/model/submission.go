package model

// CardSubmission is the payload posted by the card details form.
// Name and SecretKey are accepted on the wire but never used.
type CardSubmission struct {
	Name                string `json:"name,omitempty"`
	RefNumber           string `json:"refNumber"`
	CardNumber          string `json:"cardNumber"`
	CardName            string `json:"cardName"`
	SecretKey           string `json:"secretKey,omitempty"`
	CardExpirationMonth string `json:"cardExpirationMonth"`
	CardExpirationYear  string `json:"cardExpirationYear"`
}

// Expiration formats the card expiration as MM/YY, exactly as entered.
func (c CardSubmission) Expiration() string {
	return c.CardExpirationMonth + "/" + c.CardExpirationYear
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type RelayResponse struct {
	Status string `json:"status"`
}

package models

// Program mirrors a backend training program. Price is a display string
// and may be "Custom" for negotiated engagements.
type Program struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
	Focus    string `json:"focus"`
	Outcome  string `json:"outcome"`
	Skills   string `json:"skills"`
	Format   string `json:"format"`
}

// IsFree reports whether registering for the program skips payment.
// "Custom"-priced programs are handled offline, so no payment is initiated.
func (p Program) IsFree() bool {
	return p.Price == "" || p.Price == "0" || p.Price == "Free" || p.Price == "Custom"
}

package models

// TeamMember is a staff profile shown on the team page.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
}

// GalleryCategory groups gallery items.
type GalleryCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GalleryItem is a single gallery image.
type GalleryItem struct {
	ID         string `json:"id"`
	CategoryID string `json:"category"`
	Caption    string `json:"caption"`
	ImageURL   string `json:"image_url"`
}

// ContactMessage is the contact-form payload forwarded to the backend.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

package menu

import "strings"

// Draft is unsaved form state. ID is empty for the create draft.
// Price stays as typed so validation sees exactly what the user entered.
type Draft struct {
	ID          ID
	Name        string
	Description string
	ImageURL    string
	Price       string
}

// DraftFromItem seeds an update draft with the item's current values.
func DraftFromItem(it Item) Draft {
	return Draft{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		ImageURL:    it.ImageURL,
		Price:       FormatPrice(it.Price),
	}
}

// Payload validates the draft and returns the request body.
// The only rejected field is the price; it returns ErrInvalidPrice.
func (d Draft) Payload() (Payload, error) {
	price, err := ParsePrice(d.Price)
	if err != nil {
		return Payload{}, err
	}
	return Payload{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		ImageURL:    strings.TrimSpace(d.ImageURL),
		Price:       price,
	}, nil
}

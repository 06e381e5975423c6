package dto

import "github.com/bandboard/bandboard/internal/models"

type BandListDTO struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Styles      []string `json:"styles"`
}

func ToBandListDTO(b models.Band) BandListDTO {
	styles := make([]string, 0, len(b.Styles))
	for _, s := range b.Styles {
		styles = append(styles, s.Name)
	}

	city := ""
	if b.City != nil {
		city = b.City.Name
	}

	return BandListDTO{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		City:        city,
		Styles:      styles,
	}
}

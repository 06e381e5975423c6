package dto

import "github.com/bandboard/bandboard/internal/models"

type MusicianListDTO struct {
	ID          uint     `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	City        string   `json:"city"`
	Busy        bool     `json:"busy"`
	Instruments []string `json:"instruments"`
}

func ToMusicianListDTO(m models.Musician) MusicianListDTO {
	instruments := make([]string, 0, len(m.Instruments))
	for _, in := range m.Instruments {
		instruments = append(instruments, in.Name)
	}

	city := ""
	if m.City != nil {
		city = m.City.Name
	}

	return MusicianListDTO{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		City:        city,
		Busy:        m.Busy,
		Instruments: instruments,
	}
}

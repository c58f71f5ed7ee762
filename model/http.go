package model

type CapoRequestBody struct {
	Chords []string `json:"chords"`
}

type CapoResponse struct {
	Id      string   `json:"id"`
	Found   bool     `json:"found"`
	Fret    int      `json:"fret"`
	Chords  []string `json:"chords"`
	Message []string `json:"message"`
}

type PitchClassInfo struct {
	Name  string `json:"name"`
	Barre bool   `json:"barre"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

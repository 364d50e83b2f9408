package notesapi

type newestInput struct {
	Count int `query:"count"`
}

type newestOutput struct {
	Body []ReleaseNote
}

type ReleaseNote struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
}

package models

type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewAuthor(name string) *Author {
	return &Author{Name: name}
}

package domain

type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Entry struct {
	ID   string `json:"id"`
	Item Item   `json:"item"`
}

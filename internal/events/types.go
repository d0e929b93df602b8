package events

type FavoriteAdded struct {
	UserID      string `json:"user_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}

type FavoriteRemoved struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

// UserID returns the user an event belongs to, or "" for events that belong to nobody
func UserID(event any) string {
	switch e := event.(type) {
	case FavoriteAdded:
		return e.UserID
	case FavoriteRemoved:
		return e.UserID
	}
	return ""
}

package entities

// Location is a place an event may be attached to.
type Location struct {
	ID      uint
	Name    string
	Region  string
	City    string
	Country string
}

// Category groups events by theme.
type Category struct {
	ID    uint
	Title string
}

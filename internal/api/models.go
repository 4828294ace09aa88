package api

// Wire shapes for the backend REST surface. Field names follow the server's
// snake_case payloads.

type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	StartTime   string `json:"start_time"` // ISO-8601
	EndTime     string `json:"end_time"`   // ISO-8601
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Color       string `json:"color,omitempty"`
	Reminder    int    `json:"reminder,omitempty"` // minutes before start
}

type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date"` // ISO-8601
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	IsCompleted bool   `json:"is_completed"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

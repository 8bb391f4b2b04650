package models

import "time"

// Application is a submitted job application. JobTitle and Company are
// copied from the job at submission time so the record stays readable
// after the job disappears from the catalog.
type Application struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	AppliedAt time.Time `json:"appliedAt"`
}

// Themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

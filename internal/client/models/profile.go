package models

// Profile is the read model behind the profile page.
type Profile struct {
	SignedIn     bool
	Name         string
	Email        string
	Phone        string
	Initials     string
	AppliedCount int
	SavedCount   int
	Applications []ApplicationView
}

// ApplicationView is an application with its job resolved from the catalog
// when the job still exists. Title and Company fall back to the snapshot.
type ApplicationView struct {
	Application
	Job     *Job
	Title   string
	Company string
}

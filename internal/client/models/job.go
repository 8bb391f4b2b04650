package models

// Job categories. Job.Role holds one of these.
const (
	CategoryFrontend         = "Frontend"
	CategoryBackend          = "Backend"
	CategoryFullStack        = "Full Stack"
	CategoryDevops           = "Devops"
	CategoryDigitalMarketing = "Digital Marketing"
)

// Categories lists every category in display order.
var Categories = []string{
	CategoryFrontend,
	CategoryBackend,
	CategoryFullStack,
	CategoryDevops,
	CategoryDigitalMarketing,
}

// Experience levels.
const (
	Experience0to1  = "0-1"
	Experience2to3  = "2-3"
	Experience4to5  = "4-5"
	Experience5Plus = "5+"
)

// Work types.
const (
	WorktypeRemote = "Remote"
	WorktypeHybrid = "Hybrid"
	WorktypeOnsite = "Onsite"
)

// Job is a listing in the catalog.
type Job struct {
	ID         int64  `json:"id"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	Position   string `json:"position"`
	Location   string `json:"location"`
	Salary     string `json:"salary"`
	Experience string `json:"experience"`
	Worktype   string `json:"worktype"`
	Posted     string `json:"posted"`
	Featured   bool   `json:"featured"`
	Desc       string `json:"desc"`
	Logo       string `json:"logo,omitempty"`
}

// NewJob carries the fields of the post-a-job form. Empty optional fields
// get defaults when the job is added.
type NewJob struct {
	Company    string `validate:"required"`
	Location   string `validate:"required"`
	Role       string `validate:"required,oneof='Frontend' 'Backend' 'Full Stack' 'Devops' 'Digital Marketing'"`
	Position   string `validate:"required"`
	Salary     string
	Experience string `validate:"omitempty,oneof=0-1 2-3 4-5 5+"`
	Worktype   string `validate:"omitempty,oneof=Remote Hybrid Onsite"`
	Desc       string
	Logo       string `validate:"omitempty,datauri"`
}

// Sort orders accepted by Filters.Sort.
const (
	SortNewest  = "newest"
	SortCompany = "company"
	SortSalary  = "salary"
)

// Filters is a catalog query. Empty fields do not filter.
type Filters struct {
	Search     string
	Category   string
	Experience string
	Worktype   string
	Sort       string
}

// Counts is the catalog size overall and per category.
type Counts struct {
	All        int
	ByCategory map[string]int
}

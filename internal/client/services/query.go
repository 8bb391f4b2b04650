package services

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/jobhunt/internal/client/models"
)

// filterJobs returns the jobs matching f in the order f.Sort asks for.
// The input is never modified.
func filterJobs(jobs []models.Job, f models.Filters) []models.Job {
	q := strings.ToLower(f.Search)

	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if q != "" && !strings.Contains(searchText(j), q) {
			continue
		}
		if f.Category != "" && j.Role != f.Category {
			continue
		}
		if f.Experience != "" && j.Experience != f.Experience {
			continue
		}
		if f.Worktype != "" && j.Worktype != f.Worktype {
			continue
		}
		out = append(out, j)
	}

	switch f.Sort {
	case models.SortCompany:
		slices.SortStableFunc(out, func(a, b models.Job) int {
			return compareFold(a.Company, b.Company)
		})
	case models.SortSalary:
		// Raw string order, so "$90K" sorts above "$120K".
		slices.SortStableFunc(out, func(a, b models.Job) int {
			return strings.Compare(b.Salary, a.Salary)
		})
	}
	return out
}

func searchText(j models.Job) string {
	return strings.ToLower(strings.Join([]string{j.Company, j.Position, j.Role, j.Location}, " "))
}

func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func countJobs(jobs []models.Job) models.Counts {
	c := models.Counts{All: len(jobs), ByCategory: make(map[string]int, len(models.Categories))}
	for _, cat := range models.Categories {
		c.ByCategory[cat] = 0
	}
	for _, j := range jobs {
		if _, ok := c.ByCategory[j.Role]; ok {
			c.ByCategory[j.Role]++
		}
	}
	return c
}

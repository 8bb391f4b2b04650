package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobhunt/internal/client/models"
	"github.com/dmitrijs2005/jobhunt/internal/client/services"
)

var errUsageID = errors.New("expected a job id")

// Jobs lists the catalog. Without arguments the active filters apply;
// key=value arguments (search, category, exp, worktype, sort) replace them.
// Underscores in values stand for spaces: category=Full_Stack.
func (a *App) Jobs(ctx context.Context, args []string) error {
	f := a.catalog.ActiveFilters()
	if len(args) > 0 {
		kv := ParseFilterArgs(args)
		f = models.Filters{
			Search:     kv["search"],
			Category:   kv["category"],
			Experience: kv["exp"],
			Worktype:   kv["worktype"],
			Sort:       kv["sort"],
		}
	}

	jobs := a.catalog.Query(f)
	if len(jobs) == 0 {
		a.println("No jobs match.")
		return nil
	}
	for _, j := range jobs {
		a.printJobLine(j)
	}
	a.printf("%d job(s)\n", len(jobs))
	return nil
}

func (a *App) printJobLine(j models.Job) {
	mark := " "
	if a.catalog.IsSaved(j.ID) {
		mark = "*"
	}
	featured := ""
	if j.Featured {
		featured = " [featured]"
	}
	a.printf("%s %-14d %-32s %-18s %-14s %-9s %s%s\n",
		mark, j.ID, j.Position, j.Company, j.Location, j.Worktype, j.Salary, featured)
}

// Filter sets or toggles one of the sticky filters used by a bare `jobs`.
// `filter category` with no value clears the category.
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		f := a.catalog.ActiveFilters()
		a.printf("category=%q exp=%q worktype=%q\n", f.Category, f.Experience, f.Worktype)
		return nil
	}

	value := strings.Join(args[1:], " ")
	switch args[0] {
	case "category":
		if value == "all" {
			value = ""
		}
		a.catalog.SetCategoryFilter(value)
	case "exp":
		a.catalog.ToggleExperienceFilter(value)
	case "worktype":
		a.catalog.ToggleWorktypeFilter(value)
	default:
		return a.fail(fmt.Errorf("unknown filter %q (category, exp, worktype)", args[0]))
	}
	return a.Filter(ctx, nil)
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errUsageID
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errUsageID, args[0])
	}
	return id, nil
}

// Show prints one job and makes it the current job for a following `apply`.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return a.fail(err)
	}
	if err := a.catalog.Set(ctx, services.FieldCurrentJob, id); err != nil {
		return a.fail(err)
	}
	j, _ := a.catalog.Job(id)

	a.printf("%s at %s\n", j.Position, j.Company)
	a.printf("  Category:   %s\n", j.Role)
	a.printf("  Location:   %s (%s)\n", j.Location, j.Worktype)
	a.printf("  Salary:     %s\n", j.Salary)
	a.printf("  Experience: %s years\n", j.Experience)
	a.printf("  Posted:     %s\n", j.Posted)
	if a.catalog.IsSaved(j.ID) {
		a.println("  Saved")
	}
	a.println()
	a.println(j.Desc)
	return nil
}

// Save toggles the job in the saved set.
func (a *App) Save(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return a.fail(err)
	}
	saved, err := a.catalog.ToggleSave(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	if saved {
		a.println("Job saved!")
	} else {
		a.println("Removed from saved")
	}
	return nil
}

func (a *App) Saved(ctx context.Context) error {
	saved := a.catalog.SavedJobs()
	if len(saved) == 0 {
		a.println("No saved jobs yet.")
		return nil
	}
	for _, j := range saved {
		a.printJobLine(j)
	}
	return nil
}

// Post prompts for the post-a-job form and adds the job to the catalog.
func (a *App) Post(ctx context.Context) error {
	var nj models.NewJob
	fields := []struct {
		prompt string
		def    string
		dst    *string
	}{
		{"Company", "", &nj.Company},
		{"Location", "", &nj.Location},
		{"Position title", "", &nj.Position},
		{"Category (" + strings.Join(models.Categories, ", ") + ")", "", &nj.Role},
		{"Salary", services.DefaultSalary, &nj.Salary},
		{"Experience (0-1, 2-3, 4-5, 5+)", models.Experience0to1, &nj.Experience},
		{"Work type (Remote, Hybrid, Onsite)", models.WorktypeRemote, &nj.Worktype},
	}
	for _, f := range fields {
		v, err := GetTextWithDefault(a.reader, f.prompt, f.def, a.out)
		if err != nil {
			return a.fail(err)
		}
		*f.dst = v
	}

	desc, err := GetMultiline(a.reader, "Description (optional)", a.out)
	if err != nil {
		return a.fail(err)
	}
	nj.Desc = desc

	j, err := a.catalog.AddJob(ctx, nj)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Job posted successfully! id=%d\n", j.ID)
	return nil
}

// Apply submits an application to the given job, or to the job last shown.
// Name and email default to the signed-in user.
func (a *App) Apply(ctx context.Context, args []string) error {
	var id int64
	if len(args) > 0 {
		var err error
		if id, err = parseID(args); err != nil {
			return a.fail(err)
		}
	} else {
		cur, err := a.catalog.Get(services.FieldCurrentJob)
		if err != nil {
			return a.fail(err)
		}
		j, ok := cur.(*models.Job)
		if !ok || j == nil {
			return a.fail(errUsageID)
		}
		id = j.ID
	}

	var defName, defEmail string
	if u := a.accounts.CurrentUser(); u != nil {
		defName, defEmail = u.Name, u.Email
	}
	name, err := GetTextWithDefault(a.reader, "Full name", defName, a.out)
	if err != nil {
		return a.fail(err)
	}
	email, err := GetTextWithDefault(a.reader, "Email", defEmail, a.out)
	if err != nil {
		return a.fail(err)
	}

	app, err := a.catalog.Apply(ctx, id, name, email)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Application submitted to %s!\n", app.Company)
	return nil
}

func (a *App) Applications(ctx context.Context) error {
	apps := a.catalog.Applications()
	if len(apps) == 0 {
		a.println("No applications yet.")
		return nil
	}
	for _, ap := range apps {
		a.printf("%s  %-32s %-18s %s\n", ap.AppliedAt.Format("2006-01-02"), ap.JobTitle, ap.Company, ap.Email)
	}
	return nil
}

// Profile prints the profile summary with the resolved application history.
func (a *App) Profile(ctx context.Context) error {
	p := a.profile.Summary(ctx)
	if p.SignedIn {
		a.printf("[%s] %s\n", p.Initials, p.Name)
		if p.Email != "" {
			a.printf("  Email: %s\n", p.Email)
		}
		if p.Phone != "" {
			a.printf("  Phone: %s\n", p.Phone)
		}
	} else {
		a.println("Not signed in.")
	}
	a.printf("  Applied: %d  Saved: %d\n", p.AppliedCount, p.SavedCount)
	for _, v := range p.Applications {
		a.printf("  - %s at %s (%s)\n", v.Title, v.Company, v.AppliedAt.Format("2006-01-02"))
	}
	return nil
}

func (a *App) Counts(ctx context.Context) error {
	c := a.catalog.Counts()
	a.printf("All: %d\n", c.All)
	for _, cat := range models.Categories {
		a.printf("  %-18s %d\n", cat, c.ByCategory[cat])
	}
	return nil
}

// Theme prints, sets or, with "toggle", flips the theme preference.
func (a *App) Theme(ctx context.Context, args []string) error {
	switch {
	case len(args) == 0:
		a.println("Theme:", a.catalog.Theme())
		return nil
	case args[0] == "toggle":
		if _, err := a.catalog.ToggleTheme(ctx); err != nil {
			return a.fail(err)
		}
	default:
		if err := a.catalog.SetTheme(ctx, args[0]); err != nil {
			return a.fail(err)
		}
	}
	a.println("Theme:", a.catalog.Theme())
	return nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobhunt/internal/client/models"
	"github.com/dmitrijs2005/jobhunt/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobhunt/internal/common"
	"github.com/dmitrijs2005/jobhunt/internal/idgen"
	"github.com/dmitrijs2005/jobhunt/internal/logging"
)

// Field names accepted by CatalogService.Get and Set.
const (
	FieldTheme          = "theme"
	FieldCurrentJob     = "currentJob"
	FieldActiveCategory = "activeCategory"
	FieldActiveExp      = "activeExp"
	FieldActiveWorktype = "activeWorktype"
	FieldJobs           = "jobs"
	FieldSavedJobs      = "savedJobs"
	FieldApplications   = "applications"
)

// Defaults for posted jobs.
const (
	DefaultSalary = "$60K–$90K"
	DefaultPosted = "Just now"
)

// CatalogService owns the job catalog, the saved set, the application log,
// the theme and the transient browsing fields.
//
// Every mutation writes the whole catalog record before it takes effect in
// memory; on a write error the state is left as it was.
type CatalogService interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error

	Job(id int64) (models.Job, bool)
	Jobs() []models.Job
	SavedJobs() []models.Job
	Applications() []models.Application
	IsSaved(id int64) bool

	ToggleSave(ctx context.Context, id int64) (bool, error)
	AddJob(ctx context.Context, nj models.NewJob) (*models.Job, error)
	AddApplication(ctx context.Context, app models.Application) (*models.Application, error)
	Apply(ctx context.Context, jobID int64, name, email string) (*models.Application, error)

	Query(f models.Filters) []models.Job
	Counts() models.Counts

	Theme() string
	SetTheme(ctx context.Context, theme string) error
	ToggleTheme(ctx context.Context) (string, error)

	Get(field string) (any, error)
	Set(ctx context.Context, field string, value any) error

	SetCategoryFilter(category string)
	ToggleExperienceFilter(exp string)
	ToggleWorktypeFilter(worktype string)
	ActiveFilters() models.Filters
}

// catalogRecord is the stored form under KeyCatalog.
type catalogRecord struct {
	SavedJobs    []models.Job         `json:"savedJobs"`
	Applications []models.Application `json:"applications"`
	PostedJobs   []models.Job         `json:"postedJobs"`
	Theme        string               `json:"theme"`
}

type catalogState struct {
	jobs  []models.Job
	saved []models.Job
	apps  []models.Application
	theme string
}

func (st catalogState) record() catalogRecord {
	posted := make([]models.Job, 0)
	for _, j := range st.jobs {
		if !isSeedID(j.ID) {
			posted = append(posted, j)
		}
	}
	return catalogRecord{
		SavedJobs:    nonNil(st.saved),
		Applications: nonNil(st.apps),
		PostedJobs:   posted,
		Theme:        st.theme,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

type catalogStore struct {
	mu   sync.Mutex
	repo metadata.Repository
	log  logging.Logger
	ids  *idgen.Generator
	now  func() time.Time

	st catalogState

	currentJob     *models.Job
	activeCategory string
	activeExp      string
	activeWorktype string
}

// NewCatalogService constructs a CatalogService persisting through repo.
// Until Load is called it holds the seed catalog and the dark theme.
func NewCatalogService(repo metadata.Repository, log logging.Logger, now func() time.Time) CatalogService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.Nop()
	}
	return &catalogStore{
		repo: repo,
		log:  log.With("store", "catalog"),
		ids:  idgen.New(now),
		now:  now,
		st:   catalogState{jobs: seedJobs(), theme: models.ThemeDark},
	}
}

func (s *catalogStore) Load(ctx context.Context) error {
	rec := s.readRecord(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{})
	jobs := make([]models.Job, 0, len(rec.PostedJobs)+len(seedIDs))
	for _, j := range rec.PostedJobs {
		if _, dup := seen[j.ID]; dup || isSeedID(j.ID) {
			s.log.Warn(ctx, "dropping posted job with a taken id", "job_id", j.ID)
			continue
		}
		seen[j.ID] = struct{}{}
		jobs = append(jobs, j)
	}
	jobs = append(jobs, seedJobs()...)

	theme := rec.Theme
	if theme != models.ThemeLight {
		theme = models.ThemeDark
	}

	s.st = catalogState{jobs: jobs, saved: rec.SavedJobs, apps: rec.Applications, theme: theme}
	for _, j := range jobs {
		s.ids.Observe(j.ID)
	}
	for _, a := range rec.Applications {
		s.ids.Observe(a.ID)
	}
	return nil
}

func (s *catalogStore) readRecord(ctx context.Context) catalogRecord {
	var rec catalogRecord
	raw, err := s.repo.Get(ctx, KeyCatalog)
	if err != nil {
		s.log.Warn(ctx, "reading catalog failed, starting empty", "error", err)
		return rec
	}
	if raw == nil {
		return rec
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.log.Warn(ctx, "catalog record is malformed, starting empty", "error", err)
		return catalogRecord{}
	}
	return rec
}

func (s *catalogStore) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, s.st)
}

// commit persists next and, on success, makes it the current state.
// Callers hold s.mu.
func (s *catalogStore) commit(ctx context.Context, next catalogState) error {
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.st = next
	return nil
}

func (s *catalogStore) write(ctx context.Context, st catalogState) error {
	data, err := json.Marshal(st.record())
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := s.repo.Set(ctx, KeyCatalog, data); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

func (s *catalogStore) Job(id int64) (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findJob(id)
}

func (s *catalogStore) findJob(id int64) (models.Job, bool) {
	i := slices.IndexFunc(s.st.jobs, func(j models.Job) bool { return j.ID == id })
	if i < 0 {
		return models.Job{}, false
	}
	return s.st.jobs[i], true
}

func (s *catalogStore) Jobs() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.jobs)
}

func (s *catalogStore) SavedJobs() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.saved)
}

func (s *catalogStore) Applications() []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.apps)
}

func (s *catalogStore) IsSaved(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSaved(id)
}

func (s *catalogStore) isSaved(id int64) bool {
	return slices.ContainsFunc(s.st.saved, func(j models.Job) bool { return j.ID == id })
}

func (s *catalogStore) ToggleSave(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.findJob(id)
	if !ok {
		return false, fmt.Errorf("%w: job %d", common.ErrorNotFound, id)
	}

	next := s.st
	saved := !s.isSaved(id)
	if saved {
		next.saved = append(slices.Clone(s.st.saved), job)
	} else {
		next.saved = slices.DeleteFunc(slices.Clone(s.st.saved), func(j models.Job) bool { return j.ID == id })
	}

	if err := s.commit(ctx, next); err != nil {
		return !saved, err
	}
	return saved, nil
}

func (s *catalogStore) AddJob(ctx context.Context, nj models.NewJob) (*models.Job, error) {
	if err := models.Validate(nj); err != nil {
		return nil, err
	}

	job := models.Job{
		Company:    nj.Company,
		Role:       nj.Role,
		Position:   nj.Position,
		Location:   nj.Location,
		Salary:     orDefault(nj.Salary, DefaultSalary),
		Experience: orDefault(nj.Experience, models.Experience0to1),
		Worktype:   orDefault(nj.Worktype, models.WorktypeRemote),
		Posted:     DefaultPosted,
		Desc:       orDefault(nj.Desc, descriptions[0]),
		Logo:       nj.Logo,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = s.freshJobID()

	next := s.st
	next.jobs = append([]models.Job{job}, s.st.jobs...)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "job posted", "job_id", job.ID, "company", job.Company)
	return &job, nil
}

func (s *catalogStore) freshJobID() int64 {
	for {
		id := s.ids.Next()
		if _, taken := s.findJob(id); !taken {
			return id
		}
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (s *catalogStore) AddApplication(ctx context.Context, app models.Application) (*models.Application, error) {
	if err := models.Validate(app); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addApplication(ctx, app)
}

func (s *catalogStore) addApplication(ctx context.Context, app models.Application) (*models.Application, error) {
	if app.ID == 0 {
		app.ID = s.ids.Next()
	}
	if app.AppliedAt.IsZero() {
		app.AppliedAt = s.now().UTC()
	}

	next := s.st
	next.apps = append(slices.Clone(s.st.apps), app)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "application submitted", "application_id", app.ID, "job_id", app.JobID)
	return &app, nil
}

func (s *catalogStore) Apply(ctx context.Context, jobID int64, name, email string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.findJob(jobID)
	if !ok {
		return nil, fmt.Errorf("%w: job %d", common.ErrorNotFound, jobID)
	}

	app := models.Application{
		JobID:    job.ID,
		JobTitle: job.Position,
		Company:  job.Company,
		Name:     name,
		Email:    email,
	}
	if err := models.Validate(app); err != nil {
		return nil, err
	}
	return s.addApplication(ctx, app)
}

func (s *catalogStore) Query(f models.Filters) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterJobs(s.st.jobs, f)
}

func (s *catalogStore) Counts() models.Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countJobs(s.st.jobs)
}

func (s *catalogStore) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.theme
}

func (s *catalogStore) SetTheme(ctx context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setTheme(ctx, theme)
}

func (s *catalogStore) setTheme(ctx context.Context, theme string) error {
	if theme != models.ThemeDark && theme != models.ThemeLight {
		return fmt.Errorf("%w: theme must be %q or %q", common.ErrorValidation, models.ThemeDark, models.ThemeLight)
	}
	next := s.st
	next.theme = theme
	return s.commit(ctx, next)
}

func (s *catalogStore) ToggleTheme(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme := models.ThemeLight
	if s.st.theme == models.ThemeLight {
		theme = models.ThemeDark
	}
	if err := s.setTheme(ctx, theme); err != nil {
		return s.st.theme, err
	}
	return theme, nil
}

func (s *catalogStore) Get(field string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldTheme:
		return s.st.theme, nil
	case FieldCurrentJob:
		if s.currentJob == nil {
			return nil, nil
		}
		j := *s.currentJob
		return &j, nil
	case FieldActiveCategory:
		return s.activeCategory, nil
	case FieldActiveExp:
		return s.activeExp, nil
	case FieldActiveWorktype:
		return s.activeWorktype, nil
	case FieldJobs:
		return slices.Clone(s.st.jobs), nil
	case FieldSavedJobs:
		return slices.Clone(s.st.saved), nil
	case FieldApplications:
		return slices.Clone(s.st.apps), nil
	default:
		return nil, fmt.Errorf("%w: field %q", common.ErrorNotFound, field)
	}
}

// Set assigns one of the writable fields. The collections are read-only
// here; they change only through their dedicated operations.
func (s *catalogStore) Set(ctx context.Context, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldTheme:
		theme, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: theme must be a string", common.ErrorValidation)
		}
		return s.setTheme(ctx, theme)
	case FieldCurrentJob:
		return s.setCurrentJob(value)
	case FieldActiveCategory, FieldActiveExp, FieldActiveWorktype:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s must be a string", common.ErrorValidation, field)
		}
		switch field {
		case FieldActiveCategory:
			s.activeCategory = v
		case FieldActiveExp:
			s.activeExp = v
		default:
			s.activeWorktype = v
		}
		return nil
	case FieldJobs, FieldSavedJobs, FieldApplications:
		return fmt.Errorf("%w: field %q is read-only", common.ErrorValidation, field)
	default:
		return fmt.Errorf("%w: field %q", common.ErrorNotFound, field)
	}
}

func (s *catalogStore) setCurrentJob(value any) error {
	switch v := value.(type) {
	case nil:
		s.currentJob = nil
	case models.Job:
		s.currentJob = &v
	case *models.Job:
		if v == nil {
			s.currentJob = nil
			return nil
		}
		j := *v
		s.currentJob = &j
	case int64:
		j, ok := s.findJob(v)
		if !ok {
			return fmt.Errorf("%w: job %d", common.ErrorNotFound, v)
		}
		s.currentJob = &j
	default:
		return fmt.Errorf("%w: currentJob must be a job or a job id", common.ErrorValidation)
	}
	return nil
}

func (s *catalogStore) SetCategoryFilter(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCategory = category
}

func (s *catalogStore) ToggleExperienceFilter(exp string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeExp = toggle(s.activeExp, exp)
}

func (s *catalogStore) ToggleWorktypeFilter(worktype string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeWorktype = toggle(s.activeWorktype, worktype)
}

func toggle(current, v string) string {
	if current == v {
		return ""
	}
	return v
}

func (s *catalogStore) ActiveFilters() models.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Filters{
		Category:   s.activeCategory,
		Experience: s.activeExp,
		Worktype:   s.activeWorktype,
	}
}

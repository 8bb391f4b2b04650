package services

import (
	"context"

	"github.com/dmitrijs2005/jobhunt/internal/client/models"
	"github.com/dmitrijs2005/jobhunt/internal/common"
)

// ProfileService builds the profile page from the session user and the
// catalog statistics.
type ProfileService interface {
	Summary(ctx context.Context) models.Profile
}

type profileService struct {
	accounts AccountService
	catalog  CatalogService
}

func NewProfileService(accounts AccountService, catalog CatalogService) ProfileService {
	return &profileService{accounts: accounts, catalog: catalog}
}

func (p *profileService) Summary(_ context.Context) models.Profile {
	var prof models.Profile
	if u := p.accounts.CurrentUser(); u != nil {
		prof.SignedIn = true
		prof.Name = u.Name
		prof.Email = u.Email
		prof.Phone = u.Phone
		prof.Initials = common.Initials(u.Name)
	}

	apps := p.catalog.Applications()
	prof.AppliedCount = len(apps)
	prof.SavedCount = len(p.catalog.SavedJobs())

	prof.Applications = make([]models.ApplicationView, 0, len(apps))
	for _, a := range apps {
		v := models.ApplicationView{Application: a, Title: a.JobTitle, Company: a.Company}
		if j, ok := p.catalog.Job(a.JobID); ok {
			v.Job = &j
			v.Title = j.Position
			v.Company = j.Company
		}
		prof.Applications = append(prof.Applications, v)
	}
	return prof
}

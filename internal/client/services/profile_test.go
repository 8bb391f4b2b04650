package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/jobhunt/internal/client/models"
	"github.com/dmitrijs2005/jobhunt/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Summary(t *testing.T) {
	ctx := context.Background()
	repo := metadata.NewMemoryRepository()
	accounts := newAccounts(t, repo, AccountOptions{})
	catalog := newCatalog(t, repo)
	profile := NewProfileService(accounts, catalog)

	anon := profile.Summary(ctx)
	assert.False(t, anon.SignedIn)
	assert.Empty(t, anon.Name)
	assert.Empty(t, anon.Applications)

	_, err := accounts.Register(ctx, models.RegisterRequest{
		Name: "ada lovelace byron", Email: "a@x.io", Phone: "+44 20 7946 0000", Password: []byte("secret1"),
	})
	require.NoError(t, err)

	_, err = catalog.ToggleSave(ctx, 2)
	require.NoError(t, err)
	_, err = catalog.Apply(ctx, 3, "Ada", "a@x.io")
	require.NoError(t, err)
	_, err = catalog.AddApplication(ctx, models.Application{JobID: 777, JobTitle: "Old Role", Company: "Defunct", Name: "Ada", Email: "a@x.io"})
	require.NoError(t, err)

	p := profile.Summary(ctx)
	assert.True(t, p.SignedIn)
	assert.Equal(t, "ada lovelace byron", p.Name)
	assert.Equal(t, "a@x.io", p.Email)
	assert.Equal(t, "+44 20 7946 0000", p.Phone)
	assert.Equal(t, "AL", p.Initials)
	assert.Equal(t, 2, p.AppliedCount)
	assert.Equal(t, 1, p.SavedCount)

	require.Len(t, p.Applications, 2)
	require.NotNil(t, p.Applications[0].Job)
	assert.Equal(t, "Linear", p.Applications[0].Company)
	assert.Equal(t, "Full Stack Product Engineer", p.Applications[0].Title)
	assert.Nil(t, p.Applications[1].Job)
	assert.Equal(t, "Old Role", p.Applications[1].Title)
	assert.Equal(t, "Defunct", p.Applications[1].Company)
}

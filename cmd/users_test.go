package main

import (
	"testing"

	"github.com/Sagaustus/spyral-translation/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestParseGroups(t *testing.T) {
	gs, err := parseGroups([]string{"l10n_reviewer", " L10N_SUPERADMIN "})
	assert.NoError(t, err)
	assert.Equal(t, []entity.Group{entity.GroupReviewer, entity.GroupSuperadmin}, gs)

	_, err = parseGroups([]string{"admins"})
	assert.Error(t, err)
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range []interface{ Name() string }{
		migrateCmd(), importCSVCmd(), exportLocaleCmd(), exportAllCmd(),
		seedLocalesCmd(), addUserCmd(), assignLocaleCmd(),
	} {
		names[c.Name()] = true
	}
	for _, want := range []string{"migrate", "import-csv", "export-locale", "export-all", "seed-locales", "add-user", "assign-locale"} {
		assert.True(t, names[want], want)
	}
}

package presets

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/dependency/mocks"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"google.golang.org/grpc/codes"
)

func newRepo(t *testing.T) (*mocks.Repository, *mocks.Locales) {
	repo := mocks.NewRepository(t)
	locales := mocks.NewLocales(t)
	repo.EXPECT().Locales().Return(locales).Maybe()
	repo.EXPECT().Tx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, dependency.Repository) error) error {
			return fn(ctx, repo)
		}).Maybe()
	return repo, locales
}

func TestSeedsAreValidTags(t *testing.T) {
	seeds, err := Seeds(GlobalPlusAfricaIndiaChinese)
	require.NoError(t, err)
	assert.Len(t, seeds, 21)

	seen := map[string]bool{}
	for _, s := range seeds {
		_, err := language.Parse(s.Bcp47)
		assert.NoError(t, err, s.Code)
		assert.False(t, seen[s.Code], "duplicate %s", s.Code)
		seen[s.Code] = true
		assert.False(t, s.IsRtl)
	}
}

func TestSeedsUnknownPreset(t *testing.T) {
	_, err := Seeds("europe")
	assert.Equal(t, codes.InvalidArgument, gerr.Code(err))
}

func TestSeed(t *testing.T) {
	repo, locales := newRepo(t)
	ctx := context.Background()

	seeds, _ := Seeds(GlobalPlusAfricaIndiaChinese)
	for _, s := range seeds {
		switch s.Code {
		case "zh-hans":
			// identical, skipped
			locales.EXPECT().GetLocaleByCode(mock.Anything, s.Code).Return(&entity.Locale{Id: 1, LocaleInsert: entity.LocaleInsert{
				Code: s.Code, Bcp47: s.Bcp47, Name: s.Name, Script: entity.NullString(s.Script), Enabled: true,
			}}, nil)
		case "sw":
			// drifted name, legacy column kept
			locales.EXPECT().GetLocaleByCode(mock.Anything, s.Code).Return(&entity.Locale{Id: 2, LocaleInsert: entity.LocaleInsert{
				Code: s.Code, Bcp47: s.Bcp47, Name: "SW", Enabled: false,
				LegacyColumn: sql.NullString{String: "Swahili", Valid: true},
			}}, nil)
			locales.EXPECT().UpdateLocale(mock.Anything, 2, mock.MatchedBy(func(l *entity.LocaleInsert) bool {
				return l.Name == "Swahili" && l.Script.String == "Latn" && l.Enabled && l.LegacyColumn.String == "Swahili"
			})).Return(nil)
		default:
			locales.EXPECT().GetLocaleByCode(mock.Anything, s.Code).Return(nil, gerr.LocaleNotFound)
		}
	}
	locales.EXPECT().AddLocale(mock.Anything, mock.MatchedBy(func(l *entity.LocaleInsert) bool {
		return l.Enabled && !l.LegacyColumn.Valid
	})).Return(10, nil).Times(19)

	res, err := Seed(ctx, repo, GlobalPlusAfricaIndiaChinese, true, false)
	require.NoError(t, err)
	assert.Equal(t, 19, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "zh-hant", res.CreatedCodes[0])
	assert.Contains(t, res.Summary(), "…(+7 more)")
	assert.NotContains(t, res.Summary(), "dry-run")
}

func TestSeedDryRun(t *testing.T) {
	repo, locales := newRepo(t)

	locales.EXPECT().GetLocaleByCode(mock.Anything, mock.Anything).Return(nil, gerr.LocaleNotFound)
	locales.EXPECT().AddLocale(mock.Anything, mock.Anything).Return(1, nil)

	res, err := Seed(context.Background(), repo, GlobalPlusAfricaIndiaChinese, false, true)
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, 21, res.Created)
	assert.Contains(t, res.Summary(), "(dry-run: no changes were written)")
}

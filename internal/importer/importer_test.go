package importer

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/dependency/mocks"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/Sagaustus/spyral-translation/internal/sourcehash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

type fixture struct {
	repo    *mocks.Repository
	locales *mocks.Locales
	units   *mocks.StringUnits
	trs     *mocks.Translations
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:    mocks.NewRepository(t),
		locales: mocks.NewLocales(t),
		units:   mocks.NewStringUnits(t),
		trs:     mocks.NewTranslations(t),
	}
	f.repo.EXPECT().Locales().Return(f.locales).Maybe()
	f.repo.EXPECT().StringUnits().Return(f.units).Maybe()
	f.repo.EXPECT().Translations().Return(f.trs).Maybe()
	f.repo.EXPECT().Tx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, dependency.Repository) error) error {
			return fn(ctx, f.repo)
		}).Maybe()
	return f
}

func TestNormalizeCode(t *testing.T) {
	cases := map[string]string{
		"fr":        "fr",
		" PT_BR ":   "pt-br",
		"Zh Hant":   "zh-hant",
		"sr--latn!": "sr-latn",
		"__":        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeCode(in), in)
	}
}

func TestHeaderCode(t *testing.T) {
	assert.Equal(t, "fr", headerCode("French (fr)"))
	assert.Equal(t, "en", headerCode(" English (en)  "))
	assert.Equal(t, "de", headerCode("de"))
}

func TestLocaleDefaults(t *testing.T) {
	zh, err := localeDefaults("zh")
	require.NoError(t, err)
	assert.Equal(t, "zh-hans", zh.Code)
	assert.Equal(t, "zh-Hans", zh.Bcp47)
	assert.Equal(t, "Chinese (Simplified)", zh.Name)

	cz, err := localeDefaults("cz")
	require.NoError(t, err)
	assert.Equal(t, "cs", cz.Code)
	assert.Equal(t, "Czech", cz.Name)

	ar, err := localeDefaults("ar")
	require.NoError(t, err)
	assert.True(t, ar.IsRtl)
	assert.Equal(t, "ar", ar.LegacyColumn.String)

	ptbr, err := localeDefaults("pt_BR")
	require.NoError(t, err)
	assert.Equal(t, "pt-br", ptbr.Code)
	assert.Equal(t, "pt-BR", ptbr.Bcp47)
	assert.Equal(t, "PT-BR", ptbr.Name)
	assert.False(t, ptbr.IsRtl)

	_, err = localeDefaults("!!")
	assert.Equal(t, codes.FailedPrecondition, gerr.Code(err))
}

func TestResolveColumns(t *testing.T) {
	cols, err := resolveColumns([]string{"location", "Id", "English (en)", "EST", "fr", "zh"})
	require.NoError(t, err)
	assert.Equal(t, 0, cols.location)
	assert.Equal(t, 1, cols.id)
	assert.Equal(t, 2, cols.en)
	assert.Equal(t, 3, cols.est)
	assert.Equal(t, []localeColumn{{index: 4, header: "fr"}, {index: 5, header: "zh"}}, cols.locales)

	_, err = resolveColumns([]string{"Location", "ID", "en"})
	assert.Equal(t, codes.FailedPrecondition, gerr.Code(err))

	_, err = resolveColumns([]string{"Location", "ID", "est", "fr"})
	assert.Equal(t, codes.FailedPrecondition, gerr.Code(err))
}

func TestImport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	csvData := "Location,ID,English (en),est,fr,zh\n" +
		"home,title,\"Hello\r\n\",2020,Bonjour,\n" +
		",orphan,x,,y,\n" +
		"home,body,Body,2021,,正文\n"

	f.locales.EXPECT().GetLocaleByCode(mock.Anything, "fr").Return(nil, gerr.LocaleNotFound)
	f.locales.EXPECT().AddLocale(mock.Anything, mock.MatchedBy(func(l *entity.LocaleInsert) bool {
		return l.Code == "fr" && l.Name == "French" && l.Enabled && l.LegacyColumn.String == "fr"
	})).Return(1, nil)

	f.locales.EXPECT().GetLocaleByCode(mock.Anything, "zh-hans").Return(&entity.Locale{
		Id: 2,
		LocaleInsert: entity.LocaleInsert{
			Code:    "zh-hans",
			Bcp47:   "zh-Hans",
			Name:    "ZH-HANS",
			Enabled: true,
		},
	}, nil)
	f.locales.EXPECT().UpdateLocale(mock.Anything, 2, mock.MatchedBy(func(l *entity.LocaleInsert) bool {
		return l.Name == "Chinese (Simplified)" && l.LegacyColumn.String == "zh" && l.Bcp47 == "zh-Hans"
	})).Return(nil)

	// new unit, source text loses the trailing CRLF
	f.units.EXPECT().GetStringUnitByKey(mock.Anything, "home", "title").Return(nil, gerr.StringUnitNotFound)
	f.units.EXPECT().AddStringUnit(mock.Anything, mock.MatchedBy(func(su *entity.StringUnitInsert) bool {
		return su.SourceText == "Hello" && su.SourceUpdatedOn == "2020"
	}), sourcehash.Compute("Hello")).Return(10, nil)
	f.trs.EXPECT().GetTranslationByKey(mock.Anything, 10, 1).Return(nil, gerr.TranslationNotFound)
	f.trs.EXPECT().AddTranslation(mock.Anything, mock.MatchedBy(func(tr *entity.Translation) bool {
		return tr.ApprovedText.String == "Bonjour" &&
			tr.Status == entity.StatusApproved &&
			tr.Provenance == entity.ProvenanceImported &&
			tr.SourceHashAtLastUpdate == sourcehash.Compute("Hello")
	})).Return(100, nil)

	// unchanged unit, existing translation loses its reviewer
	body := &entity.StringUnit{
		Id: 11,
		StringUnitInsert: entity.StringUnitInsert{
			Location:        "home",
			MessageId:       "body",
			SourceText:      "Body",
			SourceUpdatedOn: "2021",
		},
		SourceHash: sourcehash.Compute("Body"),
	}
	f.units.EXPECT().GetStringUnitByKey(mock.Anything, "home", "body").Return(body, nil)
	f.units.EXPECT().GetStringUnitForUpdate(mock.Anything, 11).Return(body, nil)
	f.trs.EXPECT().GetTranslationByKey(mock.Anything, 11, 2).Return(&entity.Translation{
		Id:                     200,
		StringUnitId:           11,
		LocaleId:               2,
		ApprovedText:           sql.NullString{String: "正文", Valid: true},
		ReviewerText:           sql.NullString{String: "keep me", Valid: true},
		Status:                 entity.StatusApproved,
		Provenance:             entity.ProvenanceImported,
		SourceHashAtLastUpdate: sourcehash.Compute("Body"),
		ReviewerId:             sql.NullInt64{Int64: 7, Valid: true},
	}, nil)
	f.trs.EXPECT().UpdateTranslation(mock.Anything, mock.MatchedBy(func(tr *entity.Translation) bool {
		return tr.Id == 200 && !tr.ReviewerId.Valid && tr.ReviewerText.String == "keep me"
	})).Return(nil)

	f.repo.EXPECT().Cache().Return(nil)

	var out bytes.Buffer
	counts, err := New(f.repo).Import(ctx, strings.NewReader(csvData), Options{Limit: -1, Verbose: &out})
	require.NoError(t, err)

	assert.Equal(t, &Counts{
		RowsTotal:           3,
		RowsSkipped:         1,
		RowsProcessed:       2,
		StringUnitsCreated:  1,
		LocalesCreated:      1,
		LocalesUpdated:      1,
		TranslationsCreated: 1,
		TranslationsUpdated: 1,
	}, counts)
	assert.Equal(t, "[create] fr home::title\n[update] zh-hans home::body\n", out.String())
	assert.Contains(t, counts.Summary(), "- rows_skipped: 1")
}

func TestImportLimitAndDryRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	csvData := "Location,ID,en,est\n" +
		"home,title,Hello,\n" +
		"home,body,Body,\n"

	f.units.EXPECT().GetStringUnitByKey(mock.Anything, "home", "title").Return(nil, gerr.StringUnitNotFound)
	f.units.EXPECT().AddStringUnit(mock.Anything, mock.Anything, sourcehash.Compute("Hello")).Return(10, nil)

	counts, err := New(f.repo).Import(ctx, strings.NewReader(csvData), Options{DryRun: true, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, counts.RowsTotal)
	assert.Equal(t, 1, counts.RowsProcessed)
	assert.Equal(t, 1, counts.StringUnitsCreated)
	f.repo.AssertNotCalled(t, "Cache")
}

func TestImportSkipsMalformedRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	csvData := "Location,ID,en,est\n" +
		"home,title,Hello,2024\n" +
		"home,broken,a,b,c,d\n" +
		"home,quote,He said \"hi\",2024\n" +
		"home,short\n"

	f.units.EXPECT().GetStringUnitByKey(mock.Anything, "home", "title").Return(nil, gerr.StringUnitNotFound)
	f.units.EXPECT().AddStringUnit(mock.Anything, mock.Anything, sourcehash.Compute("Hello")).Return(10, nil)
	f.units.EXPECT().GetStringUnitByKey(mock.Anything, "home", "quote").Return(nil, gerr.StringUnitNotFound)
	f.units.EXPECT().AddStringUnit(mock.Anything, mock.MatchedBy(func(su *entity.StringUnitInsert) bool {
		return su.SourceText == `He said "hi"` && su.SourceUpdatedOn == "2024"
	}), sourcehash.Compute(`He said "hi"`)).Return(11, nil)
	f.units.EXPECT().GetStringUnitByKey(mock.Anything, "home", "short").Return(nil, gerr.StringUnitNotFound)
	f.units.EXPECT().AddStringUnit(mock.Anything, mock.MatchedBy(func(su *entity.StringUnitInsert) bool {
		return su.SourceText == "" && su.SourceUpdatedOn == ""
	}), sourcehash.Compute("")).Return(12, nil)

	counts, err := New(f.repo).Import(ctx, strings.NewReader(csvData), Options{DryRun: true, Limit: -1})
	require.NoError(t, err)
	assert.Equal(t, 4, counts.RowsTotal)
	assert.Equal(t, 1, counts.RowsSkipped)
	assert.Equal(t, 3, counts.RowsProcessed)
	assert.Equal(t, 3, counts.StringUnitsCreated)
}

func TestImportMissingColumns(t *testing.T) {
	f := newFixture(t)
	_, err := New(f.repo).Import(context.Background(), strings.NewReader("Location,ID\nhome,title\n"), Options{Limit: -1})
	assert.Equal(t, codes.FailedPrecondition, gerr.Code(err))

	_, err = New(f.repo).Import(context.Background(), strings.NewReader(""), Options{Limit: -1})
	assert.Equal(t, codes.FailedPrecondition, gerr.Code(err))
}

func TestImportFileNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := New(f.repo).ImportFile(context.Background(), t.TempDir()+"/missing.csv", Options{Limit: -1})
	assert.Equal(t, codes.FailedPrecondition, gerr.Code(err))
}

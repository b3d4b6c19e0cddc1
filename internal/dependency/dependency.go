package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/Sagaustus/spyral-translation/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Locales interface {
		// AddLocale inserts a locale and returns its id.
		AddLocale(ctx context.Context, l *entity.LocaleInsert) (int, error)
		// UpdateLocale overwrites every writable column of the locale.
		UpdateLocale(ctx context.Context, id int, l *entity.LocaleInsert) error
		GetLocaleById(ctx context.Context, id int) (*entity.Locale, error)
		// GetLocaleByCode returns gerr.LocaleNotFound when no locale matches.
		GetLocaleByCode(ctx context.Context, code string) (*entity.Locale, error)
		// ListLocales returns locales ordered by code.
		ListLocales(ctx context.Context, enabledOnly bool) ([]entity.Locale, error)
	}

	StringUnits interface {
		// AddStringUnit inserts a unit with an already computed hash.
		AddStringUnit(ctx context.Context, su *entity.StringUnitInsert, sourceHash string) (int, error)
		// UpdateStringUnit overwrites source text, marker and hash.
		UpdateStringUnit(ctx context.Context, id int, su *entity.StringUnitInsert, sourceHash string) error
		GetStringUnitById(ctx context.Context, id int) (*entity.StringUnit, error)
		// GetStringUnitByKey returns gerr.StringUnitNotFound when the pair is unknown.
		GetStringUnitByKey(ctx context.Context, location, messageId string) (*entity.StringUnit, error)
		// GetStringUnitForUpdate locks the row until the transaction ends.
		GetStringUnitForUpdate(ctx context.Context, id int) (*entity.StringUnit, error)
		// ListStringUnits returns every unit ordered by location, message id.
		ListStringUnits(ctx context.Context) ([]entity.StringUnit, error)
	}

	Translations interface {
		AddTranslation(ctx context.Context, t *entity.Translation) (int, error)
		// UpdateTranslation persists every mutable column of t.
		UpdateTranslation(ctx context.Context, t *entity.Translation) error
		GetTranslationById(ctx context.Context, id int) (*entity.TranslationFull, error)
		// GetTranslationForUpdate locks the translation row until the transaction ends.
		GetTranslationForUpdate(ctx context.Context, id int) (*entity.TranslationFull, error)
		// GetTranslationByKey returns gerr.TranslationNotFound when the pair has no row.
		GetTranslationByKey(ctx context.Context, stringUnitId, localeId int) (*entity.Translation, error)
		// ListTranslations returns one page and the total count for the filter.
		ListTranslations(ctx context.Context, f entity.TranslationFilter) ([]entity.TranslationFull, int, error)
		// SetStatusBulk overwrites status for ids inside scope and returns affected rows.
		SetStatusBulk(ctx context.Context, ids []int, status entity.TranslationStatus, scope entity.LocaleScope) (int64, error)
		// MarkStaleByStringUnit moves translations with approved text under the unit to STALE.
		MarkStaleByStringUnit(ctx context.Context, stringUnitId int) (int64, error)
		// MarkDriftedStale moves approved translations whose recorded hash differs from their unit to STALE.
		MarkDriftedStale(ctx context.Context) (int64, error)
		// ListApprovedByLocale returns the approved text of every translation in a locale,
		// whatever its status; exports decide what counts as approved.
		ListApprovedByLocale(ctx context.Context, localeId int) ([]entity.ApprovedRow, error)
	}

	Users interface {
		AddUser(ctx context.Context, username, pwHash string, superuser bool) (int, error)
		// GetByUsername returns gerr.UserNotFound when no user matches.
		GetByUsername(ctx context.Context, username string) (*entity.User, error)
		PasswordHashByUsername(ctx context.Context, username string) (string, error)
		GroupsOf(ctx context.Context, userId int) ([]entity.Group, error)
		AddToGroup(ctx context.Context, userId int, group entity.Group) error
	}

	Assignments interface {
		// Assign returns gerr.AlreadyAssigned when the pair exists.
		Assign(ctx context.Context, userId, localeId int) (int, error)
		Unassign(ctx context.Context, userId, localeId int) error
		LocaleIdsOf(ctx context.Context, userId int) ([]int, error)
		ListAssignments(ctx context.Context) ([]entity.LocaleAssignmentFull, error)
	}

	Repository interface {
		Locales() Locales
		StringUnits() StringUnits
		Translations() Translations
		Users() Users
		Assignments() Assignments
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		Cache() Cache
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Cache keeps locales in memory; they change rarely and every request resolves one.
	Cache interface {
		GetLocaleById(id int) (*entity.Locale, bool)
		GetLocaleByCode(code string) (*entity.Locale, bool)
		GetLocales() []entity.Locale
		RefreshLocales(locales []entity.Locale)
	}

	// Worker is a background job with a start/stop lifecycle.
	Worker interface {
		Start(ctx context.Context) error
		Stop() error
	}
)

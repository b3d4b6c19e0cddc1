package entity

import (
	"database/sql"
)

// LocaleInsert holds the writable columns of the locale table.
type LocaleInsert struct {
	Code         string         `db:"code" valid:"required"`  // slug-like canonical identifier (e.g. fr, zh-hans)
	Bcp47        string         `db:"bcp47" valid:"required"` // BCP-47 tag (e.g. zh-Hans)
	Name         string         `db:"name" valid:"required"`  // human readable name
	Script       sql.NullString `db:"script"`                 // ISO 15924 script, optional
	IsRtl        bool           `db:"is_rtl"`
	Enabled      bool           `db:"enabled"`
	LegacyColumn sql.NullString `db:"legacy_column"` // column name in the origin CSV, informational
}

// Locale represents the locale table
type Locale struct {
	Id int `db:"id"`
	LocaleInsert
}

func (l *Locale) String() string {
	return l.Code + " (" + l.Name + ")"
}

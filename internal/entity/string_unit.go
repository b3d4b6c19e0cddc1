package entity

import (
	"time"
)

// StringUnitInsert is one source string keyed by (location, message_id).
type StringUnitInsert struct {
	Location        string `db:"location" valid:"required"`
	MessageId       string `db:"message_id" valid:"required"`
	SourceText      string `db:"source_text"`
	SourceUpdatedOn string `db:"source_updated_on"` // opaque upstream marker, never parsed
}

// StringUnit represents the string_unit table
type StringUnit struct {
	Id int `db:"id"`
	StringUnitInsert
	// SourceHash is derived from SourceText on every save.
	SourceHash string    `db:"source_hash"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (su *StringUnit) String() string {
	return su.Location + " :: " + su.MessageId
}

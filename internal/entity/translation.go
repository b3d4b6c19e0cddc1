package entity

import (
	"database/sql"
	"time"
)

// TranslationStatus is the custom type to enforce enum-like behavior
type TranslationStatus string

func (ts TranslationStatus) String() string {
	return string(ts)
}

const (
	StatusApproved     TranslationStatus = "APPROVED"
	StatusStale        TranslationStatus = "STALE"
	StatusInReview     TranslationStatus = "IN_REVIEW"
	StatusMachineDraft TranslationStatus = "MACHINE_DRAFT"
	StatusRejected     TranslationStatus = "REJECTED"
	StatusFlagged      TranslationStatus = "FLAGGED"
)

// ValidTranslationStatuses is a set of valid translation statuses
var ValidTranslationStatuses = map[TranslationStatus]bool{
	StatusApproved:     true,
	StatusStale:        true,
	StatusInReview:     true,
	StatusMachineDraft: true,
	StatusRejected:     true,
	StatusFlagged:      true,
}

// Provenance tells how the approved text originated.
type Provenance string

func (p Provenance) String() string {
	return string(p)
}

const (
	ProvenanceImported Provenance = "IMPORTED"
	ProvenanceHuman    Provenance = "HUMAN"
	ProvenanceLLM      Provenance = "LLM"
	ProvenanceMT       Provenance = "MT"
)

// ValidProvenances is a set of valid provenance values
var ValidProvenances = map[Provenance]bool{
	ProvenanceImported: true,
	ProvenanceHuman:    true,
	ProvenanceLLM:      true,
	ProvenanceMT:       true,
}

// Translation represents the translation table
type Translation struct {
	Id                     int               `db:"id"`
	StringUnitId           int               `db:"string_unit_id"`
	LocaleId               int               `db:"locale_id"`
	ApprovedText           sql.NullString    `db:"approved_text"`
	ReviewerText           sql.NullString    `db:"reviewer_text"`
	MachineDraft           sql.NullString    `db:"machine_draft"`
	Status                 TranslationStatus `db:"status"`
	Provenance             Provenance        `db:"provenance"`
	SourceHashAtLastUpdate string            `db:"source_hash_at_last_update"`
	QAFlags                QAFlags           `db:"qa_flags"`
	ReviewerId             sql.NullInt64     `db:"reviewer_id"`
	CreatedAt              time.Time         `db:"created_at"`
	UpdatedAt              time.Time         `db:"updated_at"`
}

// TranslationFull is a translation joined with its locale and string unit.
type TranslationFull struct {
	Translation
	LocaleCode      string `db:"locale_code"`
	Location        string `db:"location"`
	MessageId       string `db:"message_id"`
	SourceText      string `db:"source_text"`
	SourceHash      string `db:"source_hash"`
	SourceUpdatedOn string `db:"source_updated_on"`
}

// TranslationInsert is a new translation candidate, e.g. a machine draft.
type TranslationInsert struct {
	StringUnitId int
	LocaleId     int
	ApprovedText string
	ReviewerText string
	MachineDraft string
	Status       TranslationStatus
	Provenance   Provenance
}

// TranslationEdit is a proposed mutation. Nil fields are left untouched.
type TranslationEdit struct {
	ApprovedText *string
	ReviewerText *string
	MachineDraft *string
	Status       *TranslationStatus
	Provenance   *Provenance
	LocaleId     *int
	StringUnitId *int
	ReviewerId   *int
}

// Apply returns a copy of t with the edit applied.
func (e *TranslationEdit) Apply(t Translation) Translation {
	if e == nil {
		return t
	}
	if e.ApprovedText != nil {
		t.ApprovedText = NullString(*e.ApprovedText)
	}
	if e.ReviewerText != nil {
		t.ReviewerText = NullString(*e.ReviewerText)
	}
	if e.MachineDraft != nil {
		t.MachineDraft = NullString(*e.MachineDraft)
	}
	if e.Status != nil {
		t.Status = *e.Status
	}
	if e.Provenance != nil {
		t.Provenance = *e.Provenance
	}
	if e.LocaleId != nil {
		t.LocaleId = *e.LocaleId
	}
	if e.StringUnitId != nil {
		t.StringUnitId = *e.StringUnitId
	}
	if e.ReviewerId != nil {
		t.ReviewerId = sql.NullInt64{Int64: int64(*e.ReviewerId), Valid: *e.ReviewerId > 0}
	}
	return t
}

// LocaleScope restricts queries to a set of locales.
// Unrestricted wins over LocaleIds; an empty restricted scope matches nothing.
type LocaleScope struct {
	Unrestricted bool
	LocaleIds    []int
}

// Contains reports whether the scope covers localeId.
func (s LocaleScope) Contains(localeId int) bool {
	if s.Unrestricted {
		return true
	}
	for _, id := range s.LocaleIds {
		if id == localeId {
			return true
		}
	}
	return false
}

// TranslationFilter is used to list translations.
type TranslationFilter struct {
	Scope         LocaleScope
	LocaleCode    string
	StringUnitId  int
	Statuses      []TranslationStatus
	Provenance    Provenance
	HasQAWarnings *bool
	Search        string
	Limit         int
	Offset        int
}

// ApprovedRow is the slim projection used by exports.
type ApprovedRow struct {
	StringUnitId int            `db:"string_unit_id"`
	ApprovedText sql.NullString `db:"approved_text"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// NullString maps an empty string to NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

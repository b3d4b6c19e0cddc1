package admin

import (
	"time"

	"github.com/Sagaustus/spyral-translation/internal/entity"
	"github.com/Sagaustus/spyral-translation/internal/l10n"
)

type LocaleView struct {
	Id           int    `json:"id"`
	Code         string `json:"code"`
	Bcp47        string `json:"bcp47"`
	Name         string `json:"name"`
	Script       string `json:"script,omitempty"`
	IsRtl        bool   `json:"is_rtl"`
	Enabled      bool   `json:"enabled"`
	LegacyColumn string `json:"legacy_column,omitempty"`
}

func newLocaleView(l entity.Locale) LocaleView {
	return LocaleView{
		Id:           l.Id,
		Code:         l.Code,
		Bcp47:        l.Bcp47,
		Name:         l.Name,
		Script:       l.Script.String,
		IsRtl:        l.IsRtl,
		Enabled:      l.Enabled,
		LegacyColumn: l.LegacyColumn.String,
	}
}

type StringUnitView struct {
	Id              int       `json:"id"`
	Location        string    `json:"location"`
	MessageId       string    `json:"message_id"`
	SourceText      string    `json:"source_text"`
	SourceUpdatedOn string    `json:"source_updated_on"`
	SourceHash      string    `json:"source_hash"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newStringUnitView(su *entity.StringUnit) StringUnitView {
	return StringUnitView{
		Id:              su.Id,
		Location:        su.Location,
		MessageId:       su.MessageId,
		SourceText:      su.SourceText,
		SourceUpdatedOn: su.SourceUpdatedOn,
		SourceHash:      su.SourceHash,
		CreatedAt:       su.CreatedAt,
		UpdatedAt:       su.UpdatedAt,
	}
}

type SaveStringUnitResponse struct {
	StringUnit  StringUnitView `json:"string_unit"`
	Created     bool           `json:"created"`
	Updated     bool           `json:"updated"`
	StaleMarked int64          `json:"stale_marked"`
}

func newSaveStringUnitResponse(res *l10n.StringUnitResult) *SaveStringUnitResponse {
	return &SaveStringUnitResponse{
		StringUnit:  newStringUnitView(res.StringUnit),
		Created:     res.Created,
		Updated:     res.Updated,
		StaleMarked: res.StaleMarked,
	}
}

type TranslationView struct {
	Id                     int            `json:"id"`
	StringUnitId           int            `json:"string_unit_id"`
	LocaleId               int            `json:"locale_id"`
	LocaleCode             string         `json:"locale_code"`
	Location               string         `json:"location"`
	MessageId              string         `json:"message_id"`
	SourceText             string         `json:"source_text"`
	SourceHash             string         `json:"source_hash"`
	ApprovedText           *string        `json:"approved_text"`
	ReviewerText           *string        `json:"reviewer_text"`
	MachineDraft           *string        `json:"machine_draft"`
	Status                 string         `json:"status"`
	Provenance             string         `json:"provenance"`
	SourceHashAtLastUpdate string         `json:"source_hash_at_last_update"`
	Stale                  bool           `json:"stale"`
	QAFlags                entity.QAFlags `json:"qa_flags"`
	ReviewerId             *int64         `json:"reviewer_id"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

func newTranslationView(t *entity.TranslationFull) TranslationView {
	v := TranslationView{
		Id:                     t.Id,
		StringUnitId:           t.StringUnitId,
		LocaleId:               t.LocaleId,
		LocaleCode:             t.LocaleCode,
		Location:               t.Location,
		MessageId:              t.MessageId,
		SourceText:             t.SourceText,
		SourceHash:             t.SourceHash,
		Status:                 t.Status.String(),
		Provenance:             t.Provenance.String(),
		SourceHashAtLastUpdate: t.SourceHashAtLastUpdate,
		Stale:                  t.SourceHashAtLastUpdate != "" && t.SourceHashAtLastUpdate != t.SourceHash,
		QAFlags:                t.QAFlags,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
	if v.QAFlags == nil {
		v.QAFlags = entity.QAFlags{}
	}
	if t.ApprovedText.Valid {
		v.ApprovedText = &t.ApprovedText.String
	}
	if t.ReviewerText.Valid {
		v.ReviewerText = &t.ReviewerText.String
	}
	if t.MachineDraft.Valid {
		v.MachineDraft = &t.MachineDraft.String
	}
	if t.ReviewerId.Valid {
		v.ReviewerId = &t.ReviewerId.Int64
	}
	return v
}

type ListTranslationsResponse struct {
	Items []TranslationView `json:"items"`
	Total int               `json:"total"`
}

type UpdateTranslationResponse struct {
	Translation TranslationView `json:"translation"`
	Warnings    []string        `json:"warnings,omitempty"`
}

type ApproveResponse struct {
	Translation TranslationView `json:"translation"`
	Changed     bool            `json:"changed"`
}

type BulkActionResponse struct {
	Action   string `json:"action"`
	Affected int64  `json:"affected"`
}

type AssignmentView struct {
	Id         int       `json:"id"`
	UserId     int       `json:"user_id"`
	Username   string    `json:"username"`
	LocaleId   int       `json:"locale_id"`
	LocaleCode string    `json:"locale_code"`
	LocaleName string    `json:"locale_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func newAssignmentView(a entity.LocaleAssignmentFull) AssignmentView {
	return AssignmentView{
		Id:         a.Id,
		UserId:     a.UserId,
		Username:   a.Username,
		LocaleId:   a.LocaleId,
		LocaleCode: a.LocaleCode,
		LocaleName: a.LocaleName,
		CreatedAt:  a.CreatedAt,
	}
}

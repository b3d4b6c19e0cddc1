package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Sagaustus/spyral-translation/internal/entity"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
	MaxBulkIds       = 1000
)

// ParseTranslationFilter reads the list query parameters. The locale scope
// is not part of the request; callers set it from the principal.
func ParseTranslationFilter(q url.Values) (entity.TranslationFilter, error) {
	v := Violations{}
	f := entity.TranslationFilter{
		LocaleCode: strings.TrimSpace(q.Get("locale")),
		Search:     strings.TrimSpace(q.Get("q")),
		Limit:      DefaultPageLimit,
	}

	if s := q.Get("status"); s != "" {
		for _, part := range strings.Split(s, ",") {
			st := entity.TranslationStatus(strings.ToUpper(strings.TrimSpace(part)))
			if !entity.ValidTranslationStatuses[st] {
				v.Add("status", fmt.Sprintf("unknown status %q", part))
				continue
			}
			f.Statuses = append(f.Statuses, st)
		}
	}
	if p := q.Get("provenance"); p != "" {
		pr := entity.Provenance(strings.ToUpper(p))
		if !entity.ValidProvenances[pr] {
			v.Add("provenance", fmt.Sprintf("unknown provenance %q", p))
		}
		f.Provenance = pr
	}
	switch strings.ToLower(q.Get("has_qa_warnings")) {
	case "":
	case "yes", "true", "1":
		b := true
		f.HasQAWarnings = &b
	case "no", "false", "0":
		b := false
		f.HasQAWarnings = &b
	default:
		v.Add("has_qa_warnings", "must be yes or no")
	}
	if s := q.Get("string_unit_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil || id <= 0 {
			v.Add("string_unit_id", "must be a positive integer")
		}
		f.StringUnitId = id
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > MaxPageLimit {
			v.Add("limit", fmt.Sprintf("must be between 1 and %d", MaxPageLimit))
		}
		f.Limit = n
	}
	if s := q.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			v.Add("offset", "must be a non-negative integer")
		}
		f.Offset = n
	}
	if err := v.Err(); err != nil {
		return entity.TranslationFilter{}, err
	}
	return f, nil
}

// UpdateTranslationRequest is a partial edit; absent fields stay untouched.
type UpdateTranslationRequest struct {
	ApprovedText *string `json:"approved_text"`
	ReviewerText *string `json:"reviewer_text"`
	MachineDraft *string `json:"machine_draft"`
	Status       *string `json:"status"`
	Provenance   *string `json:"provenance"`
	LocaleId     *int    `json:"locale_id"`
	StringUnitId *int    `json:"string_unit_id"`
	ReviewerId   *int    `json:"reviewer_id"`
}

func (r *UpdateTranslationRequest) Validate() error {
	v := Violations{}
	if r.Status != nil && !entity.ValidTranslationStatuses[entity.TranslationStatus(*r.Status)] {
		v.Add("status", fmt.Sprintf("unknown status %q", *r.Status))
	}
	if r.Provenance != nil && !entity.ValidProvenances[entity.Provenance(*r.Provenance)] {
		v.Add("provenance", fmt.Sprintf("unknown provenance %q", *r.Provenance))
	}
	if r.LocaleId != nil && *r.LocaleId <= 0 {
		v.Add("locale_id", "must be a positive integer")
	}
	if r.StringUnitId != nil && *r.StringUnitId <= 0 {
		v.Add("string_unit_id", "must be a positive integer")
	}
	if r.ReviewerId != nil && *r.ReviewerId < 0 {
		v.Add("reviewer_id", "must not be negative")
	}
	return ValidateStruct(r, v)
}

// Edit converts the request into a translation edit.
func (r *UpdateTranslationRequest) Edit() *entity.TranslationEdit {
	e := &entity.TranslationEdit{
		ApprovedText: r.ApprovedText,
		ReviewerText: r.ReviewerText,
		MachineDraft: r.MachineDraft,
		LocaleId:     r.LocaleId,
		StringUnitId: r.StringUnitId,
		ReviewerId:   r.ReviewerId,
	}
	if r.Status != nil {
		st := entity.TranslationStatus(*r.Status)
		e.Status = &st
	}
	if r.Provenance != nil {
		p := entity.Provenance(*r.Provenance)
		e.Provenance = &p
	}
	return e
}

type CreateTranslationRequest struct {
	StringUnitId int    `json:"string_unit_id"`
	LocaleId     int    `json:"locale_id"`
	ApprovedText string `json:"approved_text"`
	ReviewerText string `json:"reviewer_text"`
	MachineDraft string `json:"machine_draft"`
	Status       string `json:"status" valid:"optional,in(APPROVED|STALE|IN_REVIEW|MACHINE_DRAFT|REJECTED|FLAGGED)"`
	Provenance   string `json:"provenance" valid:"optional,in(IMPORTED|HUMAN|LLM|MT)"`
}

func (r *CreateTranslationRequest) Validate() error {
	v := Violations{}
	if r.StringUnitId <= 0 {
		v.Add("string_unit_id", "must be a positive integer")
	}
	if r.LocaleId <= 0 {
		v.Add("locale_id", "must be a positive integer")
	}
	return ValidateStruct(r, v)
}

func (r *CreateTranslationRequest) Insert() *entity.TranslationInsert {
	return &entity.TranslationInsert{
		StringUnitId: r.StringUnitId,
		LocaleId:     r.LocaleId,
		ApprovedText: r.ApprovedText,
		ReviewerText: r.ReviewerText,
		MachineDraft: r.MachineDraft,
		Status:       entity.TranslationStatus(r.Status),
		Provenance:   entity.Provenance(r.Provenance),
	}
}

// Bulk actions.
const (
	BulkMarkInReview = "mark_in_review"
	BulkFlag         = "flag"
	BulkApprove      = "approve"
)

type BulkActionRequest struct {
	Action string `json:"action" valid:"required,in(mark_in_review|flag|approve)"`
	Ids    []int  `json:"ids"`
}

func (r *BulkActionRequest) Validate() error {
	v := Violations{}
	switch {
	case len(r.Ids) == 0:
		v.Add("ids", "at least one id is required")
	case len(r.Ids) > MaxBulkIds:
		v.Add("ids", fmt.Sprintf("at most %d ids are allowed", MaxBulkIds))
	}
	for _, id := range r.Ids {
		if id <= 0 {
			v.Add("ids", "ids must be positive integers")
			break
		}
	}
	return ValidateStruct(r, v)
}

// Package workflow holds the translation state machine: candidate
// selection, flag recomputation, the approval action and the field
// clamping applied to reviewer edits. Every function works on values and
// never touches the store, so callers decide when to persist.
package workflow

import (
	"database/sql"
	"strings"

	"github.com/Sagaustus/spyral-translation/internal/entity"
	"github.com/Sagaustus/spyral-translation/internal/qa"
)

// WarnReviewerApprove is returned when a reviewer tries to approve directly.
const WarnReviewerApprove = "Reviewers cannot set status=APPROVED. Set to IN_REVIEW instead."

// InitialStatus is the status of a freshly created translation.
const InitialStatus = entity.StatusInReview

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isBlankNull(s sql.NullString) bool {
	return !s.Valid || IsBlank(s.String)
}

// CandidateText picks the text QA runs against: approved, then reviewer,
// then machine draft, else empty.
func CandidateText(t *entity.Translation) string {
	switch {
	case !isBlankNull(t.ApprovedText):
		return t.ApprovedText.String
	case !isBlankNull(t.ReviewerText):
		return t.ReviewerText.String
	case !isBlankNull(t.MachineDraft):
		return t.MachineDraft.String
	}
	return ""
}

// RecomputeFlags replaces t.QAFlags with fresh flags for the candidate text.
// empty_translation is only kept when t.Status is APPROVED; the status read
// is the one about to be saved, after any forcing rule was applied.
func RecomputeFlags(t *entity.Translation, source string) {
	flags := qa.ComputeFlags(source, CandidateText(t))
	if t.Status == entity.StatusApproved {
		t.QAFlags = flags
		return
	}
	kept := make(entity.QAFlags, 0, len(flags))
	for _, f := range flags {
		if f.Code == entity.QAEmptyTranslation {
			continue
		}
		kept = append(kept, f)
	}
	t.QAFlags = kept
}

// Approve applies the approval action in place and reports whether any
// field changed. Applying it to an approved, synced translation is a no-op.
func Approve(t *entity.Translation, unitHash string) bool {
	changed := false

	if isBlankNull(t.ApprovedText) && !isBlankNull(t.ReviewerText) {
		t.ApprovedText = t.ReviewerText
		changed = true
	}

	if t.Status != entity.StatusApproved {
		t.Status = entity.StatusApproved
		changed = true
	}

	if t.Provenance != entity.ProvenanceImported && t.Provenance != entity.ProvenanceHuman {
		t.Provenance = entity.ProvenanceHuman
		changed = true
	}

	if t.SourceHashAtLastUpdate != unitHash {
		t.SourceHashAtLastUpdate = unitHash
		changed = true
	}

	return changed
}

// ClampReviewerEdit diffs proposed against the last persisted snapshot and
// reverts every field a reviewer may not change. The reviewer becomes the
// acting principal and a direct approval is downgraded to IN_REVIEW.
func ClampReviewerEdit(persisted, proposed entity.Translation, reviewerId int) (entity.Translation, []string) {
	var warnings []string

	clamped := proposed
	clamped.Id = persisted.Id
	clamped.ApprovedText = persisted.ApprovedText
	clamped.MachineDraft = persisted.MachineDraft
	clamped.Provenance = persisted.Provenance
	clamped.LocaleId = persisted.LocaleId
	clamped.StringUnitId = persisted.StringUnitId
	clamped.SourceHashAtLastUpdate = persisted.SourceHashAtLastUpdate
	clamped.CreatedAt = persisted.CreatedAt
	clamped.ReviewerId = sql.NullInt64{Int64: int64(reviewerId), Valid: reviewerId > 0}

	if clamped.Status == entity.StatusApproved {
		clamped.Status = entity.StatusInReview
		warnings = append(warnings, WarnReviewerApprove)
	}

	return clamped, warnings
}

// NewTranslation builds the row for a fresh translation with defaults
// applied: IN_REVIEW status and HUMAN provenance unless given.
func NewTranslation(ins entity.TranslationInsert) entity.Translation {
	t := entity.Translation{
		StringUnitId: ins.StringUnitId,
		LocaleId:     ins.LocaleId,
		ApprovedText: entity.NullString(ins.ApprovedText),
		ReviewerText: entity.NullString(ins.ReviewerText),
		MachineDraft: entity.NullString(ins.MachineDraft),
		Status:       ins.Status,
		Provenance:   ins.Provenance,
		QAFlags:      entity.QAFlags{},
	}
	if t.Status == "" {
		t.Status = InitialStatus
	}
	if t.Provenance == "" {
		t.Provenance = entity.ProvenanceHuman
	}
	return t
}

// Imported updates t to mirror an approved text from a bulk import and
// reports whether anything changed. Reviewer text and machine draft are kept.
func Imported(t *entity.Translation, text, unitHash string) bool {
	changed := false

	if !t.ApprovedText.Valid || t.ApprovedText.String != text {
		t.ApprovedText = entity.NullString(text)
		changed = true
	}
	if t.Status != entity.StatusApproved {
		t.Status = entity.StatusApproved
		changed = true
	}
	if t.Provenance != entity.ProvenanceImported {
		t.Provenance = entity.ProvenanceImported
		changed = true
	}
	if t.SourceHashAtLastUpdate != unitHash {
		t.SourceHashAtLastUpdate = unitHash
		changed = true
	}
	if t.ReviewerId.Valid {
		t.ReviewerId = sql.NullInt64{}
		changed = true
	}

	return changed
}

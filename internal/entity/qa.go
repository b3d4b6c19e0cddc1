package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// QACode identifies a kind of quality warning.
type QACode string

const (
	QAMissingPlaceholder QACode = "missing_placeholder"
	QAExtraPlaceholder   QACode = "extra_placeholder"
	QAUnbalancedBraces   QACode = "unbalanced_braces"
	QAHTMLTagMismatch    QACode = "html_tag_mismatch"
	QAEmptyTranslation   QACode = "empty_translation"
)

// QAFlag is a single structured warning persisted in translation.qa_flags.
type QAFlag struct {
	Code    QACode         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// TagCount holds the occurrences of one tag key in source and target.
type TagCount struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// QAFlags is the ordered list of warnings stored as a JSON column.
type QAFlags []QAFlag

// Has reports whether a flag with the given code is present.
func (f QAFlags) Has(code QACode) bool {
	for _, flag := range f {
		if flag.Code == code {
			return true
		}
	}
	return false
}

// Get returns the first flag with the given code.
func (f QAFlags) Get(code QACode) (QAFlag, bool) {
	for _, flag := range f {
		if flag.Code == code {
			return flag, true
		}
	}
	return QAFlag{}, false
}

// Value implements driver.Valuer. An empty list is stored as [].
func (f QAFlags) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]QAFlag(f))
	if err != nil {
		return nil, fmt.Errorf("marshal qa flags: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (f *QAFlags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = QAFlags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported qa flags type %T", src)
	}
	if len(raw) == 0 {
		*f = QAFlags{}
		return nil
	}
	var flags []QAFlag
	if err := json.Unmarshal(raw, &flags); err != nil {
		return fmt.Errorf("unmarshal qa flags: %w", err)
	}
	*f = flags
	return nil
}

package form

import "github.com/Sagaustus/spyral-translation/internal/entity"

type SaveStringUnitRequest struct {
	Location        string `json:"location" valid:"required"`
	MessageId       string `json:"message_id" valid:"required"`
	SourceText      string `json:"source_text"`
	SourceUpdatedOn string `json:"source_updated_on"`
}

func (r *SaveStringUnitRequest) Validate() error {
	return ValidateStruct(r, nil)
}

func (r *SaveStringUnitRequest) Insert() *entity.StringUnitInsert {
	return &entity.StringUnitInsert{
		Location:        r.Location,
		MessageId:       r.MessageId,
		SourceText:      r.SourceText,
		SourceUpdatedOn: r.SourceUpdatedOn,
	}
}

type AssignmentRequest struct {
	Username   string `json:"username" valid:"required"`
	LocaleCode string `json:"locale_code" valid:"required"`
}

func (r *AssignmentRequest) Validate() error {
	return ValidateStruct(r, nil)
}

package dto

import (
	"hotel/shared/constant"
	"hotel/shared/model"
	"hotel/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	if !model.CreatedAt.IsZero() {
		m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	}

	if !model.ModifiedAt.IsZero() {
		m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	}
}

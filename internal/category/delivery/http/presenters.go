package http

import (
	"ledgerly-api/internal/category"
	"ledgerly-api/internal/model"
)

type categoryResp struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

func newCategoryResp(cat model.Category) categoryResp {
	return categoryResp{
		Type:  cat.Type,
		Color: cat.Color,
	}
}

func newListResp(cats []model.Category) []categoryResp {
	res := make([]categoryResp, len(cats))
	for i, cat := range cats {
		res[i] = newCategoryResp(cat)
	}
	return res
}

type createReq struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

func (r createReq) validate() error {
	if r.Type == "" || r.Color == "" {
		return category.ErrIncompleteBody
	}
	return nil
}

type updateReq struct {
	Type  *string `json:"type"`
	Color *string `json:"color"`
}

func (r updateReq) validate() error {
	if r.Type == nil || r.Color == nil {
		return category.ErrMissingValues
	}
	if *r.Type == "" || *r.Color == "" {
		return category.ErrIncompleteBody
	}
	return nil
}

func newUpdateInput(oldType string, r updateReq) category.UpdateInput {
	return category.UpdateInput{
		OldType: oldType,
		Type:    *r.Type,
		Color:   *r.Color,
	}
}

type deleteReq struct {
	Types []string `json:"types"`
}

func (r deleteReq) validate() error {
	if len(r.Types) == 0 {
		return category.ErrEmptyTypes
	}
	return nil
}

type countResp struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

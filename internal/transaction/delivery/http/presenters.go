package http

import (
	"strconv"
	"time"

	"ledgerly-api/internal/model"
	"ledgerly-api/internal/transaction"
)

type transactionResp struct {
	Username string    `json:"username"`
	Amount   float64   `json:"amount"`
	Type     string    `json:"type"`
	Date     time.Time `json:"date"`
	Color    string    `json:"color,omitempty"`
}

func newTransactionResp(tr model.Transaction) transactionResp {
	return transactionResp{
		Username: tr.Username,
		Amount:   tr.Amount,
		Type:     tr.Type,
		Date:     tr.Date,
		Color:    tr.Color,
	}
}

func newListResp(trs []model.Transaction) []transactionResp {
	res := make([]transactionResp, len(trs))
	for i, tr := range trs {
		res[i] = newTransactionResp(tr)
	}
	return res
}

// createReq accepts the amount as either a JSON number or a numeric string.
type createReq struct {
	Username string      `json:"username"`
	Amount   interface{} `json:"amount"`
	Type     string      `json:"type"`
}

func (r createReq) validate() error {
	if r.Username == "" || r.Type == "" || r.Amount == nil || r.Amount == "" || r.Amount == 0.0 {
		return transaction.ErrMissingParams
	}
	return nil
}

func (r createReq) parseAmount() (float64, error) {
	switch v := r.Amount.(type) {
	case float64:
		return v, nil
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, transaction.ErrNotParseableAmount
		}
		return n, nil
	default:
		return 0, transaction.ErrNotParseableAmount
	}
}

type deleteReq struct {
	ID string `json:"_id"`
}

func (r deleteReq) validate() error {
	if r.ID == "" {
		return transaction.ErrMissingID
	}
	return nil
}

// deleteManyReq distinguishes a missing _ids field from an empty array.
type deleteManyReq struct {
	IDs *[]string `json:"_ids"`
}

func (r deleteManyReq) validate() error {
	if r.IDs == nil {
		return transaction.ErrMissingIDs
	}
	if len(*r.IDs) < 1 {
		return transaction.ErrEmptyIDs
	}
	for _, id := range *r.IDs {
		if id == "" {
			return transaction.ErrEmptyID
		}
	}
	return nil
}

type messageResp struct {
	Message string `json:"message"`
}

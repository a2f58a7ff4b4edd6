package snapshot

import (
	"fmt"
	"time"

	"github.com/hanishin/moneyline/internal/common"
	"github.com/hanishin/moneyline/internal/model"
)

// LoanModels converts the serialized loans into validated models.
func (d *Document) LoanModels() ([]model.Loan, error) {
	out := make([]model.Loan, 0, len(d.Loans))
	for _, r := range d.Loans {
		loan := model.Loan{
			ID:            r.ID,
			Name:          r.Name,
			Principal:     r.Principal,
			InterestRate:  r.InterestRate,
			RepaymentType: model.RepaymentType(r.RepaymentType),
			TermMonths:    r.TermMonths,
			PaymentDay:    r.PaymentDay,
			Memo:          r.Memo,
		}
		var err error
		if loan.StartDate, err = parseDate(r.StartDate); err != nil {
			return nil, err
		}
		if loan.CreatedAt, err = parseCreatedAt(r.CreatedAt); err != nil {
			return nil, err
		}
		if err := loan.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedSnapshot, err)
		}
		out = append(out, loan)
	}
	return out, nil
}

// EventModels converts the serialized life events into validated models.
func (d *Document) EventModels() ([]model.LifeEvent, error) {
	out := make([]model.LifeEvent, 0, len(d.Events))
	for _, r := range d.Events {
		event := model.LifeEvent{
			ID:          r.ID,
			Title:       r.Title,
			Category:    model.EventCategory(r.Category),
			Description: r.Description,
			IsImportant: r.IsImportant,
			Color:       model.EventColor(r.Color),
		}
		var err error
		if event.Date, err = parseDate(r.Date); err != nil {
			return nil, err
		}
		if event.CreatedAt, err = parseCreatedAt(r.CreatedAt); err != nil {
			return nil, err
		}
		if err := event.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedSnapshot, err)
		}
		out = append(out, event)
	}
	return out, nil
}

// AssetModels converts the serialized assets into validated models.
func (d *Document) AssetModels() ([]model.Asset, error) {
	out := make([]model.Asset, 0, len(d.Assets))
	for _, r := range d.Assets {
		asset := model.Asset{
			ID:            r.ID,
			Name:          r.Name,
			Category:      model.AssetCategory(r.Category),
			PurchaseValue: r.PurchaseValue,
			CurrentValue:  r.CurrentValue,
			Description:   r.Description,
			Memo:          r.Memo,
		}
		var err error
		if r.PurchaseDate != "" {
			if asset.PurchaseDate, err = parseDate(r.PurchaseDate); err != nil {
				return nil, err
			}
		}
		if asset.CreatedAt, err = parseCreatedAt(r.CreatedAt); err != nil {
			return nil, err
		}
		if err := asset.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedSnapshot, err)
		}
		out = append(out, asset)
	}
	return out, nil
}

// FromModels builds a snapshot document out of store contents.
func FromModels(txns []model.Transaction, loans []model.Loan, events []model.LifeEvent, assets []model.Asset) *Document {
	doc := &Document{
		Transactions: make([]TransactionRecord, 0, len(txns)),
		Loans:        make([]LoanRecord, 0, len(loans)),
		Events:       make([]EventRecord, 0, len(events)),
		Assets:       make([]AssetRecord, 0, len(assets)),
	}

	for _, t := range txns {
		r := TransactionRecord{
			ID:         t.ID,
			Title:      t.Title,
			Amount:     t.Amount,
			Type:       string(t.Type),
			Category:   string(t.Category),
			Date:       t.Date.Format(dateFormat),
			Recurrence: string(t.Recurrence),
			Memo:       t.Memo,
			CreatedAt:  formatCreatedAt(t.CreatedAt),
		}
		if t.RecurrenceEnd != nil {
			r.RecurrenceEndDate = t.RecurrenceEnd.Format(dateFormat)
		}
		doc.Transactions = append(doc.Transactions, r)
	}

	for _, l := range loans {
		doc.Loans = append(doc.Loans, LoanRecord{
			ID:            l.ID,
			Name:          l.Name,
			Principal:     l.Principal,
			InterestRate:  l.InterestRate,
			RepaymentType: string(l.RepaymentType),
			TermMonths:    l.TermMonths,
			StartDate:     l.StartDate.Format(dateFormat),
			PaymentDay:    l.PaymentDay,
			Memo:          l.Memo,
			CreatedAt:     formatCreatedAt(l.CreatedAt),
		})
	}

	for _, e := range events {
		doc.Events = append(doc.Events, EventRecord{
			ID:          e.ID,
			Title:       e.Title,
			Category:    string(e.Category),
			Date:        e.Date.Format(dateFormat),
			Description: e.Description,
			IsImportant: e.IsImportant,
			Color:       string(e.Color),
			CreatedAt:   formatCreatedAt(e.CreatedAt),
		})
	}

	for _, a := range assets {
		r := AssetRecord{
			ID:            a.ID,
			Name:          a.Name,
			Category:      string(a.Category),
			PurchaseValue: a.PurchaseValue,
			CurrentValue:  a.CurrentValue,
			Description:   a.Description,
			Memo:          a.Memo,
			CreatedAt:     formatCreatedAt(a.CreatedAt),
		}
		if !a.PurchaseDate.IsZero() {
			r.PurchaseDate = a.PurchaseDate.Format(dateFormat)
		}
		doc.Assets = append(doc.Assets, r)
	}

	return doc
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", common.ErrMalformedSnapshot, s)
	}
	return t, nil
}

// parseCreatedAt accepts RFC3339 timestamps or bare dates; an absent value
// defaults to now, since createdAt only orders display lists.
func parseCreatedAt(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return parseDate(s)
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

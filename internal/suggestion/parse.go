package suggestion

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"fjacquet/event-budget/internal/budgeterror"
	"fjacquet/event-budget/internal/models"

	"github.com/shopspring/decimal"
)

const responseSource = "suggestion response"

// suggestedItem mirrors one element of the model's JSON answer.
type suggestedItem struct {
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	Type      string           `json:"type"`
	Amount    *decimal.Decimal `json:"amount"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	Quantity  *decimal.Decimal `json:"quantity"`
}

// ParseDrafts decodes the model's answer. The answer may be wrapped in a
// markdown code fence. Any malformed element rejects the whole answer.
// Variable lines without a quantity take the attendee count.
func ParseDrafts(text string, attendees int) ([]models.Draft, error) {
	payload := stripCodeFence(text)
	if payload == "" {
		return nil, &budgeterror.ParseError{Source: responseSource, Index: -1, Field: "body", Value: "", Err: errors.New("empty response")}
	}

	var raw []suggestedItem
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, &budgeterror.ParseError{Source: responseSource, Index: -1, Field: "body", Value: truncate(payload, 40), Err: err}
	}

	drafts := make([]models.Draft, 0, len(raw))
	for i, r := range raw {
		draft, err := r.toDraft(i, attendees)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func (r suggestedItem) toDraft(index, attendees int) (models.Draft, error) {
	fail := func(field, value string, err error) (models.Draft, error) {
		return models.Draft{}, &budgeterror.ParseError{Source: responseSource, Index: index, Field: field, Value: value, Err: err}
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		return fail("name", r.Name, errors.New("name is required"))
	}
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return fail("category", r.Category, err)
	}
	costType, err := models.ParseCostType(r.Type)
	if err != nil {
		return fail("type", r.Type, err)
	}

	amount := valueOrZero(r.Amount)
	price := valueOrZero(r.UnitPrice)
	quantity := valueOrZero(r.Quantity)
	checks := []struct {
		field string
		value decimal.Decimal
	}{{"amount", amount}, {"unitPrice", price}, {"quantity", quantity}}
	for _, c := range checks {
		if c.value.IsNegative() {
			return fail(c.field, c.value.String(), errors.New("value must not be negative"))
		}
	}

	if costType == models.CostTypeFixed {
		return models.NewDraft(models.NewFixedItem("", name, category, amount)), nil
	}
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(int64(attendees))
	}
	return models.NewDraft(models.NewVariableItem("", name, category, quantity, price)), nil
}

func valueOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}

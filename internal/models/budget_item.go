package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category separates income lines from expense lines.
type Category string

const (
	CategoryIncome  Category = "income"
	CategoryExpense Category = "expense"
)

// Categories lists the categories in display order.
var Categories = []Category{CategoryIncome, CategoryExpense}

// ParseCategory converts a raw category name into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryIncome, CategoryExpense:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category %q (must be 'income' or 'expense')", s)
	}
}

// CostType tells whether a line is a fixed total or quantity times unit price.
type CostType string

const (
	CostTypeFixed    CostType = "fixed"
	CostTypeVariable CostType = "variable"
)

// CostTypes lists the cost types in display order.
var CostTypes = []CostType{CostTypeFixed, CostTypeVariable}

// ParseCostType converts a raw type name into a CostType.
func ParseCostType(s string) (CostType, error) {
	switch CostType(s) {
	case CostTypeFixed, CostTypeVariable:
		return CostType(s), nil
	default:
		return "", fmt.Errorf("unknown cost type %q (must be 'fixed' or 'variable')", s)
	}
}

// FixedLine holds the user-entered total of a fixed line.
type FixedLine struct {
	Amount decimal.Decimal
}

// VariableLine holds the two factors of a variable line. Its amount is never
// stored.
type VariableLine struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Amount returns Quantity * UnitPrice.
func (v VariableLine) Amount() decimal.Decimal {
	return v.Quantity.Mul(v.UnitPrice)
}

// BudgetItem is one budget line. Exactly one of Fixed or Variable is set,
// matching Type.
type BudgetItem struct {
	ID       string
	Name     string
	Category Category
	Type     CostType
	Fixed    *FixedLine
	Variable *VariableLine
}

// NewFixedItem builds a fixed line.
func NewFixedItem(id, name string, category Category, amount decimal.Decimal) BudgetItem {
	return BudgetItem{
		ID:       id,
		Name:     name,
		Category: category,
		Type:     CostTypeFixed,
		Fixed:    &FixedLine{Amount: amount},
	}
}

// NewVariableItem builds a variable line.
func NewVariableItem(id, name string, category Category, quantity, unitPrice decimal.Decimal) BudgetItem {
	return BudgetItem{
		ID:       id,
		Name:     name,
		Category: category,
		Type:     CostTypeVariable,
		Variable: &VariableLine{Quantity: quantity, UnitPrice: unitPrice},
	}
}

// Amount returns the line total: the stored amount for fixed lines and the
// computed product for variable lines.
func (i BudgetItem) Amount() decimal.Decimal {
	switch {
	case i.Variable != nil:
		return i.Variable.Amount()
	case i.Fixed != nil:
		return i.Fixed.Amount
	default:
		return decimal.Zero
	}
}

// Quantity returns the unit count of a variable line. ok is false for fixed lines.
func (i BudgetItem) Quantity() (quantity decimal.Decimal, ok bool) {
	if i.Variable == nil {
		return decimal.Zero, false
	}
	return i.Variable.Quantity, true
}

// UnitPrice returns the per-unit price of a variable line. ok is false for fixed lines.
func (i BudgetItem) UnitPrice() (price decimal.Decimal, ok bool) {
	if i.Variable == nil {
		return decimal.Zero, false
	}
	return i.Variable.UnitPrice, true
}

// IsVariable reports whether the line is quantity times unit price.
func (i BudgetItem) IsVariable() bool {
	return i.Type == CostTypeVariable
}

// Is reports whether the item belongs to the given category and cost type.
func (i BudgetItem) Is(category Category, costType CostType) bool {
	return i.Category == category && i.Type == costType
}

// Clone returns a deep copy so callers cannot mutate store-owned lines.
func (i BudgetItem) Clone() BudgetItem {
	c := i
	if i.Fixed != nil {
		f := *i.Fixed
		c.Fixed = &f
	}
	if i.Variable != nil {
		v := *i.Variable
		c.Variable = &v
	}
	return c
}

// Validate checks that the variant matches the declared type and that no
// number is negative.
func (i BudgetItem) Validate() error {
	if _, err := ParseCategory(string(i.Category)); err != nil {
		return err
	}
	switch i.Type {
	case CostTypeFixed:
		if i.Fixed == nil || i.Variable != nil {
			return fmt.Errorf("fixed item %q must carry only a fixed amount", i.Name)
		}
		if i.Fixed.Amount.IsNegative() {
			return fmt.Errorf("fixed item %q has negative amount %s", i.Name, i.Fixed.Amount)
		}
	case CostTypeVariable:
		if i.Variable == nil || i.Fixed != nil {
			return fmt.Errorf("variable item %q must carry only quantity and unit price", i.Name)
		}
		if i.Variable.Quantity.IsNegative() || i.Variable.UnitPrice.IsNegative() {
			return fmt.Errorf("variable item %q has negative quantity or unit price", i.Name)
		}
	default:
		return fmt.Errorf("unknown cost type %q", i.Type)
	}
	return nil
}

// Field names one editable attribute of a BudgetItem.
type Field string

const (
	FieldName      Field = "name"
	FieldQuantity  Field = "quantity"
	FieldUnitPrice Field = "unitPrice"
	FieldAmount    Field = "amount"
)

// ParseField converts a raw field name into a Field. Both "unitPrice" and
// "unit_price" are accepted.
func ParseField(s string) (Field, error) {
	switch s {
	case "name":
		return FieldName, nil
	case "quantity":
		return FieldQuantity, nil
	case "unitPrice", "unit_price", "unit-price":
		return FieldUnitPrice, nil
	case "amount":
		return FieldAmount, nil
	default:
		return "", fmt.Errorf("unknown field %q", s)
	}
}

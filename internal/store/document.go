package store

import (
	"errors"
	"fmt"

	"fjacquet/event-budget/internal/budgeterror"
	"fjacquet/event-budget/internal/fileutils"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DocumentVersion is written into every saved document.
const DocumentVersion = 1

// Document is the on-disk form of a budget session.
type Document struct {
	Version  int                `yaml:"version"`
	Currency string             `yaml:"currency,omitempty"`
	Project  models.ProjectInfo `yaml:"project"`
	DriverID string             `yaml:"driver_id,omitempty"`
	Items    []ItemRecord       `yaml:"items"`
}

// ItemRecord is the flat form of a budget line, mirroring the CSV and JSON
// shape: quantity and unit price are present only for variable lines, and the
// amount of a variable line is informational.
type ItemRecord struct {
	ID        string           `yaml:"id" json:"id"`
	Name      string           `yaml:"name" json:"name"`
	Category  string           `yaml:"category" json:"category"`
	Type      string           `yaml:"type" json:"type"`
	Amount    decimal.Decimal  `yaml:"amount" json:"amount"`
	Quantity  *decimal.Decimal `yaml:"quantity,omitempty" json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `yaml:"unit_price,omitempty" json:"unitPrice,omitempty"`
}

// RecordFromItem flattens a budget line.
func RecordFromItem(item models.BudgetItem) ItemRecord {
	rec := ItemRecord{
		ID:       item.ID,
		Name:     item.Name,
		Category: string(item.Category),
		Type:     string(item.Type),
		Amount:   item.Amount(),
	}
	if qty, ok := item.Quantity(); ok {
		rec.Quantity = &qty
	}
	if price, ok := item.UnitPrice(); ok {
		rec.UnitPrice = &price
	}
	return rec
}

// RecordsFromItems flattens a collection.
func RecordsFromItems(items []models.BudgetItem) []ItemRecord {
	out := make([]ItemRecord, len(items))
	for i, item := range items {
		out[i] = RecordFromItem(item)
	}
	return out
}

// ToItem validates the record and rebuilds the budget line. Missing
// quantity or unit price on a variable line read as zero.
func (r ItemRecord) ToItem(source string, index int) (models.BudgetItem, error) {
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return models.BudgetItem{}, &budgeterror.ParseError{Source: source, Index: index, Field: "category", Value: r.Category, Err: err}
	}
	costType, err := models.ParseCostType(r.Type)
	if err != nil {
		return models.BudgetItem{}, &budgeterror.ParseError{Source: source, Index: index, Field: "type", Value: r.Type, Err: err}
	}

	if costType == models.CostTypeFixed {
		if r.Amount.IsNegative() {
			return models.BudgetItem{}, &budgeterror.ParseError{Source: source, Index: index, Field: "amount", Value: r.Amount.String(), Err: errors.New("must not be negative")}
		}
		return models.NewFixedItem(r.ID, r.Name, category, r.Amount), nil
	}

	qty := decimal.Zero
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	price := decimal.Zero
	if r.UnitPrice != nil {
		price = *r.UnitPrice
	}
	if qty.IsNegative() {
		return models.BudgetItem{}, &budgeterror.ParseError{Source: source, Index: index, Field: "quantity", Value: qty.String(), Err: errors.New("must not be negative")}
	}
	if price.IsNegative() {
		return models.BudgetItem{}, &budgeterror.ParseError{Source: source, Index: index, Field: "unitPrice", Value: price.String(), Err: errors.New("must not be negative")}
	}
	return models.NewVariableItem(r.ID, r.Name, category, qty, price), nil
}

// ToItems rebuilds every line of the document, rejecting duplicate ids.
func (d *Document) ToItems(source string) ([]models.BudgetItem, error) {
	seen := make(map[string]bool, len(d.Items))
	items := make([]models.BudgetItem, 0, len(d.Items))
	for i, rec := range d.Items {
		item, err := rec.ToItem(source, i)
		if err != nil {
			return nil, err
		}
		if item.ID != "" {
			if seen[item.ID] {
				return nil, &budgeterror.ParseError{Source: source, Index: i, Field: "id", Value: item.ID, Err: errors.New("duplicate id")}
			}
			seen[item.ID] = true
		}
		items = append(items, item)
	}
	return items, nil
}

// DocumentStore reads and writes a budget document on disk.
type DocumentStore struct {
	path   string
	logger logging.Logger
}

// NewDocumentStore returns a store for the document at path.
func NewDocumentStore(path string, logger logging.Logger) *DocumentStore {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &DocumentStore{path: path, logger: logger}
}

// Path returns the document location.
func (s *DocumentStore) Path() string {
	return s.path
}

// Exists reports whether the document file is present.
func (s *DocumentStore) Exists() bool {
	return fileutils.FileExists(s.path)
}

// Load reads and decodes the document.
func (s *DocumentStore) Load() (*Document, error) {
	data, err := fileutils.ReadFile(s.path)
	if err != nil {
		return nil, &budgeterror.DocumentError{Path: s.path, Operation: "load", Err: err}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &budgeterror.DocumentError{Path: s.path, Operation: "load", Err: fmt.Errorf("invalid YAML: %w", err)}
	}
	if doc.Version > DocumentVersion {
		return nil, &budgeterror.DocumentError{Path: s.path, Operation: "load", Err: fmt.Errorf("unsupported document version %d", doc.Version)}
	}

	s.logger.Debug("Loaded budget document",
		logging.F(logging.FieldFile, s.path),
		logging.F(logging.FieldCount, len(doc.Items)))
	return &doc, nil
}

// Save encodes the document and replaces the file atomically.
func (s *DocumentStore) Save(doc *Document) error {
	if doc == nil {
		return &budgeterror.DocumentError{Path: s.path, Operation: "save", Err: errors.New("nil document")}
	}
	doc.Version = DocumentVersion

	data, err := yaml.Marshal(doc)
	if err != nil {
		return &budgeterror.DocumentError{Path: s.path, Operation: "save", Err: err}
	}

	if err := fileutils.WriteFileAtomic(s.path, data); err != nil {
		return &budgeterror.DocumentError{Path: s.path, Operation: "save", Err: err}
	}

	s.logger.Debug("Saved budget document",
		logging.F(logging.FieldFile, s.path),
		logging.F(logging.FieldCount, len(doc.Items)))
	return nil
}

package cost

import (
	"fmt"

	"entregas/internal/pkg/errs"
)

// Category classifies an operational expense. The set is closed; anything
// that fits nowhere else goes under Outros.
type Category string

const (
	CategoryDiesel      Category = "Diesel"
	CategoryAlimentacao Category = "Alimentacao"
	CategoryContas      Category = "Contas"
	CategoryPneu        Category = "Pneu"
	CategoryOutros      Category = "Outros"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryDiesel,
		CategoryAlimentacao,
		CategoryContas,
		CategoryPneu,
		CategoryOutros,
	}
}

// CategoryFromString parses the persisted string form of a category.
func CategoryFromString(s string) (Category, error) {
	c := Category(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks the category against the closed set.
func (c Category) Validate() error {
	switch c {
	case CategoryDiesel, CategoryAlimentacao, CategoryContas, CategoryPneu, CategoryOutros:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%q is not a valid cost category", string(c)),
		)
	}
}

// String returns the wire name of the category.
func (c Category) String() string {
	return string(c)
}

package model

// Category classifies a transaction. Income and expense categories are
// disjoint sets; a transaction's category must agree with its type.
type Category string

// Income categories.
const (
	CategorySalary      Category = "salary"
	CategoryBonus       Category = "bonus"
	CategoryOtherIncome Category = "other_income"
)

// Expense categories.
const (
	CategoryRent         Category = "rent"
	CategoryInsurance    Category = "insurance"
	CategorySubscription Category = "subscription"
	CategoryUtilities    Category = "utilities"
	CategoryTransport    Category = "transport"
	CategoryFood         Category = "food"
	CategoryShopping     Category = "shopping"
	CategoryTravel       Category = "travel"
	CategoryEducation    Category = "education"
	CategoryMedical      Category = "medical"
	CategoryOtherExpense Category = "other_expense"
)

var categoryTypes = map[Category]TransactionType{
	CategorySalary:       TypeIncome,
	CategoryBonus:        TypeIncome,
	CategoryOtherIncome:  TypeIncome,
	CategoryRent:         TypeExpense,
	CategoryInsurance:    TypeExpense,
	CategorySubscription: TypeExpense,
	CategoryUtilities:    TypeExpense,
	CategoryTransport:    TypeExpense,
	CategoryFood:         TypeExpense,
	CategoryShopping:     TypeExpense,
	CategoryTravel:       TypeExpense,
	CategoryEducation:    TypeExpense,
	CategoryMedical:      TypeExpense,
	CategoryOtherExpense: TypeExpense,
}

// Valid reports whether the category is part of the fixed enumeration.
func (c Category) Valid() bool {
	_, ok := categoryTypes[c]
	return ok
}

// Type returns the transaction type the category belongs to. The zero
// TransactionType is returned for unknown categories.
func (c Category) Type() TransactionType {
	return categoryTypes[c]
}

// IncomeCategories returns the income half of the enumeration.
func IncomeCategories() []Category {
	return []Category{CategorySalary, CategoryBonus, CategoryOtherIncome}
}

// ExpenseCategories returns the expense half of the enumeration.
func ExpenseCategories() []Category {
	return []Category{
		CategoryRent, CategoryInsurance, CategorySubscription,
		CategoryUtilities, CategoryTransport, CategoryFood,
		CategoryShopping, CategoryTravel, CategoryEducation,
		CategoryMedical, CategoryOtherExpense,
	}
}

/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/
package bmi

// Category represents a BMI health-status classification.
type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is one of the supported values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryUnderweight, CategoryNormal, CategoryOverweight, CategoryObese:
		return true
	default:
		return false
	}
}

// SupportedCategories returns all categories in ascending BMI order.
func SupportedCategories() []Category {
	return []Category{
		CategoryUnderweight,
		CategoryNormal,
		CategoryOverweight,
		CategoryObese,
	}
}

// band is a half-open BMI interval [Min, Max) mapped to a category.
// The last band has no upper bound.
type band struct {
	Min      float64
	Max      float64
	Category Category
}

// WHO thresholds. Lower bound of each band is inclusive:
// exactly 18.5 is Normal, exactly 30.0 is Obese.
var bands = []band{
	{Min: 0, Max: 18.5, Category: CategoryUnderweight},
	{Min: 18.5, Max: 25.0, Category: CategoryNormal},
	{Min: 25.0, Max: 30.0, Category: CategoryOverweight},
	{Min: 30.0, Max: 0, Category: CategoryObese},
}

package enums

import "fmt"

// ProductCategory groups catalog entries for browsing and filtering.
type ProductCategory string

const (
	ProductCategoryVegetables     ProductCategory = "vegetables"
	ProductCategoryDairyProducts  ProductCategory = "dairy_products"
	ProductCategorySpicesAndOils  ProductCategory = "spices_and_oils"
	ProductCategoryMeatAndPoultry ProductCategory = "meat_and_poultry"
	ProductCategoryOthers         ProductCategory = "others"
)

var validProductCategories = []ProductCategory{
	ProductCategoryVegetables,
	ProductCategoryDairyProducts,
	ProductCategorySpicesAndOils,
	ProductCategoryMeatAndPoultry,
	ProductCategoryOthers,
}

// String implements fmt.Stringer.
func (p ProductCategory) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductCategory.
func (p ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == p {
			return true
		}
	}
	return false
}

// ProductCategories returns the browse order of all categories.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

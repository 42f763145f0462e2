package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
)

func TestProductsReturnsFullAssortment(t *testing.T) {
	svc := NewService()

	all := svc.Products(ListFilter{})
	assert.Len(t, all, 35)

	byCategory := map[enums.ProductCategory]int{}
	for _, p := range all {
		require.True(t, p.Category.IsValid(), "product %s has invalid category", p.ID)
		require.True(t, p.MRP.IsPositive(), "product %s has non-positive price", p.ID)
		byCategory[p.Category]++
	}
	assert.Equal(t, 12, byCategory[enums.ProductCategoryVegetables])
	assert.Equal(t, 2, byCategory[enums.ProductCategoryDairyProducts])
	assert.Equal(t, 11, byCategory[enums.ProductCategorySpicesAndOils])
	assert.Equal(t, 4, byCategory[enums.ProductCategoryMeatAndPoultry])
	assert.Equal(t, 6, byCategory[enums.ProductCategoryOthers])
}

func TestProductsFilters(t *testing.T) {
	svc := NewService()

	dairy := svc.Products(ListFilter{Category: "dairy_products"})
	require.Len(t, dairy, 2)
	for _, p := range dairy {
		assert.Equal(t, enums.ProductCategoryDairyProducts, p.Category)
	}

	matches := svc.Products(ListFilter{Search: "ToMaTo"})
	require.Len(t, matches, 1)
	assert.Equal(t, "tomato", matches[0].ID)

	none := svc.Products(ListFilter{Search: "zucchini"})
	assert.Empty(t, none)
}

func TestProductByID(t *testing.T) {
	svc := NewService()

	p, err := svc.ProductByID("tomato")
	require.NoError(t, err)
	assert.Equal(t, "Tomato", p.Name)
	assert.True(t, p.MRP.Equal(rupees(18)))

	_, err = svc.ProductByID("unicorn")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestSlots(t *testing.T) {
	svc := NewService()

	slots := svc.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "morning", slots[0].ID)
	assert.Equal(t, "9:00 AM – 12:00 PM", slots[0].Time)
	assert.Equal(t, "afternoon", slots[1].ID)

	_, err := svc.SlotByID("midnight")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

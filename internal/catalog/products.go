package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/anandmehra/dailybasket-backend/pkg/enums"
)

// Product is one sellable catalog entry. MRP is the per-unit price in rupees.
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Emoji       string                `json:"emoji"`
	Category    enums.ProductCategory `json:"category"`
	Unit        string                `json:"unit"`
	MRP         decimal.Decimal       `json:"mrp"`
}

// DeliverySlot is a fixed delivery window offered at checkout.
type DeliverySlot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Time string `json:"time"`
}

func rupees(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

var deliverySlots = []DeliverySlot{
	{ID: "morning", Name: "Morning", Time: "9:00 AM – 12:00 PM"},
	{ID: "afternoon", Name: "Afternoon", Time: "4:00 PM – 7:00 PM"},
}

var products = []Product{
	// Vegetables
	{ID: "onion", Name: "Onion", Description: "Fresh onions", Emoji: "🧅", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(20)},
	{ID: "tomato", Name: "Tomato", Description: "Juicy red tomatoes", Emoji: "🍅", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(18)},
	{ID: "garlic", Name: "Garlic", Description: "Aromatic garlic bulbs", Emoji: "🧄", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(25)},
	{ID: "potato", Name: "Potato", Description: "Fresh potatoes", Emoji: "🥔", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(15)},
	{ID: "carrot", Name: "Carrot", Description: "Fresh orange carrots", Emoji: "🥕", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(22)},
	{ID: "cauliflower", Name: "Cauliflower", Description: "White fresh cauliflower", Emoji: "🥬", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(30)},
	{ID: "spinach", Name: "Spinach", Description: "Green leafy spinach", Emoji: "🥬", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(25)},
	{ID: "beans", Name: "Beans", Description: "Fresh green beans", Emoji: "🫛", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(35)},
	{ID: "peas", Name: "Peas", Description: "Sweet green peas", Emoji: "🟢", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(40)},
	{ID: "cabbage", Name: "Cabbage", Description: "Fresh cabbage head", Emoji: "🥬", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(18)},
	{ID: "chillies", Name: "Chillies", Description: "Hot green chillies", Emoji: "🌶️", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(30)},
	{ID: "brinjal", Name: "Brinjal", Description: "Purple fresh brinjal", Emoji: "🍆", Category: enums.ProductCategoryVegetables, Unit: "kg", MRP: rupees(28)},

	// Dairy
	{ID: "milk", Name: "Milk", Description: "Pure cow milk", Emoji: "🥛", Category: enums.ProductCategoryDairyProducts, Unit: "litre", MRP: rupees(45)},
	{ID: "eggs", Name: "Eggs", Description: "Organic farm eggs", Emoji: "🥚", Category: enums.ProductCategoryDairyProducts, Unit: "dozen", MRP: rupees(60)},

	// Spices and oils
	{ID: "ghee", Name: "Ghee", Description: "Pure clarified butter", Emoji: "🧈", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(250)},
	{ID: "oil", Name: "Cooking Oil", Description: "Premium cooking oil", Emoji: "🫒", Category: enums.ProductCategorySpicesAndOils, Unit: "litre", MRP: rupees(120)},
	{ID: "red_spice", Name: "Red Chilli Powder", Description: "Hot and spicy red chili powder", Emoji: "🌶️", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(70)},
	{ID: "coriander_powder", Name: "Coriander Powder", Description: "Fresh coriander powder", Emoji: "🌿", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(55)},
	{ID: "turmeric_powder", Name: "Turmeric Powder", Description: "Pure turmeric powder", Emoji: "🟡", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(80)},
	{ID: "garam_masala", Name: "Garam Masala", Description: "Aromatic garam masala", Emoji: "🌶️", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(90)},
	{ID: "cumin_seeds", Name: "Cumin Seeds", Description: "Whole cumin seeds", Emoji: "🟤", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(120)},
	{ID: "black_pepper", Name: "Black Pepper", Description: "Ground black pepper", Emoji: "⚫", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(200)},
	{ID: "mustard_seeds", Name: "Mustard Seeds", Description: "Black mustard seeds", Emoji: "🟤", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(85)},
	{ID: "fenugreek", Name: "Fenugreek", Description: "Dried fenugreek leaves", Emoji: "🌿", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(65)},
	{ID: "asafoetida", Name: "Asafoetida", Description: "Pure asafoetida powder", Emoji: "🟡", Category: enums.ProductCategorySpicesAndOils, Unit: "kg", MRP: rupees(300)},

	// Meat and poultry
	{ID: "chicken", Name: "Chicken", Description: "Fresh chicken meat", Emoji: "🍗", Category: enums.ProductCategoryMeatAndPoultry, Unit: "kg", MRP: rupees(180)},
	{ID: "mutton", Name: "Mutton", Description: "Fresh mutton meat", Emoji: "🥩", Category: enums.ProductCategoryMeatAndPoultry, Unit: "kg", MRP: rupees(450)},
	{ID: "fish", Name: "Fish", Description: "Fresh fish fillets", Emoji: "🐟", Category: enums.ProductCategoryMeatAndPoultry, Unit: "kg", MRP: rupees(250)},
	{ID: "prawns", Name: "Prawns", Description: "Fresh tiger prawns", Emoji: "🦐", Category: enums.ProductCategoryMeatAndPoultry, Unit: "kg", MRP: rupees(400)},

	// Others
	{ID: "apples", Name: "Apples", Description: "Best quality, fresh apples", Emoji: "🍎", Category: enums.ProductCategoryOthers, Unit: "kg", MRP: rupees(85)},
	{ID: "broccoli", Name: "Broccoli", Description: "Crisp green broccoli bunch", Emoji: "🥦", Category: enums.ProductCategoryOthers, Unit: "kg", MRP: rupees(90)},
	{ID: "rice", Name: "Basmati Rice", Description: "Premium basmati rice", Emoji: "🍚", Category: enums.ProductCategoryOthers, Unit: "kg", MRP: rupees(120)},
	{ID: "bread", Name: "Bread", Description: "Freshly baked bread", Emoji: "🍞", Category: enums.ProductCategoryOthers, Unit: "loaf", MRP: rupees(30)},
	{ID: "noodles", Name: "Noodles", Description: "Instant noodles pack", Emoji: "🍜", Category: enums.ProductCategoryOthers, Unit: "pack", MRP: rupees(40)},
	{ID: "momos", Name: "Momos", Description: "Steamed vegetable momos", Emoji: "🥟", Category: enums.ProductCategoryOthers, Unit: "pack", MRP: rupees(150)},
}

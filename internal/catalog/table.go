package catalog

import "github.com/dmfuentes/smartcart-backend/pkg/enums"

// tableEntry is one curated canonical product. The table is read-only
// configuration: updates ship as a new build, never hot-patched.
type tableEntry struct {
	category      enums.Category
	subcategory   string
	aisle         string
	section       string
	unit          enums.Unit
	confidence    float64
	refPriceCents int64
}

var canonicalTable = map[string]tableEntry{
	// Produce
	"banana":       {enums.CategoryProduce, "Fruit", "Aisle 1", "Fresh Produce", enums.UnitLB, 0.98, 69},
	"apple":        {enums.CategoryProduce, "Fruit", "Aisle 1", "Fresh Produce", enums.UnitLB, 0.98, 179},
	"orange":       {enums.CategoryProduce, "Fruit", "Aisle 1", "Fresh Produce", enums.UnitLB, 0.96, 139},
	"grapes":       {enums.CategoryProduce, "Fruit", "Aisle 1", "Fresh Produce", enums.UnitLB, 0.95, 289},
	"strawberries": {enums.CategoryProduce, "Fruit", "Aisle 1", "Fresh Produce", enums.UnitCount, 0.95, 399},
	"avocado":      {enums.CategoryProduce, "Fruit", "Aisle 1", "Fresh Produce", enums.UnitCount, 0.95, 129},
	"tomato":       {enums.CategoryProduce, "Vegetable", "Aisle 1", "Fresh Produce", enums.UnitLB, 0.96, 249},
	"potato":       {enums.CategoryProduce, "Vegetable", "Aisle 1", "Fresh Produce", enums.UnitLB, 0.96, 99},
	"onion":        {enums.CategoryProduce, "Vegetable", "Aisle 1", "Fresh Produce", enums.UnitLB, 0.95, 119},
	"carrot":       {enums.CategoryProduce, "Vegetable", "Aisle 1", "Fresh Produce", enums.UnitLB, 0.94, 109},
	"lettuce":      {enums.CategoryProduce, "Vegetable", "Aisle 1", "Fresh Produce", enums.UnitCount, 0.94, 199},
	"spinach":      {enums.CategoryProduce, "Vegetable", "Aisle 1", "Fresh Produce", enums.UnitOZ, 0.93, 249},
	"broccoli":     {enums.CategoryProduce, "Vegetable", "Aisle 1", "Fresh Produce", enums.UnitLB, 0.93, 199},

	// Dairy & Eggs
	"milk":           {enums.CategoryDairyEggs, "Milk", "Aisle 12", "Dairy Wall", enums.UnitGallon, 0.98, 389},
	"eggs":           {enums.CategoryDairyEggs, "Eggs", "Aisle 12", "Dairy Wall", enums.UnitDozen, 0.98, 329},
	"butter":         {enums.CategoryDairyEggs, "Butter", "Aisle 12", "Dairy Wall", enums.UnitCount, 0.96, 449},
	"cheese":         {enums.CategoryDairyEggs, "Cheese", "Aisle 12", "Dairy Wall", enums.UnitOZ, 0.95, 379},
	"yogurt":         {enums.CategoryDairyEggs, "Yogurt", "Aisle 12", "Dairy Wall", enums.UnitCount, 0.95, 119},
	"cream cheese":   {enums.CategoryDairyEggs, "Cheese", "Aisle 12", "Dairy Wall", enums.UnitCount, 0.93, 279},
	"sour cream":     {enums.CategoryDairyEggs, "Cream", "Aisle 12", "Dairy Wall", enums.UnitCount, 0.92, 229},
	"orange juice":   {enums.CategoryDairyEggs, "Juice", "Aisle 12", "Dairy Wall", enums.UnitQuart, 0.9, 349},
	"half and half":  {enums.CategoryDairyEggs, "Cream", "Aisle 12", "Dairy Wall", enums.UnitQuart, 0.88, 299},
	"cottage cheese": {enums.CategoryDairyEggs, "Cheese", "Aisle 12", "Dairy Wall", enums.UnitCount, 0.88, 289},

	// Meat & Seafood
	"chicken":       {enums.CategoryMeatSeafood, "Poultry", "Aisle 14", "Butcher Counter", enums.UnitLB, 0.97, 449},
	"ground beef":   {enums.CategoryMeatSeafood, "Beef", "Aisle 14", "Butcher Counter", enums.UnitLB, 0.97, 549},
	"ground turkey": {enums.CategoryMeatSeafood, "Poultry", "Aisle 14", "Butcher Counter", enums.UnitLB, 0.94, 499},
	"bacon":         {enums.CategoryMeatSeafood, "Pork", "Aisle 14", "Butcher Counter", enums.UnitCount, 0.95, 649},
	"salmon":        {enums.CategoryMeatSeafood, "Seafood", "Aisle 14", "Seafood Counter", enums.UnitLB, 0.95, 1099},
	"shrimp":        {enums.CategoryMeatSeafood, "Seafood", "Aisle 14", "Seafood Counter", enums.UnitLB, 0.93, 899},
	"steak":         {enums.CategoryMeatSeafood, "Beef", "Aisle 14", "Butcher Counter", enums.UnitLB, 0.92, 1299},
	"pork chops":    {enums.CategoryMeatSeafood, "Pork", "Aisle 14", "Butcher Counter", enums.UnitLB, 0.9, 499},

	// Pantry & Canned Goods
	"rice":          {enums.CategoryPantryCanned, "Grains", "Aisle 5", "Dry Goods", enums.UnitLB, 0.95, 299},
	"pasta":         {enums.CategoryPantryCanned, "Grains", "Aisle 5", "Dry Goods", enums.UnitCount, 0.95, 149},
	"cereal":        {enums.CategoryPantryCanned, "Breakfast", "Aisle 6", "Dry Goods", enums.UnitCount, 0.94, 429},
	"peanut butter": {enums.CategoryPantryCanned, "Spreads", "Aisle 5", "Dry Goods", enums.UnitCount, 0.93, 349},
	"olive oil":     {enums.CategoryPantryCanned, "Oils", "Aisle 5", "Dry Goods", enums.UnitCount, 0.92, 799},
	"canned beans":  {enums.CategoryPantryCanned, "Canned", "Aisle 4", "Canned Goods", enums.UnitCount, 0.9, 119},
	"tomato soup":   {enums.CategoryPantryCanned, "Canned", "Aisle 4", "Canned Goods", enums.UnitCount, 0.88, 169},
	"flour":         {enums.CategoryPantryCanned, "Baking", "Aisle 6", "Dry Goods", enums.UnitLB, 0.9, 249},
	"sugar":         {enums.CategoryPantryCanned, "Baking", "Aisle 6", "Dry Goods", enums.UnitLB, 0.9, 279},
	"coffee":        {enums.CategoryPantryCanned, "Beverages", "Aisle 7", "Dry Goods", enums.UnitCount, 0.92, 899},

	// Frozen Foods
	"ice cream":        {enums.CategoryFrozen, "Desserts", "Aisle 16", "Frozen Wall", enums.UnitCount, 0.94, 499},
	"frozen pizza":     {enums.CategoryFrozen, "Meals", "Aisle 16", "Frozen Wall", enums.UnitCount, 0.92, 649},
	"frozen broccoli":  {enums.CategoryFrozen, "Vegetables", "Aisle 16", "Frozen Wall", enums.UnitCount, 0.88, 199},
	"frozen chicken":   {enums.CategoryFrozen, "Meat", "Aisle 16", "Frozen Wall", enums.UnitLB, 0.85, 599},
	"frozen waffles":   {enums.CategoryFrozen, "Breakfast", "Aisle 16", "Frozen Wall", enums.UnitCount, 0.85, 329},
	"frozen blueberries": {enums.CategoryFrozen, "Fruit", "Aisle 16", "Frozen Wall", enums.UnitCount, 0.85, 399},

	// Bakery & Bread
	"bread":     {enums.CategoryBakery, "Bread", "Aisle 8", "Bakery", enums.UnitCount, 0.97, 289},
	"bagels":    {enums.CategoryBakery, "Bread", "Aisle 8", "Bakery", enums.UnitPack, 0.94, 399},
	"tortillas": {enums.CategoryBakery, "Bread", "Aisle 8", "Bakery", enums.UnitPack, 0.92, 329},
	"muffins":   {enums.CategoryBakery, "Pastry", "Aisle 8", "Bakery", enums.UnitPack, 0.88, 499},

	// Personal Care
	"toothpaste": {enums.CategoryPersonalCare, "Oral Care", "Aisle 10", "Health & Beauty", enums.UnitCount, 0.95, 329},
	"shampoo":    {enums.CategoryPersonalCare, "Hair Care", "Aisle 10", "Health & Beauty", enums.UnitCount, 0.95, 549},
	"deodorant":  {enums.CategoryPersonalCare, "Hygiene", "Aisle 10", "Health & Beauty", enums.UnitCount, 0.93, 449},
	"soap":       {enums.CategoryPersonalCare, "Hygiene", "Aisle 10", "Health & Beauty", enums.UnitPack, 0.9, 399},

	// Household Items
	"paper towels":      {enums.CategoryHousehold, "Paper Goods", "Aisle 11", "Household", enums.UnitPack, 0.96, 899},
	"toilet paper":      {enums.CategoryHousehold, "Paper Goods", "Aisle 11", "Household", enums.UnitPack, 0.96, 1099},
	"dish soap":         {enums.CategoryHousehold, "Cleaning", "Aisle 11", "Household", enums.UnitCount, 0.93, 349},
	"laundry detergent": {enums.CategoryHousehold, "Cleaning", "Aisle 11", "Household", enums.UnitCount, 0.93, 1299},
	"trash bags":        {enums.CategoryHousehold, "Supplies", "Aisle 11", "Household", enums.UnitPack, 0.9, 799},
	"napkins":           {enums.CategoryHousehold, "Paper Goods", "Aisle 11", "Household", enums.UnitPack, 0.85, 299},
}

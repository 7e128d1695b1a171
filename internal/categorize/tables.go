package categorize

// CategoryUncategorized is returned when no keyword table matches.
const CategoryUncategorized = "Uncategorized"

// Categories returns the keyword vocabulary in evaluation order, without
// the Uncategorized sentinel.
func Categories() []string {
	tables := defaultTables()
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.Category)
	}
	return names
}

// keywordTable pairs a category with the ordered substrings that select it.
type keywordTable struct {
	Category string
	Keywords []string
}

// defaultTables returns the keyword tables in their declared evaluation
// order. The order is part of the contract: the first category with a
// matching keyword wins.
func defaultTables() []keywordTable {
	return []keywordTable{
		{
			Category: "Dining",
			Keywords: []string{
				"starbucks", "mcdonald", "tim hortons", "restaurant", "cafe",
				"coffee", "pizza", "burger", "sushi", "diner", "grill",
				"bakery", "doordash", "ubereats", "uber eats", "grubhub",
				"bar ", "pub ",
			},
		},
		{
			Category: "Groceries",
			Keywords: []string{
				"walmart", "costco", "safeway", "kroger", "aldi", "trader joe",
				"whole foods", "grocery", "supermarket", "market", "food basics",
				"no frills", "loblaws", "superstore",
			},
		},
		{
			Category: "Transport",
			Keywords: []string{
				"uber", "lyft", "taxi", "transit", "metro", "subway", "bus ",
				"train", "gas", "petrol", "shell", "chevron", "esso", "parking",
				"toll",
			},
		},
		{
			Category: "Utilities",
			Keywords: []string{
				"electric", "hydro", "water", "internet", "wireless", "phone",
				"mobile", "utility", "cable", "broadband", "energy", "telus",
				"rogers", "bell", "at&t", "verizon", "comcast",
			},
		},
		{
			Category: "Rent",
			Keywords: []string{
				"rent", "landlord", "lease", "property management", "apartment",
				"mortgage",
			},
		},
		{
			Category: "Income",
			Keywords: []string{
				"salary", "payroll", "deposit", "direct dep", "pay ", "income",
				"refund", "dividend", "interest", "bonus", "commission",
			},
		},
		{
			Category: "Shopping",
			Keywords: []string{
				"amazon", "target", "best buy", "ebay", "etsy", "ikea", "mall",
				"clothing", "apparel", "shoes", "electronics", "outlet",
			},
		},
		{
			Category: "Healthcare",
			Keywords: []string{
				"pharmacy", "drug", "clinic", "hospital", "dental", "dentist",
				"doctor", "medical", "optical", "shoppers drug mart", "cvs",
				"walgreens",
			},
		},
		{
			Category: "Entertainment",
			Keywords: []string{
				"netflix", "spotify", "cinema", "movie", "theatre", "theater",
				"concert", "game", "steam", "playstation", "xbox", "disney",
				"hulu", "prime video",
			},
		},
	}
}

package constants

import (
	"strings"
)

type Category string

const (
	Food          Category = "Food"
	Groceries     Category = "Groceries"
	Shopping      Category = "Shopping"
	Transport     Category = "Transport"
	Bills         Category = "Bills"
	Entertainment Category = "Entertainment"
	Health        Category = "Health"
	Travel        Category = "Travel"
	Education     Category = "Education"
	Transfer      Category = "Transfer"
	Income        Category = "Income"
	Uncategorized Category = "Uncategorized"
)

// CategoryOrder is the fixed ordering used by keyword matching; the first
// category with a keyword hit wins, so reordering this slice changes results.
var CategoryOrder = []Category{
	Food,
	Groceries,
	Shopping,
	Transport,
	Bills,
	Entertainment,
	Health,
	Travel,
	Education,
	Transfer,
	Income,
}

// CategoryKeywords maps each category to the lowercase tokens scanned
// against the merchant name and the raw message body.
var CategoryKeywords = map[Category][]string{
	Food:          {"swiggy", "zomato", "restaurant", "cafe", "pizza", "burger", "dominos", "kfc", "mcdonald", "eatery", "dhaba", "biryani"},
	Groceries:     {"bigbasket", "blinkit", "zepto", "grofers", "dmart", "grocery", "kirana", "supermarket"},
	Shopping:      {"amazon", "flipkart", "myntra", "ajio", "mall", "store", "retail", "nykaa"},
	Transport:     {"uber", "ola", "rapido", "metro", "irctc", "fuel", "petrol", "diesel", "fastag", "parking", "cab"},
	Bills:         {"electricity", "recharge", "broadband", "airtel", "jio", "postpaid", "dth", "gas bill", "water bill", "bill payment", "insurance premium"},
	Entertainment: {"netflix", "hotstar", "spotify", "prime video", "bookmyshow", "cinema", "pvr", "inox", "gaming"},
	Health:        {"pharmacy", "apollo", "hospital", "clinic", "medical", "medplus", "pharmeasy", "1mg", "diagnostic"},
	Travel:        {"makemytrip", "goibibo", "oyo", "airlines", "indigo", "vistara", "hotel", "booking.com", "cleartrip", "flight"},
	Education:     {"school", "college", "university", "udemy", "coursera", "tuition"},
	Transfer:      {"neft", "imps", "rtgs", "self transfer", "own account"},
	Income:        {"salary", "interest credited", "dividend", "refund", "cashback credited"},
}

var allCategories = append(append([]Category{}, CategoryOrder...), Uncategorized)

func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form user input onto a known category. The second
// return reports whether the input resolved to anything other than the
// fallback.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Uncategorized, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"dining":        Food,
		"eating out":    Food,
		"restaurants":   Food,
		"grocery":       Groceries,
		"commute":       Transport,
		"utilities":     Bills,
		"utility":       Bills,
		"medical":       Health,
		"medicine":      Health,
		"movies":        Entertainment,
		"ott":           Entertainment,
		"vacation":      Travel,
		"holiday":       Travel,
		"uncategorised": Uncategorized,
		"other":         Uncategorized,
		"others":        Uncategorized,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Uncategorized, false
}

package backend

import (
	"strings"

	"expense-client/internal/models"
)

type merchantPattern struct {
	category   string
	confidence float64
}

// Categorizer assigns display categories by merchant keyword, with a fuzzy
// fallback for misspelt names
type Categorizer struct {
	patterns map[string]merchantPattern
}

func NewCategorizer() CategorizerInterface {
	return &Categorizer{patterns: initMerchantPatterns()}
}

// Categorize returns the category for merchant and a confidence in [0,1]
func (c *Categorizer) Categorize(merchant string) (string, float64) {
	if strings.TrimSpace(merchant) == "" {
		return models.CategoryOther, 0
	}

	normalized := normalizeForMatching(merchant)
	var best string
	for pattern := range c.patterns {
		// Longest keyword wins so "amazon prime" beats "amazon".
		if !strings.Contains(normalized, normalizeForMatching(pattern)) {
			continue
		}
		if len(pattern) > len(best) || (len(pattern) == len(best) && pattern < best) {
			best = pattern
		}
	}
	if best != "" {
		p := c.patterns[best]
		return p.category, p.confidence
	}

	match, score := c.fuzzyMatch(normalized)
	if match != "" {
		p := c.patterns[match]
		return p.category, score * p.confidence
	}
	return models.CategoryOther, 0
}

func (c *Categorizer) fuzzyMatch(normalized string) (string, float64) {
	var bestMatch string
	var bestScore float64

	for pattern := range c.patterns {
		score := calculateSimilarity(normalized, normalizeForMatching(pattern))
		if score > bestScore && score > 0.7 {
			bestScore = score
			bestMatch = pattern
		}
	}
	return bestMatch, bestScore
}

func initMerchantPatterns() map[string]merchantPattern {
	return map[string]merchantPattern{
		// Food
		"Swiggy":    {models.CategoryFood, 0.95},
		"Zomato":    {models.CategoryFood, 0.95},
		"Dominos":   {models.CategoryFood, 0.95},
		"McDonald":  {models.CategoryFood, 0.95},
		"Starbucks": {models.CategoryFood, 0.95},
		"KFC":       {models.CategoryFood, 0.90},
		"Cafe":      {models.CategoryFood, 0.70},
		"Pizza":     {models.CategoryFood, 0.80},

		// Groceries
		"BigBasket":      {models.CategoryGroceries, 0.95},
		"Blinkit":        {models.CategoryGroceries, 0.95},
		"Zepto":          {models.CategoryGroceries, 0.95},
		"DMart":          {models.CategoryGroceries, 0.95},
		"Reliance Fresh": {models.CategoryGroceries, 0.95},
		"Supermarket":    {models.CategoryGroceries, 0.80},

		// Transport
		"Uber":   {models.CategoryTransport, 0.95},
		"Ola":    {models.CategoryTransport, 0.85},
		"Rapido": {models.CategoryTransport, 0.95},
		"Metro":  {models.CategoryTransport, 0.80},
		"Petrol": {models.CategoryTransport, 0.85},
		"Fuel":   {models.CategoryTransport, 0.85},

		// Shopping
		"Amazon":   {models.CategoryShopping, 0.90},
		"Flipkart": {models.CategoryShopping, 0.95},
		"Myntra":   {models.CategoryShopping, 0.95},
		"Ajio":     {models.CategoryShopping, 0.95},
		"Nykaa":    {models.CategoryShopping, 0.90},

		// Entertainment
		"Netflix":      {models.CategoryEntertainment, 0.95},
		"Spotify":      {models.CategoryEntertainment, 0.95},
		"Amazon Prime": {models.CategoryEntertainment, 0.90},
		"Hotstar":      {models.CategoryEntertainment, 0.95},
		"BookMyShow":   {models.CategoryEntertainment, 0.95},
		"PVR":          {models.CategoryEntertainment, 0.90},

		// Bills
		"Airtel":      {models.CategoryBills, 0.90},
		"Jio":         {models.CategoryBills, 0.90},
		"Electricity": {models.CategoryBills, 0.90},
		"BESCOM":      {models.CategoryBills, 0.95},
		"Broadband":   {models.CategoryBills, 0.85},

		// Health
		"Apollo":    {models.CategoryHealth, 0.90},
		"PharmEasy": {models.CategoryHealth, 0.95},
		"1mg":       {models.CategoryHealth, 0.90},
		"Pharmacy":  {models.CategoryHealth, 0.85},
		"Hospital":  {models.CategoryHealth, 0.85},

		// Travel
		"IRCTC":      {models.CategoryTravel, 0.95},
		"MakeMyTrip": {models.CategoryTravel, 0.95},
		"IndiGo":     {models.CategoryTravel, 0.95},
		"Goibibo":    {models.CategoryTravel, 0.95},
		"Airbnb":     {models.CategoryTravel, 0.90},

		// Transfers
		"UPI":  {models.CategoryTransfers, 0.60},
		"NEFT": {models.CategoryTransfers, 0.70},
		"IMPS": {models.CategoryTransfers, 0.70},
	}
}

// calculateSimilarity scores two strings by Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	return 1.0 - float64(levenshteinDistance(s1, s2))/float64(maxLen)
}

func levenshteinDistance(s1, s2 string) int {
	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}

func normalizeForMatching(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "", "'", "", ".", "").Replace(s)
}

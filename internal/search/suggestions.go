package search

import "strings"

const maxSuggestions = 6

var popularQueries = []string{
	"budget laptop under R5000 with 4+ stars",
	"smartphone with excellent battery life under R7000",
	"gaming headset with noise cancellation",
	"4K monitor for home office",
	"wireless earbuds with long battery",
	"mechanical keyboard for gaming",
	"webcam for video calls",
	"tablet for digital art",
}

// Suggestions returns up to six popular queries containing partial, in list order
func Suggestions(partial string) []string {
	needle := strings.ToLower(partial)
	out := make([]string, 0, maxSuggestions)
	for _, s := range popularQueries {
		if !strings.Contains(strings.ToLower(s), needle) {
			continue
		}
		out = append(out, s)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

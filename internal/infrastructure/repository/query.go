package repository

import "strings"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a lower-cased LIKE pattern for a substring match.
// It pairs with ESCAPE '!' so user input cannot inject wildcards.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

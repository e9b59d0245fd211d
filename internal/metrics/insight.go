package metrics

// #region imports
import "strings"

// #endregion

// #region emergent-goals

// ExtractEmergentGoals scans a response for phrases where the agent expresses
// something it wants to pursue in its own words. Matches are returned in
// table order and feed the stance's emergent-goal list.
func ExtractEmergentGoals(response string) []string {
	lower := strings.ToLower(response)
	var found []string
	for _, p := range curiosityPhrases {
		if strings.Contains(lower, p) {
			found = append(found, p)
		}
	}
	return found
}

// #endregion

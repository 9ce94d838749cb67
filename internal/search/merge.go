package search

import "github.com/davidpaquet/claude-conversation-browser/internal/model"

// MergeResult is the combined outcome of the fuzzy and content paths.
type MergeResult struct {
	// Order is the deduplicated session list: title matches first in
	// fuzzy rank order, then content-only matches in collaborator order.
	Order []model.Session

	// Warmups holds the warmup partition regardless of query, for the
	// collapsed warmup affordance.
	Warmups []model.Session

	// Contexts maps a session ID to the first content match reported for
	// it, for excerpt display next to the session title.
	Contexts map[string]ContentMatch
}

// Merge combines fuzzy title results with content-search results into one
// ordered session list. Deduplication key is the session ID; the first
// occurrence wins, so a title match always outranks a content-only match.
// Warmup sessions never appear in the order. A content match whose session
// ID does not resolve against all is dropped.
func Merge(query string, fuzzyResults []model.Session, contentResults []ContentMatch, all []model.Session) MergeResult {
	var warmups, nonWarmups []model.Session
	byID := make(map[string]model.Session, len(all))
	for _, s := range all {
		byID[s.ID] = s
		if s.IsWarmup() {
			warmups = append(warmups, s)
		} else {
			nonWarmups = append(nonWarmups, s)
		}
	}

	if query == "" {
		return MergeResult{Order: nonWarmups, Warmups: warmups}
	}

	order := make([]model.Session, 0, len(fuzzyResults))
	seen := make(map[string]bool, len(fuzzyResults))
	for _, s := range fuzzyResults {
		if s.IsWarmup() || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		order = append(order, s)
	}

	contexts := make(map[string]ContentMatch)
	for _, cm := range contentResults {
		session, ok := byID[cm.SessionID]
		if !ok {
			// Session evicted between search and merge.
			continue
		}
		if session.IsWarmup() {
			continue
		}
		if _, have := contexts[cm.SessionID]; !have {
			contexts[cm.SessionID] = cm
		}
		if seen[cm.SessionID] {
			continue
		}
		seen[cm.SessionID] = true
		order = append(order, session)
	}

	return MergeResult{Order: order, Warmups: warmups, Contexts: contexts}
}

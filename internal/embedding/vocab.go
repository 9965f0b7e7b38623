package embedding

// Dim is the dimensionality of the reference vocabulary. Every embedding
// produced by a Model built on DefaultVocabulary has this length.
const Dim = 8

// DefaultVocabulary is the hand-authored token table the workspace ships
// with. Axes roughly follow food, travel, work, health, mood, social,
// family and rest signal strength.
func DefaultVocabulary() map[string][]float64 {
	return map[string][]float64{
		// Food & dining
		"food":      {0.9, 0.1, 0.05, 0.02, 0.4, 0.7, 0.1, 0.3},
		"dinner":    {0.85, 0.1, 0.05, 0.02, 0.3, 0.7, 0.1, 0.3},
		"lunch":     {0.85, 0.1, 0.05, 0.02, 0.3, 0.7, 0.1, 0.3},
		"breakfast": {0.85, 0.1, 0.05, 0.02, 0.3, 0.7, 0.1, 0.3},
		"snacks":    {0.8, 0.1, 0.05, 0.02, 0.3, 0.6, 0.1, 0.3},
		"coffee":    {0.7, 0.1, 0.05, 0.02, 0.3, 0.6, 0.1, 0.3},

		// Travel & transport
		"travel": {0.1, 0.8, 0.1, 0.2, 0.3, 0.2, 0.5, 0.4},
		"uber":   {0.1, 0.75, 0.1, 0.2, 0.3, 0.2, 0.5, 0.4},
		"taxi":   {0.1, 0.75, 0.1, 0.2, 0.3, 0.2, 0.5, 0.4},
		"flight": {0.1, 0.9, 0.1, 0.2, 0.3, 0.2, 0.5, 0.4},

		// Work & career
		"work":    {0.2, 0.1, 0.9, 0.6, 0.2, 0.3, 0.4, 0.3},
		"meeting": {0.2, 0.1, 0.85, 0.5, 0.2, 0.3, 0.4, 0.3},
		"project": {0.2, 0.1, 0.85, 0.5, 0.2, 0.3, 0.4, 0.3},
		"office":  {0.2, 0.1, 0.8, 0.5, 0.2, 0.3, 0.4, 0.3},

		// Health & fitness
		"health":   {0.3, 0.2, 0.3, 0.9, 0.2, 0.5, 0.1, 0.5},
		"fitness":  {0.05, 0.2, 0.1, 0.8, 0.2, 0.4, 0.1, 0.5},
		"gym":      {0.1, 0.2, 0.1, 0.85, 0.2, 0.4, 0.1, 0.5},
		"workout":  {0.1, 0.2, 0.1, 0.8, 0.2, 0.4, 0.1, 0.5},
		"run":      {0.1, 0.3, 0.1, 0.7, 0.2, 0.5, 0.2, 0.6},
		"exercise": {0.1, 0.2, 0.1, 0.8, 0.2, 0.4, 0.1, 0.5},

		// Mood & emotions
		"mood":     {0.1, 0.1, 0.1, 0.3, 0.9, 0.2, 0.1, 0.1},
		"happy":    {0.1, 0.1, 0.1, 0.3, 0.85, 0.2, 0.1, 0.1},
		"stressed": {0.1, 0.1, 0.1, 0.3, 0.8, 0.2, 0.1, 0.1},

		// Finance & money
		"finance":  {0.8, 0.3, 0.2, 0.1, 0.6, 0.4, 0.2, 0.1},
		"spending": {0.8, 0.1, 0.1, 0.1, 0.5, 0.3, 0.2, 0.1},
		"money":    {0.85, 0.1, 0.1, 0.1, 0.5, 0.3, 0.2, 0.1},
		"payment":  {0.8, 0.1, 0.1, 0.1, 0.5, 0.3, 0.2, 0.1},
		"amount":   {0.8, 0.1, 0.1, 0.1, 0.5, 0.3, 0.2, 0.1},

		// Family & social
		"family":     {0.2, 0.1, 0.3, 0.4, 0.1, 0.6, 0.8, 0.2},
		"friends":    {0.2, 0.1, 0.3, 0.4, 0.1, 0.7, 0.75, 0.2},
		"colleagues": {0.2, 0.2, 0.8, 0.1, 0.1, 0.3, 0.3, 0.4},

		// Study & learning
		"study":  {0.1, 0.2, 0.8, 0.3, 0.1, 0.3, 0.4, 0.7},
		"learn":  {0.1, 0.2, 0.75, 0.3, 0.1, 0.3, 0.4, 0.7},
		"course": {0.1, 0.2, 0.75, 0.3, 0.1, 0.3, 0.4, 0.7},

		// Rest & relaxation
		"rest":  {0.1, 0.1, 0.2, 0.6, 0.1, 0.2, 0.5, 0.8},
		"sleep": {0.1, 0.1, 0.2, 0.7, 0.1, 0.2, 0.5, 0.85},

		// Habits & routine
		"habits":  {0.3, 0.2, 0.4, 0.7, 0.5, 0.6, 0.3, 0.5},
		"routine": {0.3, 0.2, 0.4, 0.7, 0.5, 0.6, 0.3, 0.5},
		"daily":   {0.3, 0.2, 0.4, 0.6, 0.4, 0.5, 0.3, 0.5},
		"weekly":  {0.3, 0.2, 0.4, 0.6, 0.4, 0.5, 0.3, 0.5},

		// Analysis & summary terms, so questions about the data itself
		// land near every cluster.
		"summary":    {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"summarize":  {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"category":   {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"categories": {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"trend":      {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"forecast":   {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"week":       {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"month":      {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"last":       {0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4},
		"total":      {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"average":    {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"fastest":    {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"grew":       {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"growth":     {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"activity":   {0.4, 0.4, 0.6, 0.6, 0.4, 0.5, 0.4, 0.5},
	}
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "shall": {}, "can": {},
	"need": {}, "dare": {}, "ought": {}, "used": {}, "to": {}, "of": {},
	"in": {}, "for": {}, "on": {}, "with": {}, "at": {}, "by": {},
	"from": {}, "as": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "between": {},
	"and": {}, "but": {}, "or": {}, "nor": {}, "so": {}, "yet": {},
	"both": {}, "either": {}, "neither": {}, "not": {}, "only": {},
	"own": {}, "same": {}, "than": {}, "too": {}, "very": {}, "just": {},
	"also": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "me": {}, "my": {},
	"your": {}, "his": {}, "her": {}, "its": {}, "our": {}, "their": {},
	"you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"provide": {}, "give": {}, "show": {}, "tell": {}, "format": {},
	"structured": {}, "please": {},
}

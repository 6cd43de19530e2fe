package retrieval

// Topic biases scoring toward sections that mention its keywords whenever a
// question contains the topic label.
type Topic struct {
	Label    string   `yaml:"topic" json:"topic"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// DefaultTopics is the keyword table for the built-in sales strategy guide.
var DefaultTopics = []Topic{
	{Label: "customer segment", Keywords: []string{"customer", "segment", "market", "enterprise", "mid-market", "small business"}},
	{Label: "sales process", Keywords: []string{"sales", "process", "discovery", "solution", "proposal", "negotiation", "closing"}},
	{Label: "value proposition", Keywords: []string{"value", "competitive", "advantage", "support", "integration", "pricing"}},
	{Label: "account management", Keywords: []string{"account", "management", "review", "check-in", "problem", "growth"}},
	{Label: "best practices", Keywords: []string{"practice", "benefit", "value", "case study", "follow up"}},
	{Label: "revenue", Keywords: []string{"revenue", "growth", "target", "business", "expansion", "renewal", "deal"}},
}

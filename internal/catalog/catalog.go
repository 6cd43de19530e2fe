// Package catalog lists the demos offered by the service and how they are
// grouped for navigation.
package catalog

// Feature is a card on the landing page.
type Feature struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Href        string   `json:"href"`
	Items       []string `json:"items"`
}

// NavLink is a single navigation entry.
type NavLink struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// NavSection groups related links under a heading.
type NavSection struct {
	Title string    `json:"title"`
	Href  string    `json:"href"`
	Items []NavLink `json:"items"`
}

var features = []Feature{
	{
		Title:       "RAG (Retrieval Augmented Generation)",
		Description: "Enhance AI responses with real-time document retrieval and knowledge base integration.",
		Href:        "/ai-features/rag/document-qa",
		Items: []string{
			"Document Q&A - Ask questions about your documents",
			"Knowledge Base - Build and query your custom knowledge base",
		},
	},
	{
		Title:       "Function Calling",
		Description: "Convert natural language into structured function calls and database operations.",
		Href:        "/ai-features/function-calling",
		Items: []string{
			"Natural Language to SQL",
			"API Integration",
			"Database Operations",
		},
	},
	{
		Title:       "AI Agents",
		Description: "Autonomous AI agents that can plan and execute complex tasks.",
		Href:        "/ai-features/agents",
		Items: []string{
			"Task Planning and Execution",
			"Multi-Agent Collaboration",
			"Autonomous Problem Solving",
		},
	},
}

var nav = []NavSection{
	{
		Title: "RAG",
		Href:  "/ai-features/rag",
		Items: []NavLink{
			{Title: "Document Q&A", Href: "/ai-features/rag/document-qa"},
			{Title: "Knowledge Base", Href: "/ai-features/rag/knowledge-base"},
		},
	},
	{
		Title: "Function Calling",
		Href:  "/ai-features/function-calling",
		Items: []NavLink{
			{Title: "SQL Generation", Href: "/ai-features/function-calling/sql-demo"},
			{Title: "API Integration", Href: "/ai-features/function-calling/api-demo"},
		},
	},
	{
		Title: "AI Agents",
		Href:  "/ai-features/agents",
		Items: []NavLink{
			{Title: "Task Planning", Href: "/ai-features/agents/task-planning"},
			{Title: "Multi-Agent Chat", Href: "/ai-features/agents/multi-agent"},
		},
	},
}

// Features returns a copy of the landing page cards.
func Features() []Feature {
	out := make([]Feature, len(features))
	for i, f := range features {
		f.Items = append([]string(nil), f.Items...)
		out[i] = f
	}
	return out
}

// Nav returns a copy of the navigation tree.
func Nav() []NavSection {
	out := make([]NavSection, len(nav))
	for i, s := range nav {
		s.Items = append([]NavLink(nil), s.Items...)
		out[i] = s
	}
	return out
}

package qa

import (
	"github.com/dgallion1/aidemo/internal/corpus"
)

// ExampleQuestion is a suggested question with a short label.
type ExampleQuestion struct {
	Text        string `json:"text"`
	Description string `json:"description"`
}

// ExampleQuestions are suggested for the built-in document.
var ExampleQuestions = []ExampleQuestion{
	{Text: "What are the different customer segments and their characteristics?", Description: "Customer Segments"},
	{Text: "What are the key steps in the sales process?", Description: "Sales Process"},
	{Text: "What are our value propositions?", Description: "Value Proposition"},
	{Text: "What are the revenue targets and objectives?", Description: "Revenue Goals"},
}

// Guidelines describe the kinds of questions the document can answer.
var Guidelines = []string{
	"Ask about specific business strategies",
	"Questions about sales processes and approaches",
	"Inquire about customer segments and targeting",
	"Ask about revenue goals and metrics",
}

// SectionInfo summarizes one corpus section.
type SectionInfo struct {
	Index   int    `json:"index"`
	Heading string `json:"heading"`
	Text    string `json:"text"`
	Tokens  int    `json:"tokens"`
}

// Document describes the served corpus.
type Document struct {
	Title            string            `json:"title"`
	Text             string            `json:"text"`
	Sections         []SectionInfo     `json:"sections"`
	ExampleQuestions []ExampleQuestion `json:"example_questions"`
	Guidelines       []string          `json:"guidelines"`
}

// Document returns the corpus with its sections and usage hints.
func (s *Service) Document() Document {
	sections := s.corpus.Sections()
	infos := make([]SectionInfo, len(sections))
	for i, sec := range sections {
		infos[i] = SectionInfo{
			Index:   sec.Index,
			Heading: sec.Heading(),
			Text:    sec.Text,
			Tokens:  corpus.EstimateTokens(sec.Text),
		}
	}
	doc := Document{
		Title:    s.corpus.Title,
		Text:     s.corpus.Text,
		Sections: infos,
	}
	// The hints only describe the built-in document.
	if s.corpus.Text == corpus.SalesStrategy {
		doc.ExampleQuestions = append([]ExampleQuestion(nil), ExampleQuestions...)
		doc.Guidelines = append([]string(nil), Guidelines...)
	}
	return doc
}

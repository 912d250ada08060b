package usecase

import (
	"strings"
	"unicode"
)

// McqQuestion is a structured prompt offered to the user instead of free
// text; Type is "single" or "multiple".
type McqQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Type     string   `json:"type"`
}

// PromptDecision carries at most one of the two prompt kinds for a turn.
type PromptDecision struct {
	Mcq         *McqQuestion
	Suggestions []string
}

// The dialogue policy is an ordered rule table: first matching rule wins.
// turnIndex is the number of messages already stored in the conversation
// before the current user message was appended.
type promptRule struct {
	matches func(turnIndex int, lower string) bool
	mcq     McqQuestion
}

var promptRules = []promptRule{
	{
		matches: func(turnIndex int, _ string) bool { return turnIndex == 0 },
		mcq: McqQuestion{
			Question: "What areas interest you the most?",
			Options: []string{
				"Technology & Software",
				"Creative Arts & Design",
				"Business & Finance",
				"Healthcare & Medicine",
				"Education & Teaching",
				"Engineering",
			},
			Type: "multiple",
		},
	},
	{
		matches: func(turnIndex int, lower string) bool {
			return turnIndex == 2 && matchesAny(lower, "tech", "software", "data", "ai")
		},
		mcq: McqQuestion{
			Question: "What's your current experience level?",
			Options: []string{
				"Complete Beginner",
				"Some Basic Knowledge",
				"Intermediate (1-2 years)",
				"Advanced (3+ years)",
			},
			Type: "single",
		},
	},
	{
		matches: func(turnIndex int, lower string) bool {
			return turnIndex == 4 && matchesAny(lower, "roadmap")
		},
		mcq: McqQuestion{
			Question: "How much time can you dedicate to learning per week?",
			Options: []string{
				"1-5 hours",
				"5-10 hours",
				"10-20 hours",
				"20+ hours (Full-time)",
			},
			Type: "single",
		},
	},
	{
		matches: func(_ int, lower string) bool { return matchesAny(lower, "skill", "learn") },
		mcq: McqQuestion{
			Question: "Which skills would you like to focus on?",
			Options: []string{
				"Technical/Hard Skills",
				"Soft Skills (Communication, Leadership)",
				"Industry-Specific Knowledge",
				"Project Management",
				"All of the above",
			},
			Type: "multiple",
		},
	},
}

var suggestionRules = []struct {
	keywords []string
	options  []string
}{
	{
		keywords: []string{"career", "job", "profession", "what should i"},
		options: []string{
			"Tell me about tech careers",
			"Show creative career paths",
			"Explore business careers",
		},
	},
	{
		keywords: []string{"skill", "learn", "study"},
		options: []string{
			"Create a learning roadmap",
			"What skills are in-demand?",
			"How long does it take?",
		},
	},
	{
		keywords: []string{"roadmap", "path", "steps"},
		options: []string{
			"Generate a detailed roadmap",
			"Show me example projects",
			"Recommend learning resources",
		},
	},
}

var defaultSuggestions = []string{
	"Explore career options",
	"Build a skills roadmap",
	"Ask about specific careers",
}

// DecidePrompt evaluates the rule table top to bottom and emits exactly
// one of: a structured MCQ, a suggestion list, or neither. The suggestion
// branch is only consulted when no MCQ fired and the conversation is
// still young (turnIndex <= 2).
func DecidePrompt(turnIndex int, message string) PromptDecision {
	lower := strings.ToLower(message)

	for _, rule := range promptRules {
		if rule.matches(turnIndex, lower) {
			mcq := rule.mcq
			return PromptDecision{Mcq: &mcq}
		}
	}

	if turnIndex > 2 {
		return PromptDecision{}
	}
	for _, rule := range suggestionRules {
		if matchesAny(lower, rule.keywords...) {
			return PromptDecision{Suggestions: rule.options}
		}
	}
	return PromptDecision{Suggestions: defaultSuggestions}
}

// matchesAny reports whether any keyword occurs in the lowercased
// message. Single-word keywords must start a word, so "skill" still fires
// on "skills" but "ai" does not fire mid-word on "painting"; multi-word
// keywords match as plain substrings.
func matchesAny(lower string, keywords ...string) bool {
	var words []string
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		if words == nil {
			words = strings.FieldsFunc(lower, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
		}
		for _, w := range words {
			if strings.HasPrefix(w, kw) {
				return true
			}
		}
	}
	return false
}

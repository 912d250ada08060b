package usecase

import "testing"

func TestDecidePromptFirstTurnAlwaysAsksInterests(t *testing.T) {
	for _, message := range []string{"hi", "I want a roadmap", "skill building", ""} {
		d := DecidePrompt(0, message)
		if d.Mcq == nil {
			t.Fatalf("expected interests MCQ for first turn, message %q", message)
		}
		if d.Mcq.Question != "What areas interest you the most?" {
			t.Fatalf("unexpected question: %s", d.Mcq.Question)
		}
		if len(d.Mcq.Options) != 6 || d.Mcq.Type != "multiple" {
			t.Fatalf("unexpected MCQ shape: %+v", d.Mcq)
		}
		if d.Suggestions != nil {
			t.Fatalf("MCQ and suggestions must never both fire")
		}
	}
}

func TestDecidePromptExperienceLevelOnThirdTurn(t *testing.T) {
	d := DecidePrompt(2, "I love data and AI")
	if d.Mcq == nil {
		t.Fatal("expected experience-level MCQ")
	}
	if d.Mcq.Question != "What's your current experience level?" {
		t.Fatalf("unexpected question: %s", d.Mcq.Question)
	}
	if len(d.Mcq.Options) != 4 || d.Mcq.Type != "single" {
		t.Fatalf("unexpected MCQ shape: %+v", d.Mcq)
	}
}

func TestDecidePromptNoKeywordFallsToDefaultSuggestions(t *testing.T) {
	// "painting" must not trip the "ai" keyword mid-word.
	d := DecidePrompt(2, "I like painting")
	if d.Mcq != nil {
		t.Fatalf("no MCQ expected, got %+v", d.Mcq)
	}
	if len(d.Suggestions) != 3 || d.Suggestions[0] != "Explore career options" {
		t.Fatalf("expected default suggestions, got %v", d.Suggestions)
	}
}

func TestDecidePromptTimeBudgetOnFifthTurn(t *testing.T) {
	d := DecidePrompt(4, "Can you build me a roadmap?")
	if d.Mcq == nil || d.Mcq.Question != "How much time can you dedicate to learning per week?" {
		t.Fatalf("expected time-budget MCQ, got %+v", d.Mcq)
	}

	// Off the threshold turn with no keywords, nothing fires at all.
	d = DecidePrompt(3, "Can you build me a plan?")
	if d.Mcq != nil || d.Suggestions != nil {
		t.Fatalf("expected neither prompt kind at turn 3, got %+v", d)
	}
}

func TestDecidePromptSkillFocusAtAnyTurn(t *testing.T) {
	for _, turn := range []int{1, 3, 7} {
		d := DecidePrompt(turn, "which skills should I learn?")
		if d.Mcq == nil || d.Mcq.Question != "Which skills would you like to focus on?" {
			t.Fatalf("turn %d: expected skill-focus MCQ, got %+v", turn, d.Mcq)
		}
		if d.Mcq.Type != "multiple" || len(d.Mcq.Options) != 5 {
			t.Fatalf("unexpected MCQ shape: %+v", d.Mcq)
		}
	}
}

func TestDecidePromptFirstMatchWins(t *testing.T) {
	// Turn 0 outranks the keyword rules even when keywords are present.
	d := DecidePrompt(0, "what skills should I learn for a tech roadmap?")
	if d.Mcq == nil || d.Mcq.Question != "What areas interest you the most?" {
		t.Fatalf("expected first rule to win, got %+v", d.Mcq)
	}
}

func TestDecidePromptSuggestionsOnlyEarly(t *testing.T) {
	// Keyword suggestions fire while the conversation is young.
	d := DecidePrompt(1, "what career should I pick?")
	if d.Suggestions == nil || d.Suggestions[0] != "Tell me about tech careers" {
		t.Fatalf("expected career suggestions, got %v", d.Suggestions)
	}

	d = DecidePrompt(1, "show me the path and steps")
	if d.Suggestions == nil || d.Suggestions[0] != "Generate a detailed roadmap" {
		t.Fatalf("expected roadmap suggestions, got %v", d.Suggestions)
	}

	// Past turn 2 the suggestion branch is never consulted.
	d = DecidePrompt(3, "what career should I pick?")
	if d.Suggestions != nil {
		t.Fatalf("expected no suggestions past turn 2, got %v", d.Suggestions)
	}
}

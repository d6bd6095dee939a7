package lexicon

import "testing"

func TestIsGreetingExactMatch(t *testing.T) {
	if !IsGreeting("hi") {
		t.Fatal("expected 'hi' to be a greeting")
	}
	if !IsGreeting("  Good Morning  ") {
		t.Fatal("expected greeting match to be case-insensitive and trimmed")
	}
}

func TestIsGreetingRejectsEmbeddedPhrase(t *testing.T) {
	if IsGreeting("hi there, I need some help") {
		t.Fatal("greeting inside a longer sentence must not match")
	}
}

func TestIsFarewell(t *testing.T) {
	if !IsFarewell("bye") {
		t.Fatal("expected 'bye' to be a farewell")
	}
	if !IsFarewell("Thank You") {
		t.Fatal("expected farewell match to be case-insensitive")
	}
	if IsFarewell("goodbye cruel world") {
		t.Fatal("farewell inside a longer sentence must not match")
	}
}

func TestContainsMedicalTerm(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"I have a terrible Headache today", true},
		{"tell me about diabetes", true},
		{"my X-Ray results came back", true},
		{"what's the weather like", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ContainsMedicalTerm(tc.message); got != tc.want {
			t.Errorf("ContainsMedicalTerm(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

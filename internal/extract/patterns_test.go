package extract

import (
	"strings"
	"testing"
)

const sampleResume = `Maya Chen
maya.chen@example.edu | (555) 123-4567
GPA: 3.85

EDUCATION
Riverside High School

SKILLS
Python, JavaScript, Machine Learning, Leadership
`

func TestEmail(t *testing.T) {
	if got := Email(sampleResume); got != "maya.chen@example.edu" {
		t.Fatalf("Email = %q", got)
	}
	if got := Email("no contact info here"); got != "" {
		t.Fatalf("Email = %q, want empty", got)
	}
}

func TestPhone(t *testing.T) {
	if got := Phone(sampleResume); got != "(555) 123-4567" {
		t.Fatalf("Phone = %q", got)
	}
	if got := Phone("call me maybe"); got != "" {
		t.Fatalf("Phone = %q, want empty", got)
	}
}

func TestGPA(t *testing.T) {
	if got := GPA(sampleResume); got != "3.85" {
		t.Fatalf("GPA = %q", got)
	}
	if got := GPA("gpa: 3.6"); got != "3.6" {
		t.Fatalf("GPA case-insensitive = %q", got)
	}
	if got := GPA("no grades listed"); got != "" {
		t.Fatalf("GPA = %q, want empty", got)
	}
}

func TestSkills(t *testing.T) {
	got := Skills(sampleResume)
	// "JavaScript" also satisfies the "Java" keyword under substring scan.
	want := []string{"Python", "Java", "JavaScript", "Machine Learning", "Leadership"}
	if len(got) != len(want) {
		t.Fatalf("Skills = %v, want %v", got, want)
	}
	for i, skill := range want {
		if got[i] != skill {
			t.Fatalf("Skills[%d] = %q, want %q", i, got[i], skill)
		}
	}
}

func TestSkillsCapped(t *testing.T) {
	text := strings.Join(skillKeywords, ", ") + ", Python again"
	if got := Skills(text); len(got) > maxSkills {
		t.Fatalf("Skills returned %d entries, cap is %d", len(got), maxSkills)
	}
}

func TestNameGuess(t *testing.T) {
	if got := NameGuess(sampleResume); got != "Maya Chen" {
		t.Fatalf("NameGuess = %q", got)
	}
}

func TestNameGuessSkipsContactAndHeaderLines(t *testing.T) {
	text := "maya.chen@example.edu\nSoftware | Engineering\n• bullet\nJordan Avila\n"
	if got := NameGuess(text); got != "Jordan Avila" {
		t.Fatalf("NameGuess = %q", got)
	}
	if got := NameGuess(""); got != "" {
		t.Fatalf("NameGuess on empty = %q", got)
	}
}

func TestCleanText(t *testing.T) {
	in := "ﬁrst   line\t\r\n  a ﬂag\x00 here  \n\n next"
	got := CleanText(in)
	if strings.Contains(got, "\x00") {
		t.Fatal("NUL byte survived")
	}
	if !strings.Contains(got, "first line") {
		t.Fatalf("ligature not fixed: %q", got)
	}
	if !strings.Contains(got, "a flag here") {
		t.Fatalf("whitespace not collapsed: %q", got)
	}
}

package companion

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	_ "time/tzdata"
)

const exampleQuestionCount = 5

type PromptContext struct {
	UserName  string
	UserEmail string
	Timezone  string
	Language  string
	Mode      Mode
	Now       time.Time
	Rand      *rand.Rand
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// localTime renders now in the user's timezone; an unknown zone falls back to UTC.
func localTime(now time.Time, tz string) string {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return now.In(loc).Format("1/2/2006, 3:04:05 PM")
}

func BuildSystemPrompt(pc PromptContext) string {
	mode := pc.Mode
	if mode == "" {
		mode = DefaultMode
	}
	in := InstructionsFor(mode)
	name := orDefault(pc.UserName, "there")
	tz := orDefault(pc.Timezone, "UTC")
	now := pc.Now
	if now.IsZero() {
		now = time.Now()
	}

	var examples string
	if qs := SuggestedQuestions(mode, exampleQuestionCount, pc.Rand); len(qs) > 0 {
		lines := make([]string, len(qs))
		for i, q := range qs {
			lines[i] = "- " + q
		}
		examples = "\n**Example questions I can help with:**\n" + strings.Join(lines, "\n")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are Nachiketa, an empathetic AI wellness companion. You are having a conversation with %s (%s).\n\n",
		name, orDefault(pc.UserEmail, "user"))
	sb.WriteString("**User Context:**\n")
	fmt.Fprintf(&sb, "- Name: %s\n", name)
	fmt.Fprintf(&sb, "- Timezone: %s\n", tz)
	fmt.Fprintf(&sb, "- Language: %s\n", orDefault(pc.Language, "en"))
	fmt.Fprintf(&sb, "- Companion Mode: %s\n\n", mode)
	fmt.Fprintf(&sb, "**Your Role:**\n%s\n\n", in.Role)
	fmt.Fprintf(&sb, "**Specialized Focus:**\n%s\n\n", in.Focus)
	fmt.Fprintf(&sb, "**Training Context:**\nYou have been trained on hundreds of questions related to your specialty. Use this knowledge to provide expert, personalized responses.%s\n\n", examples)
	sb.WriteString("**Response Guidelines:**\n")
	for _, g := range []string{
		"Always address the user by name when appropriate",
		"Be empathetic, supportive, and encouraging",
		"Provide practical, actionable advice",
		"Consider their timezone for time-sensitive suggestions",
		"Keep responses conversational and warm",
		"Remember previous context in the conversation",
		"Suggest personalized strategies based on their needs",
		in.Guidelines,
		"Draw from your training to provide comprehensive, expert-level responses",
	} {
		fmt.Fprintf(&sb, "- %s\n", g)
	}
	fmt.Fprintf(&sb, "\n**Current Time:** %s\n\n", localTime(now, tz))
	sb.WriteString("Always respond with empathy, provide practical advice, and encourage positive changes. Keep responses conversational, supportive, and actionable.")
	return sb.String()
}

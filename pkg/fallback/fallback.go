// Package fallback produces the rule-based replies used when the generative
// backend cannot answer.
package fallback

import (
	"fmt"
	"strings"

	"manasfit-be/pkg/llm"
)

type Topic string

const (
	TopicSleep     Topic = "sleep"
	TopicStress    Topic = "stress"
	TopicExercise  Topic = "exercise"
	TopicNutrition Topic = "nutrition"
	TopicStudy     Topic = "study"
	TopicDefault   Topic = "default"
)

type Reply struct {
	Topic   Topic
	Content string
}

type bucket struct {
	topic    Topic
	keywords []string
	body     string
}

// Buckets are checked in order; the first keyword hit wins.
var buckets = []bucket{
	{
		topic:    TopicSleep,
		keywords: []string{"sleep", "tired", "insomnia"},
		body: `I understand you're having sleep concerns. Here are some gentle suggestions:

🌙 **Sleep Hygiene Tips:**
• Try to go to bed and wake up at the same time daily
• Create a relaxing bedtime routine (reading, gentle music, meditation)
• Keep your bedroom cool, dark, and quiet
• Avoid screens 1 hour before bed
• Limit caffeine after 2 PM

💤 **Quick Relaxation:**
Try the 4-7-8 breathing technique: Inhale for 4, hold for 7, exhale for 8. Repeat 4 times.

Remember, good sleep is essential for your mental and physical health. If sleep issues persist, consider speaking with a healthcare provider.`,
	},
	{
		topic:    TopicStress,
		keywords: []string{"stress", "anxious", "worried"},
		body: `I hear that you're feeling stressed, and that's completely valid. Here are some gentle ways to help:

🧘 **Immediate Relief:**
• Take 5 deep breaths, counting to 4 on each inhale and exhale
• Try the 5-4-3-2-1 grounding technique: Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste

💪 **Stress Management:**
• Break large tasks into smaller, manageable steps
• Practice mindfulness or meditation for just 5 minutes daily
• Regular physical activity, even a short walk, can help
• Talk to someone you trust about what's on your mind

Remember, it's okay to feel stressed sometimes. You're doing your best, and that's enough.`,
	},
	{
		topic:    TopicExercise,
		keywords: []string{"exercise", "workout", "fitness"},
		body: `Great that you're thinking about physical activity! Here are some gentle suggestions:

🏃 **Easy Ways to Move:**
• Take a 10-minute walk around your neighborhood
• Try gentle stretching or yoga
• Dance to your favorite music for 5 minutes
• Take the stairs instead of elevators when possible
• Do simple bodyweight exercises like squats or push-ups

💡 **Remember:**
• Start small and gradually increase
• Find activities you enjoy - it's more sustainable
• Even 10 minutes of movement can boost your mood
• Listen to your body and rest when needed

Every bit of movement counts toward your wellness journey!`,
	},
	{
		topic:    TopicNutrition,
		keywords: []string{"eat", "food", "nutrition", "meal"},
		body: `I'm glad you're thinking about nutrition! Here are some gentle, balanced suggestions:

🥗 **Simple Nutrition Tips:**
• Aim for colorful fruits and vegetables (try to "eat the rainbow")
• Include lean proteins like chicken, fish, beans, or tofu
• Choose whole grains when possible (brown rice, quinoa, whole wheat)
• Stay hydrated - aim for 6-8 glasses of water daily
• Don't skip meals - regular eating helps maintain energy

🍎 **Quick Healthy Snacks:**
• Apple slices with almond butter
• Greek yogurt with berries
• Hummus with carrot sticks
• A handful of nuts and dried fruit

Remember, healthy eating is about balance, not perfection. Small, consistent changes make a big difference!`,
	},
	{
		topic:    TopicStudy,
		keywords: []string{"study", "exam", "academic", "school"},
		body: `I understand the academic pressure you're feeling. Here are some strategies to help:

📚 **Study Tips:**
• Use the Pomodoro Technique: 25 minutes focused study, 5-minute break
• Create a dedicated study space free from distractions
• Break large topics into smaller, manageable chunks
• Use active recall techniques like flashcards or practice questions
• Get adequate sleep - your brain consolidates learning during rest

🧠 **Mental Wellness:**
• Take regular breaks to prevent burnout
• Stay connected with friends and family
• Practice self-compassion - you're doing your best
• Remember that grades don't define your worth
• Seek help from teachers or counselors if you're struggling

You've got this! Remember to be kind to yourself during this journey.`,
	},
}

const defaultBody = `Thank you for sharing that with me. I'm here to listen and support you on your wellness journey.

💙 **General Wellness Reminders:**
• Take things one day at a time
• Practice self-compassion - you're doing your best
• Small, consistent actions lead to big changes
• It's okay to ask for help when you need it
• Celebrate your progress, no matter how small

Is there a specific area of wellness you'd like to explore together? I'm here to help with sleep, stress management, exercise, nutrition, or just to listen.`

// Classify returns the topic bucket for the given user text.
func Classify(userText string) Topic {
	text := strings.ToLower(userText)
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(text, kw) {
				return b.topic
			}
		}
	}
	return TopicDefault
}

func body(topic Topic) string {
	for _, b := range buckets {
		if b.topic == topic {
			return b.body
		}
	}
	return defaultBody
}

// Select builds the empathetic reply for userText. The result only depends
// on the keywords present and the first name.
func Select(userText, firstName string) Reply {
	name := strings.TrimSpace(firstName)
	if name == "" {
		name = "there"
	}
	topic := Classify(userText)
	return Reply{
		Topic:   topic,
		Content: fmt.Sprintf("Hi %s! %s", name, body(topic)),
	}
}

// Technical is the degraded-mode explanation shown when the caller asks to
// surface the failure instead of an empathetic reply.
func Technical(reason llm.FailureReason) string {
	var sb strings.Builder
	sb.WriteString("I apologize, but I'm having trouble connecting right now. ")
	switch reason {
	case llm.ReasonConfiguration:
		sb.WriteString("There seems to be an issue with the AI service configuration. ")
	case llm.ReasonNetwork:
		sb.WriteString("There seems to be a network connectivity issue. ")
	case llm.ReasonTimeout:
		sb.WriteString("The request is taking longer than expected. ")
	}
	sb.WriteString("Please try again in a moment, or contact support if the issue persists.")
	return sb.String()
}

package companion

import "math/rand"

var questionBank = map[Mode][]string{
	ModeMentor: {
		"How can I improve my study habits for better academic performance?",
		"What's the best way to prepare for final exams?",
		"How do I manage my time effectively as a student?",
		"How can I stay motivated during long study sessions?",
		"How do I balance academics with extracurricular activities?",
		"How do I choose the right career path for me?",
		"What skills should I develop for my future career?",
		"How can I build a strong professional network?",
		"What are some effective goal-setting strategies?",
		"How do I build resilience and overcome setbacks?",
		"What's the Pomodoro Technique and how do I use it?",
		"How can I avoid procrastination while studying?",
		"How do I handle test anxiety?",
		"How do I handle academic pressure and competition?",
	},
	ModeBuddy: {
		"How was your day today?",
		"What's the most interesting thing that happened to you recently?",
		"Tell me about your favorite hobby or activity.",
		"What's your favorite way to relax after a long day?",
		"What's something that always makes you smile?",
		"I'm feeling a bit overwhelmed today, can we chat?",
		"I had a rough day at work/school, can you help me feel better?",
		"I'm feeling lonely and just need someone to talk to.",
		"I'm excited about something and want to share it with someone!",
		"I'm feeling anxious about an upcoming event.",
		"I'm proud of something I accomplished and want to celebrate.",
	},
	ModeFitnessTrainer: {
		"What's the best workout routine for beginners?",
		"How often should I exercise each week?",
		"What's the difference between cardio and strength training?",
		"What exercises can I do at home without equipment?",
		"What's the best way to warm up before exercise?",
		"How important is stretching after workouts?",
		"How do I prevent injuries while working out?",
		"What are the best exercises for building muscle?",
		"How many sets and reps should I do?",
		"What's progressive overload and why is it important?",
		"What should I eat before and after a workout?",
		"How much water should I drink each day?",
	},
	ModeSmartRouter: {
		"I'm feeling stressed about my upcoming exams, what should I do?",
		"I want to start working out but don't know where to begin.",
		"I'm having trouble sleeping lately, any suggestions?",
		"I need help with my career planning and job search.",
		"I'm feeling lonely and want someone to talk to.",
		"I'm looking for healthy meal ideas and nutrition advice.",
		"I'm struggling with time management and productivity.",
		"I want to learn more about mindfulness and meditation.",
		"I need help building self-confidence and self-worth.",
		"I'm having a mental health crisis and need resources.",
	},
}

// AllQuestions returns a copy of the question bank for m, or nil for modes
// without one.
func AllQuestions(m Mode) []string {
	qs := questionBank[m]
	if len(qs) == 0 {
		return nil
	}
	out := make([]string, len(qs))
	copy(out, qs)
	return out
}

// SuggestedQuestions returns up to n questions for m in random order.
// A nil rng uses the global source.
func SuggestedQuestions(m Mode, n int, rng *rand.Rand) []string {
	qs := AllQuestions(m)
	if qs == nil || n <= 0 {
		return []string{}
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	if n > len(qs) {
		n = len(qs)
	}
	return qs[:n]
}

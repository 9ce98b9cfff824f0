package prompts

import "strconv"

// Lang is a supported output language for the companion voice.
type Lang string

const (
	LangEnglish Lang = "en"
	LangHindi   Lang = "hi"
)

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool {
	return l == LangEnglish || l == LangHindi
}

// BuildPathPrompt composes the path-generation prompt from the learner
// profile, optional labour-market context, and the course catalog, all
// pre-serialized as JSON. consentToShare selects the identifier-handling
// rule interpolated into the template.
func BuildPathPrompt(profileJSON, labourMarketJSON, catalogJSON string, consentToShare bool) string {
	consentKey := "consent-denied"
	if consentToShare {
		consentKey = "consent-granted"
	}

	if labourMarketJSON == "" {
		labourMarketJSON = "(none provided)"
	}

	template := MustGet("path.json", "generate-learning-path")
	return Format(template, map[string]string{
		"ConsentRule":  MustGet("path.json", consentKey),
		"Profile":      profileJSON,
		"LabourMarket": labourMarketJSON,
		"Catalog":      catalogJSON,
	})
}

// BuildExplainPrompt composes the course-explanation prompt.
func BuildExplainPrompt(courseID, profileJSON, recommendationJSON string) string {
	template := MustGet("explain.json", "explain-course")
	return Format(template, map[string]string{
		"CourseID":       courseID,
		"Profile":        profileJSON,
		"Recommendation": recommendationJSON,
	})
}

// BuildSummaryPrompt composes the bilingual path-summarization prompt.
func BuildSummaryPrompt(learningPathJSON string) string {
	template := MustGet("summary.json", "summarize-path")
	return Format(template, map[string]string{
		"LearningPath": learningPathJSON,
	})
}

// BuildInterviewPrompt composes the next-utterance prompt for a mock
// interview: the behavioural system rules followed by the replayed
// history. questionCount is the number of interviewer turns so far, which
// the template uses to decide when to conclude.
func BuildInterviewPrompt(courseTitle, historyJSON string, questionCount int) string {
	system := Format(MustGet("interview.json", "system"), map[string]string{
		"CourseTitle": courseTitle,
	})
	turn := Format(MustGet("interview.json", "turn"), map[string]string{
		"CourseTitle":   courseTitle,
		"History":       historyJSON,
		"QuestionCount": strconv.Itoa(questionCount),
	})
	return system + "\n\n" + turn
}

// BuildConversationalPrompt composes the speech-conversion prompt that
// rewrites a summary into a first-person monologue in the given language.
func BuildConversationalPrompt(lang Lang, userName, summary string) string {
	langName := "English"
	if lang == LangHindi {
		langName = "Hindi"
	}

	template := MustGet("speech.json", "conversational")
	return Format(template, map[string]string{
		"UserName": userName,
		"Lang":     langName,
		"Summary":  summary,
	})
}

// FallbackGreeting returns the fixed templated greeting for a language,
// used when the conversational rewrite fails.
func FallbackGreeting(lang Lang, userName string) string {
	key := "fallback-en"
	if lang == LangHindi {
		key = "fallback-hi"
	}
	return Format(MustGet("speech.json", key), map[string]string{
		"UserName": userName,
	})
}

package constant

import "time"

const (
	// WelcomeMessage opens every new tutoring session.
	WelcomeMessage = "Hello! I'm your StudiQ AI tutor. How can I help you with your studies today?"

	// GeneratorFallbackResponse is returned when the generation API is not
	// configured or unreachable. The chat request still succeeds.
	GeneratorFallbackResponse = "I'm sorry, but the advanced AI model is not available right now. Please check the API key configuration or try again later."

	// SessionIdleTTL is how long a session may sit inactive before the
	// reaper removes it together with its files.
	SessionIdleTTL = 24 * time.Hour

	// AudioMaxAge is the independent cutoff for the audio-directory sweep.
	AudioMaxAge = 6 * time.Hour

	// AuditTopic is the in-process bus topic for audit events.
	AuditTopic = "SYSTEM_AUDIT"
)

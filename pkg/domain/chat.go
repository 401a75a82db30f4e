package domain

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

type ChatMessage struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// ChatGreeting seeds every new chat log.
const ChatGreeting = "Hi! I am GeoSick AI. How are you feeling today?"

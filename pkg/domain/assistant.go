package domain

// ChatFallbackReply is what Chat returns when the underlying service fails.
// Chat never surfaces an error to its caller; the apology string is the
// whole failure contract.
const ChatFallbackReply = "I'm having trouble connecting to the health network right now."

// ChatSystemInstruction steers the conversational assistant.
const ChatSystemInstruction = "You are GeoSick AI, a helpful health assistant. " +
	"Keep answers short, empathetic, and health-focused."

// AnalysisPrompt asks the vision model for a hazard report in the
// HazardReport JSON shape.
const AnalysisPrompt = `Analyze this image for potential health hazards.
Focus on: Pollution levels, stagnant water (mosquito risk), garbage, or allergens.
Return a concise JSON response with:
1. riskLevel (Low, Medium, High)
2. hazards (Array of strings detecting specific issues)
3. recommendation (One short sentence on what to do)`

// AnalysisFailedMessage is shown for both transport and decode failures;
// the two are deliberately not distinguished in the UI.
const AnalysisFailedMessage = "Failed to analyze image. Please try again or check API Key."

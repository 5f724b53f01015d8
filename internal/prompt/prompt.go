// internal/prompt/prompt.go
package prompt

import "fmt"

// CampaignInput is the brief for a marketing campaign generation.
type CampaignInput struct {
	Product  string `json:"product"`
	Industry string `json:"industry"`
	Cost     string `json:"cost"`
	Audience string `json:"audience"`
	Platform string `json:"platform"`
}

type PitchInput struct {
	Product  string `json:"product"`
	Customer string `json:"customer"`
}

type LeadInput struct {
	Name    string `json:"name"`
	Budget  string `json:"budget"`
	Need    string `json:"need"`
	Urgency string `json:"urgency"`
}

// Campaign builds the strict-JSON campaign brief. The key list must stay in
// sync with llm.GenerationResult and the generation schema.
func Campaign(in CampaignInput) string {
	return fmt.Sprintf(
		"Generate a detailed marketing campaign in STRICT JSON format. "+
			"Product: %s. "+
			"Industry: %s. "+
			"Product Cost: %s. "+
			"Target Audience: %s. "+
			"Platform: %s. "+
			"Task: Evaluate the success chance if we launch this product in the specified industry at this cost point. "+
			"The JSON MUST have these keys: "+
			"'success_probability' (integer 0-100), "+
			"'target_audience' (string summary), "+
			"'content' (string with campaign objectives, 5 content ideas, 3 ad copies, and CTAs).",
		in.Product, in.Industry, in.Cost, in.Audience, in.Platform,
	)
}

func Pitch(in PitchInput) string {
	return fmt.Sprintf(
		"Create a compelling AI sales pitch in STRICT JSON format. "+
			"Product: %s. "+
			"Customer Persona: %s. "+
			"The JSON MUST have these keys: "+
			"'success_probability' (integer 0-100), "+
			"'target_audience' (string summary of persona), "+
			"'content' (string with elevator pitch, value prop, differentiators, and CTA).",
		in.Product, in.Customer,
	)
}

func Lead(in LeadInput) string {
	return fmt.Sprintf(
		"Score this lead based on Budget, Need, and Urgency. "+
			"Lead Name: %s. Budget: %s. Need: %s. Urgency: %s. "+
			"You MUST return the output in STRICT JSON format with exactly three keys: "+
			"'score' (integer between 0 and 100), "+
			"'probability' (integer between 0 and 100 representing percentage), "+
			"and 'analysis' (string with detailed reasoning).",
		in.Name, in.Budget, in.Need, in.Urgency,
	)
}

// ChatSystem is the fixed system prompt for the assistant endpoint.
const ChatSystem = "You are MarketMind Assistant, a friendly and knowledgeable AI business advisor " +
	"embedded inside the MarketMind platform. MarketMind is an AI-powered Sales & " +
	"Marketing Intelligence platform that helps users:\n" +
	"1. Generate marketing campaigns (specify product, audience, platform)\n" +
	"2. Create personalized sales pitches (specify product, customer persona)\n" +
	"3. Score and qualify leads (based on budget, need, urgency)\n" +
	"4. View analytics dashboards with KPI cards and interactive charts\n\n" +
	"You help users with:\n" +
	"- Business strategy, marketing tips, and sales techniques\n" +
	"- Navigating and using the MarketMind app features\n" +
	"- Interpreting analytics data and lead scores\n" +
	"- General business advice and best practices\n\n" +
	"Keep responses concise (2-4 sentences unless detail is requested). " +
	"Be warm, professional, and actionable. Use emojis sparingly for friendliness."

// ChatGreeting is returned for an empty conversation without an upstream call.
const ChatGreeting = "Hi there! 👋 I'm your MarketMind Assistant. How can I help you today?"

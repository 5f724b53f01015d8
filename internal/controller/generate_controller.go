// internal/controller/generate_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/llm"
	"github.com/marketmind/marketmind-backend/internal/prompt"
	"github.com/marketmind/marketmind-backend/internal/service"
)

// GenerateController handles the three generation endpoints and the chatbot.
type GenerateController struct {
	Campaigns *service.CampaignService
	Pitches   *service.PitchService
	Leads     *service.LeadService
	Chat      *service.ChatService
	Logger    *zap.Logger
}

func (c *GenerateController) GenerateCampaign(w http.ResponseWriter, r *http.Request) {
	var body prompt.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if anyBlank(body.Product, body.Industry, body.Cost, body.Audience, body.Platform) {
		writeError(w, http.StatusBadRequest, "product, industry, cost, audience and platform are required")
		return
	}

	campaign, err := c.Campaigns.Generate(r.Context(), body, nil)
	if err != nil {
		c.Logger.Error("campaign generation failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"result": campaign})
}

func (c *GenerateController) GeneratePitch(w http.ResponseWriter, r *http.Request) {
	var body prompt.PitchInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if anyBlank(body.Product, body.Customer) {
		writeError(w, http.StatusBadRequest, "product and customer are required")
		return
	}

	pitch, err := c.Pitches.Generate(r.Context(), body, nil)
	if err != nil {
		c.Logger.Error("pitch generation failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"result": pitch})
}

func (c *GenerateController) ScoreLead(w http.ResponseWriter, r *http.Request) {
	var body prompt.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if anyBlank(body.Name, body.Budget, body.Need, body.Urgency) {
		writeError(w, http.StatusBadRequest, "name, budget, need and urgency are required")
		return
	}

	lead, err := c.Leads.Score(r.Context(), body, nil)
	if err != nil {
		c.Logger.Error("lead scoring failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"result": lead})
}

func (c *GenerateController) Chatbot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Messages []llm.Message `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := c.Chat.Reply(r.Context(), body.Messages)
	if err != nil {
		c.Logger.Error("chat reply failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func anyBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

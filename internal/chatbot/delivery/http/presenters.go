package http

import "finance-assistant/internal/chatbot"

// --- Request DTOs ---

// An empty message is accepted and answered by the generative fallback.
type answerReq struct {
	Message string `json:"message"`
}

func (r answerReq) validate() error { return nil }

func (r answerReq) toInput() chatbot.AnswerInput {
	return chatbot.AnswerInput{Message: r.Message}
}

// --- Response DTOs ---

type answerResp struct {
	Answer string `json:"answer"`
}

func (h *handler) newAnswerResp(out chatbot.AnswerOutput) answerResp {
	return answerResp{Answer: out.Answer}
}

package http

import (
	"strings"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/pkg/response"
)

// --- Request DTOs ---

type commandReq struct {
	Command string `json:"command"`
}

func (r commandReq) validate() error {
	if strings.TrimSpace(r.Command) == "" {
		return errNoCommand
	}
	return nil
}

func (r commandReq) toSubmitInput() assistant.SubmitCommandInput {
	return assistant.SubmitCommandInput{Command: r.Command}
}

func (r commandReq) toClassifyInput() assistant.ClassifyInput {
	return assistant.ClassifyInput{Command: r.Command}
}

// --- Response DTOs ---

type commandResp struct {
	Response string `json:"response"`
	Type     string `json:"type"`
	Data     any    `json:"data"`
}

func (h *handler) newCommandResp(out assistant.Response) commandResp {
	return commandResp{
		Response: out.Text,
		Type:     string(out.Intent),
		Data:     out.Data,
	}
}

type classifyResp struct {
	Intent  string `json:"intent"`
	Action  string `json:"action,omitempty"`
	Keyword string `json:"keyword,omitempty"`
	Rule    int    `json:"rule"`
}

func (h *handler) newClassifyResp(out assistant.ClassifyOutput) classifyResp {
	return classifyResp{
		Intent:  string(out.Intent),
		Action:  string(out.Action),
		Keyword: out.Keyword,
		Rule:    out.Rule,
	}
}

type statusResp struct {
	Name      string             `json:"name"`
	Version   string             `json:"version"`
	Active    bool               `json:"active"`
	Timestamp response.Timestamp `json:"timestamp"`
}

func (h *handler) newStatusResp(out assistant.StatusOutput) statusResp {
	return statusResp{
		Name:      out.Name,
		Version:   out.Version,
		Active:    out.Active,
		Timestamp: response.Timestamp(out.Timestamp),
	}
}

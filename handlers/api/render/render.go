// Package render runs a list of drawing commands through a fresh session
// and returns what each line produced.
package render

import (
	"net/http"

	"console-draw/core"
	"console-draw/session"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

// MaxCommands bounds a single batch.
const MaxCommands = 1000

type Request struct {
	Commands []string `json:"commands"`
}

type LineResult struct {
	Command string `json:"command"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Response struct {
	Results []LineResult `json:"results"`
	// Render is the final canvas, empty if none was created.
	Render string `json:"render"`
	Quit   bool   `json:"quit"`
}

func HandleRender(background core.ColorFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Invalid request body"})
			return
		}
		if len(req.Commands) > MaxCommands {
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, map[string]string{"error": "Too many commands"})
			return
		}

		resp := Run(req.Commands, background)
		logrus.WithFields(logrus.Fields{
			"commands": len(req.Commands),
			"executed": len(resp.Results),
		}).Debug("Batch rendered")
		render.JSON(w, r, resp)
	}
}

// Run executes lines in order. Failed lines are reported and skipped; a
// quit line ends the batch.
func Run(lines []string, background core.ColorFactory) Response {
	s := session.New(session.WithBackground(background))
	resp := Response{Results: make([]LineResult, 0, len(lines))}

	for _, line := range lines {
		result := LineResult{Command: line}
		reply, err := s.Submit(line)
		if err != nil {
			result.Error = session.ErrorMessage(err)
		} else {
			result.Output = reply.Output
		}
		resp.Results = append(resp.Results, result)

		if reply.Quit {
			resp.Quit = true
			break
		}
	}

	resp.Render, _ = s.Render()
	return resp
}

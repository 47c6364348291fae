package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/ashrofu/kssm-hub/internal/quiz"
)

// wsCommand is one inbound quiz command on the WebSocket channel.
type wsCommand struct {
	Action  string `json:"action"`
	Level   int    `json:"level,omitempty"`
	Option  int    `json:"option,omitempty"`
	Confirm bool   `json:"confirm,omitempty"`
}

// wsReply pairs a snapshot with the error, if any, of the command that
// produced it.
type wsReply struct {
	Snapshot quiz.Snapshot `json:"snapshot"`
	Error    string        `json:"error,omitempty"`
}

const wsReadTimeout = 5 * time.Minute

// handleQuizWS runs a JSON command loop mirroring the session operations.
// Every command is answered with the resulting snapshot.
func (s *Server) handleQuizWS(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user")
	if user == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	e := s.sessions.Get(ctx, user)

	// Initial snapshot so the client can render without a first command.
	if err := wsjson.Write(ctx, c, wsReply{Snapshot: e.Snapshot()}); err != nil {
		return
	}

	for {
		readCtx, cancel := context.WithTimeout(ctx, wsReadTimeout)
		var cmd wsCommand
		err := wsjson.Read(readCtx, c, &cmd)
		cancel()
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && !errors.Is(err, context.Canceled) {
				slog.Warn("websocket read failed", "user", user, "error", err)
			}
			return
		}

		cmdErr := s.applyWSCommand(ctx, e, cmd)
		reply := wsReply{Snapshot: e.Snapshot()}
		if cmdErr != nil {
			reply.Error = cmdErr.Error()
		}
		if err := wsjson.Write(ctx, c, reply); err != nil {
			return
		}
	}
}

func (s *Server) applyWSCommand(ctx context.Context, e *quiz.Engine, cmd wsCommand) error {
	switch cmd.Action {
	case "snapshot":
		return nil
	case "start":
		return e.Start(cmd.Level)
	case "answer":
		return e.Answer(cmd.Option)
	case "advance":
		return e.Advance(ctx)
	case "tryAgain":
		return e.TryAgain()
	case "nextLevel":
		return e.NextLevel()
	case "menu":
		e.Menu()
		return nil
	case "reset":
		return e.Reset(ctx, cmd.Confirm)
	default:
		return errors.New("unknown action")
	}
}

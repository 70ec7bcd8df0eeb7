package websocket

import (
	"context"
	"fmt"
	"regexp"

	"console-draw/session"

	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/engine.io/v2/utils"
	socketio "github.com/zishang520/socket.io/v2/socket"
)

// SetupSocketIO wires relay to a socket.io server mounted at /socket.io.
func SetupSocketIO(relay *Relay) *socketio.Server {
	opts := socketio.DefaultServerOptions()
	opts.SetMaxHttpBufferSize(64 * 1024)
	opts.SetPath("/socket.io")
	opts.SetAllowEIO3(true)
	localhostOrigin := regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1|\[::1\])(:\d+)?$`)
	opts.SetCors(&types.Cors{
		Origin:      []any{localhostOrigin},
		Credentials: true,
	})
	srv := socketio.NewServer(nil, opts)

	//nolint:errcheck // Socket.IO event handlers do not return useful errors
	srv.On("connection", func(clients ...any) {
		socket, ok := clients[0].(*socketio.Socket)
		if !ok {
			return
		}

		id := string(socket.Id())
		relay.Open(context.Background(), id)
		_ = socket.Emit(EventInit, TextToHTML(session.Banner))
		utils.Log().Printf("session %v connected\n", id)

		//nolint:errcheck // Socket.IO event handlers do not return useful errors
		socket.On(EventExecute, func(datas ...any) {
			ack, args := extractAck(datas)
			line, err := lineArg(args)
			if err != nil {
				_ = socket.Emit(EventRender, TextToHTML(session.ErrorMessage(err)+"\n"))
				respondWithAck(socket, ack, "", map[string]any{
					"status": "error",
					"error":  err.Error(),
				}, err)
				return
			}

			utils.Log().Printf("session %v executes %q\n", id, line)
			transcript, execErr := relay.Execute(context.Background(), id, line)
			_ = socket.Emit(EventRender, TextToHTML(transcript))

			payload := map[string]any{"status": "ok", "output": transcript}
			if execErr != nil {
				payload["status"] = "error"
				payload["error"] = execErr.Error()
			}
			respondWithAck(socket, ack, "", payload, execErr)
		})

		//nolint:errcheck // Socket.IO event handlers do not return useful errors
		socket.On(EventPublish, func(datas ...any) {
			ack, _ := extractAck(datas)

			docID, err := relay.Publish(context.Background(), id)
			if err != nil {
				respondWithAck(socket, ack, EventPublished, map[string]any{
					"status": "error",
					"error":  err.Error(),
				}, err)
				return
			}

			utils.Log().Printf("session %v published %v\n", id, docID)
			respondWithAck(socket, ack, EventPublished, map[string]any{
				"status": "ok",
				"id":     docID,
			}, nil)
		})

		socket.On("disconnect", func(datas ...any) {
			relay.Close(id)
			socket.RemoveAllListeners("")
		})
	})

	return srv
}

func lineArg(args []any) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("command is required")
	}
	line, ok := args[0].(string)
	if !ok {
		return "", fmt.Errorf("command must be a string")
	}
	return line, nil
}

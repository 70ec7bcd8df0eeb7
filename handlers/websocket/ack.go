package websocket

import (
	"reflect"

	socketio "github.com/zishang520/socket.io/v2/socket"
)

type ackInvoker func(err error, payload map[string]any)

// socket.io hands event listeners this callback when the client asked for
// an acknowledgement.
var clientAckType = reflect.TypeOf((func([]any, error))(nil))

// extractAck splits a trailing acknowledgement callback off event args.
func extractAck(datas []any) (ackInvoker, []any) {
	if len(datas) == 0 {
		return nil, datas
	}
	if ack := wrapAck(datas[len(datas)-1]); ack != nil {
		return ack, datas[:len(datas)-1]
	}
	return nil, datas
}

// wrapAck adapts a callback to an ackInvoker. The client acknowledgement
// receives the payload as its only argument. Any other function gets the
// error then the payload, or just one of them if it takes one parameter.
func wrapAck(candidate any) ackInvoker {
	fn := reflect.ValueOf(candidate)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil
	}

	if fn.Type().ConvertibleTo(clientAckType) {
		reply := fn.Convert(clientAckType).Interface().(func([]any, error))
		return func(err error, payload map[string]any) {
			reply([]any{payload}, err)
		}
	}

	typ := fn.Type()
	return func(err error, payload map[string]any) {
		values := []any{err, payload}
		if typ.NumIn() == 1 && err == nil {
			values = values[1:]
		}

		args := make([]reflect.Value, typ.NumIn())
		for i := range args {
			var v any
			if i < len(values) {
				v = values[i]
			}
			args[i] = ackArg(v, typ.In(i))
		}
		fn.Call(args)
	}
}

// ackArg passes v through when the parameter can hold it and the zero
// value otherwise.
func ackArg(v any, param reflect.Type) reflect.Value {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || !rv.Type().AssignableTo(param) {
		return reflect.Zero(param)
	}
	return rv
}

// respondWithAck calls ack if the client asked for one and, when event is
// set, also emits payload on the socket.
func respondWithAck(socket *socketio.Socket, ack ackInvoker, event string, payload map[string]any, ackErr error) {
	if ack != nil {
		ack(ackErr, payload)
	}

	if event != "" && payload != nil {
		_ = socket.Emit(event, payload)
	}
}

package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/totegamma/logistics-backend/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Request is a message sent by a realtime client.
// Type "listen" replaces the subscription with Prefixes; "h" is a heartbeat.
type Request struct {
	Type     string   `json:"type"`
	Prefixes []string `json:"prefixes"`
}

func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("failed to upgrade websocket", zap.Error(err), zap.String("module", "socket"))
		return err
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	input := make(chan []string)
	output := make(chan domain.ChangeEvent)

	go h.signal.Realtime(ctx, input, output)

	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			var req Request
			err := ws.ReadJSON(&req)
			if err != nil {
				var closeErr *websocket.CloseError
				if errors.As(err, &closeErr) {
					if closeErr.Code != websocket.CloseNormalClosure && closeErr.Code != websocket.CloseGoingAway {
						h.logger.Debug("websocket closed", zap.Error(closeErr), zap.String("module", "socket"))
					}
				} else {
					h.logger.Error("error reading message", zap.Error(err), zap.String("module", "socket"))
				}
				return
			}

			switch req.Type {
			case "listen":
				select {
				case input <- req.Prefixes:
					h.logger.Debug("socket subscribe", zap.Strings("prefixes", req.Prefixes), zap.String("module", "socket"))
				case <-ctx.Done():
					return
				}
			case "h": // heartbeat
			default:
				h.logger.Info("unknown request type", zap.String("type", req.Type), zap.String("module", "socket"))
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event, ok := <-output:
			if !ok {
				return nil
			}
			if err := ws.WriteJSON(event); err != nil {
				h.logger.Error("error writing message", zap.Error(err), zap.String("module", "socket"))
				return nil
			}
		}
	}
}

package rest

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/battle"
)

// closeWriteWait bounds the close handshake write
const closeWriteWait = time.Second

// StreamBattle replays a stored battle over a websocket, one log entry per message.
// The record is loaded before the upgrade so a missing battle is an ordinary 404.
func (h *Handler) StreamBattle(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{BattleID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the handshake error
		slog.Warn("websocket upgrade failed", "battle_id", out.Record.ID, "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	var tick <-chan time.Time
	if h.replayInterval > 0 {
		ticker := time.NewTicker(h.replayInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i, entry := range out.Record.Log {
		if i > 0 && tick != nil {
			select {
			case <-ctx.Done():
				return
			case <-tick:
			}
		}

		if err := conn.WriteJSON(entry); err != nil {
			slog.Debug("battle replay interrupted", "battle_id", out.Record.ID, "sent", i, "error", err)
			return
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteWait))
	slog.Debug("battle replay complete", "battle_id", out.Record.ID, "entries", len(out.Record.Log))
}

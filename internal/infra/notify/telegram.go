package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
)

// Notifier announces new orders to an admin chat. With no token
// configured it is a silent no-op; delivery failures are logged and
// never surface to the checkout path.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger
}

func New(token string, chatID int64, log *slog.Logger) *Notifier {
	n := &Notifier{chatID: chatID, log: log}
	if token == "" || chatID == 0 {
		return n
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Error("telegram notifier disabled", "err", err)
		return n
	}
	n.bot = bot
	return n
}

func (n *Notifier) OrderCreated(orderID int64, customer string, total decimal.Decimal) {
	if n == nil || n.bot == nil {
		return
	}

	text := fmt.Sprintf("New order #%d from %s, total %s", orderID, customer, total.StringFixed(2))
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		n.log.Error("order notification failed", "order_id", orderID, "err", err)
	}
}

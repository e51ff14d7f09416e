// File: bot/bot.go
package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

// Bot is the Telegram tic-tac-toe runner. It owns its game store for the
// lifetime of the process.
type Bot struct {
	api   *tgbotapi.BotAPI
	store *GameStore
}

// NewBot authorizes against the Telegram API.
func NewBot(token string, debug bool) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	api.Debug = debug
	zap.L().Info("telegram bot authorized", zap.String("username", api.Self.UserName))

	return &Bot{api: api, store: NewGameStore()}, nil
}

// Start consumes updates until the update channel closes. Blocking; run it
// in a goroutine.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return err
	}

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			b.handleCallback(update.CallbackQuery)
		case update.Message != nil:
			b.handleMessage(update.Message)
		}
	}
	return nil
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.send(msg.Chat.ID, "Tic-tac-toe! Send /play to start a game, /resign to give up.")
	case "play":
		game := b.store.Start(msg.Chat.ID)
		out := tgbotapi.NewMessage(msg.Chat.ID, "Your move — you are ❌")
		out.ReplyMarkup = boardKeyboard(game)
		if _, err := b.api.Send(out); err != nil {
			zap.L().Warn("failed to send board", zap.Error(err))
		}
	case "resign":
		if _, ok := b.store.Get(msg.Chat.ID); !ok {
			b.send(msg.Chat.ID, "No game in progress. Send /play to start one.")
			return
		}
		b.store.End(msg.Chat.ID)
		b.send(msg.Chat.ID, "Game over — you resigned. /play for a rematch.")
	default:
		b.send(msg.Chat.ID, "Send /play to start a game.")
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	game, ok := b.store.Get(chatID)
	if !ok {
		b.answer(cb.ID, "No game in progress")
		return
	}

	cell, err := strconv.Atoi(strings.TrimPrefix(cb.Data, "move:"))
	if err != nil {
		b.answer(cb.ID, "Bad move")
		return
	}

	state, err := game.PlayerMove(cell)
	if err != nil {
		b.answer(cb.ID, err.Error())
		return
	}
	b.answer(cb.ID, "")

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, statusText(state))
	markup := boardKeyboard(game)
	edit.ReplyMarkup = &markup
	if _, err := b.api.Send(edit); err != nil {
		zap.L().Warn("failed to update board", zap.Error(err))
	}

	// Terminal states clear the registry entry; the rendered board stays in
	// the chat history.
	if state != StateInProgress {
		b.store.End(chatID)
	}
}

func statusText(state GameState) string {
	switch state {
	case StatePlayerWon:
		return "You win! 🎉 /play for a rematch."
	case StateBotWon:
		return "I win! /play for a rematch."
	case StateDraw:
		return "Draw. /play for a rematch."
	default:
		return "Your move — you are ❌"
	}
}

func boardKeyboard(game *Game) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 3)
	for row := 0; row < 3; row++ {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, 3)
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
				game.CellLabel(cell), "move:"+strconv.Itoa(cell)))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		zap.L().Warn("failed to send message", zap.Error(err))
	}
}

func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.AnswerCallbackQuery(tgbotapi.NewCallback(callbackID, text)); err != nil {
		zap.L().Warn("failed to answer callback", zap.Error(err))
	}
}

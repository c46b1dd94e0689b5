package notifier

import (
	"errors"
	"fmt"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/interviewtools/tracker/internal/events"
	"github.com/interviewtools/tracker/internal/logger"
	log "github.com/sirupsen/logrus"
)

// Notifier sends one-way Telegram messages about sync results. It only
// listens on the bus; the sync core never depends on it.
type Notifier struct {
	api    *botApi.BotAPI
	bus    EventBus.Bus
	chatID int64
}

func NewNotifier(token string, chatID int64, bus EventBus.Bus) (*Notifier, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	err = botApi.SetLogger(log.StandardLogger())
	if err != nil {
		return nil, err
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	notifier := &Notifier{api: api, bus: bus, chatID: chatID}

	if err = bus.Subscribe(events.SyncCompletedTopic, notifier.onSyncCompleted); err != nil {
		return nil, err
	}
	if err = bus.Subscribe(events.SyncFailedTopic, notifier.onSyncFailed); err != nil {
		return nil, err
	}
	return notifier, nil
}

func (n *Notifier) Stop() {
	if err := n.bus.Unsubscribe(events.SyncCompletedTopic, n.onSyncCompleted); err != nil {
		log.Errorf("Error unsubscribing from sync completed event: %v", err)
	}
	if err := n.bus.Unsubscribe(events.SyncFailedTopic, n.onSyncFailed); err != nil {
		log.Errorf("Error unsubscribing from sync failed event: %v", err)
	}
}

func (n *Notifier) onSyncCompleted(event events.SyncCompleted) {
	text := fmt.Sprintf("Sync completed at %v\nPushed: %v\nPulled: %v\nDeleted: %v",
		event.FinishedAt.Format("15:04:05"), event.Pushed, event.Pulled, event.Deleted)
	n.send(text)
}

func (n *Notifier) onSyncFailed(event events.SyncFailed) {
	n.send(fmt.Sprintf("Sync failed: %v", event.Err))
}

func (n *Notifier) send(text string) {
	message := botApi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(message); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeNotifier).
			Errorf("failed to send notification: %v", err)
	}
}

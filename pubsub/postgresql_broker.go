// Copyright (C) 2025 Incentra GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pubsub

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/shared"
	"github.com/lib/pq"
)

type postgreSQLMessage struct {
	ID        string                `json:"id"`
	Channel   shared.PubSubChannel  `json:"topic"`
	Payload   map[string]any        `json:"payload"`
	Timestamp time.Time             `json:"timestamp"`
	SenderID  string                `json:"sender_id,omitempty"`
}

// PostgreSQLBroker implements shared.PubSubBroker on top of PostgreSQL
// LISTEN/NOTIFY. Every engine instance runs one broker, so capacity and
// lifecycle events propagate across replicas without an extra queue.
type PostgreSQLBroker struct {
	db           *sql.DB
	listener     *pq.Listener
	subscribers  map[shared.PubSubChannel][]chan map[string]any
	subscribeMux sync.RWMutex
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	isListening  bool
	listeningMux sync.RWMutex
	// ID identifies this broker instance so it can skip its own messages.
	ID                       string
	shouldReceiveOwnMessages bool
}

func BrokerFactory() (shared.PubSubBroker, error) {
	return NewPostgreSQLBroker(
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}

func (b *PostgreSQLBroker) SetShouldReceiveOwnMessages(should bool) {
	b.shouldReceiveOwnMessages = should
}

func NewPostgreSQLBroker(user, password, host, port, dbname string) (*PostgreSQLBroker, error) {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	listener := pq.NewListener(connectionString, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Error("PostgreSQL listener error", "error", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())

	return &PostgreSQLBroker{
		db:          db,
		listener:    listener,
		subscribers: make(map[shared.PubSubChannel][]chan map[string]any),
		ctx:         ctx,
		cancel:      cancel,
		ID:          uuid.New().String(),
	}, nil
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	topic := message.GetChannel()

	pgMessage := postgreSQLMessage{
		ID:        uuid.New().String(),
		Channel:   topic,
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.ID,
	}

	messageJSON, err := json.Marshal(pgMessage)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	query := fmt.Sprintf("NOTIFY %s, '%s'", pq.QuoteIdentifier(string(topic)), string(messageJSON))
	if _, err := b.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "topic", topic, "messageID", pgMessage.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	ch := make(chan map[string]any, 100)

	if _, exists := b.subscribers[topic]; !exists {
		b.subscribers[topic] = []chan map[string]any{}

		if err := b.listener.Listen(string(topic)); err != nil {
			close(ch)
			return nil, fmt.Errorf("failed to listen on topic %s: %w", topic, err)
		}
		slog.Info("started listening on topic", "topic", topic)
	}

	b.subscribers[topic] = append(b.subscribers[topic], ch)

	b.listeningMux.Lock()
	if !b.isListening {
		b.isListening = true
		b.wg.Add(1)
		go b.processMessages()
	}
	b.listeningMux.Unlock()

	return ch, nil
}

func (b *PostgreSQLBroker) processMessages() {
	defer b.wg.Done()
	defer func() {
		b.listeningMux.Lock()
		b.isListening = false
		b.listeningMux.Unlock()
	}()

	for {
		select {
		case <-b.ctx.Done():
			slog.Info("message processing stopped")
			return
		case notification := <-b.listener.Notify:
			if notification != nil {
				b.handleNotification(notification)
			}
		case <-time.After(time.Second):
			// keep the connection alive
			if err := b.listener.Ping(); err != nil {
				slog.Error("failed to ping listener", "error", err)
			}
		}
	}
}

func (b *PostgreSQLBroker) handleNotification(notification *pq.Notification) {
	var message postgreSQLMessage
	if err := json.Unmarshal([]byte(notification.Extra), &message); err != nil {
		slog.Error("failed to unmarshal message", "error", err, "payload", notification.Extra)
		return
	}

	if message.SenderID == b.ID && !b.shouldReceiveOwnMessages {
		slog.Debug("ignoring message sent by self", "messageID", message.ID, "topic", message.Channel)
		return
	}

	topic := shared.PubSubChannel(notification.Channel)

	b.subscribeMux.RLock()
	subscribers, exists := b.subscribers[topic]
	b.subscribeMux.RUnlock()

	if !exists {
		slog.Warn("no subscribers for topic", "topic", topic)
		return
	}

	for _, subscriber := range subscribers {
		select {
		case subscriber <- message.Payload:
		default:
			slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", message.ID)
		}
	}

	slog.Debug("message distributed", "topic", topic, "messageID", message.ID, "subscribers", len(subscribers))
}

// Close stops the broker and cleans up resources.
func (b *PostgreSQLBroker) Close() error {
	b.cancel()
	b.wg.Wait()

	b.subscribeMux.Lock()
	for topic, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			close(ch)
		}
		delete(b.subscribers, topic)
	}
	b.subscribeMux.Unlock()

	if err := b.listener.Close(); err != nil {
		return fmt.Errorf("failed to close listener: %w", err)
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}

func (b *PostgreSQLBroker) IsHealthy() bool {
	if b.db == nil {
		return false
	}
	if err := b.db.Ping(); err != nil {
		return false
	}
	return b.listener.Ping() == nil
}

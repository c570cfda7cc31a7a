package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/config"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// Publisher pushes provenance events onto a JetStream stream
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects to NATS and makes sure the stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	streamCfg := jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.SubjectBase + ".>"},
	}
	if _, err := js.CreateOrUpdateStream(ctx, streamCfg); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ensure stream: %w", err)
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// eventMessage is the wire form of a provenance event. Hashes and principals
// travel as 0x-prefixed hex, the signature as base64.
type eventMessage struct {
	Seq       uint64    `json:"seq"`
	Kind      string    `json:"kind"`
	FileHash  string    `json:"file_hash"`
	EmittedAt time.Time `json:"emitted_at"`

	Uploader         string `json:"uploader,omitempty"`
	StoragePointer   string `json:"storage_pointer,omitempty"`
	Signature        []byte `json:"signature,omitempty"`
	HasLocationLock  bool   `json:"has_location_lock,omitempty"`
	LockLatMicro     int32  `json:"lock_lat_micro,omitempty"`
	LockLonMicro     int32  `json:"lock_lon_micro,omitempty"`
	LockRadiusMeters uint32 `json:"lock_radius_m,omitempty"`

	Grantee string `json:"grantee,omitempty"`
}

func toEventMessage(event domain.Event) eventMessage {
	msg := eventMessage{
		Seq:       event.Seq,
		Kind:      string(event.Kind),
		FileHash:  event.FileHash.String(),
		EmittedAt: event.EmittedAt,
	}
	if !event.Uploader.IsZero() {
		msg.Uploader = event.Uploader.String()
	}
	if !event.Grantee.IsZero() {
		msg.Grantee = event.Grantee.String()
	}
	msg.StoragePointer = event.StoragePointer
	msg.Signature = event.Signature
	msg.HasLocationLock = event.HasLocationLock
	msg.LockLatMicro = event.LockLatMicro
	msg.LockLonMicro = event.LockLonMicro
	msg.LockRadiusMeters = event.LockRadiusMeters
	return msg
}

// Publish sends one event under <subjectBase>.<kind>. The sequence doubles as
// the message id, so JetStream deduplicates redeliveries of the same event.
func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(toEventMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event %d: %w", event.Seq, err)
	}

	subject := p.config.SubjectBase + "." + string(event.Kind)
	_, err = p.js.Publish(ctx, subject, data, jetstream.WithMsgID(strconv.FormatUint(event.Seq, 10)))
	if err != nil {
		return fmt.Errorf("failed to publish event %d: %w", event.Seq, err)
	}
	return nil
}

// Close graceful shutdown
func (p *Publisher) Close() error {
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"expense-client/internal/dto"
	"expense-client/internal/metrics"
	"expense-client/internal/models"
)

// SMSListener forwards received SMS bodies to the parsing endpoint. Each
// message is handled on its own goroutine; there is no queue and no ordering.
type SMSListener struct {
	parser       DataScienceServiceInterface
	logger       *slog.Logger
	metrics      metrics.RecorderInterface
	parseTimeout time.Duration
}

func NewSMSListener(parser DataScienceServiceInterface, logger *slog.Logger, recorder metrics.RecorderInterface, parseTimeout time.Duration) *SMSListener {
	if logger == nil {
		logger = slog.Default()
	}
	if parseTimeout <= 0 {
		parseTimeout = 15 * time.Second
	}
	return &SMSListener{
		parser:       parser,
		logger:       logger,
		metrics:      metrics.OrNoop(recorder),
		parseTimeout: parseTimeout,
	}
}

// SMSSubscription is a running listener
type SMSSubscription struct {
	once     sync.Once
	mu       sync.RWMutex
	stopped  bool
	remove   func()
	inflight sync.WaitGroup
}

// Unsubscribe stops delivery of new events. In-flight parses finish on
// their own. Calling it more than once is a no-op.
func (s *SMSSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		s.remove()
	})
}

// Wait blocks until every in-flight parse has returned. After Unsubscribe
// no new parse can start, so Wait then returns once the last one ends.
func (s *SMSSubscription) Wait() {
	s.inflight.Wait()
}

// track registers a parse unless the subscription has stopped. The caller
// must call inflight.Done when track returns true.
func (s *SMSSubscription) track() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stopped {
		return false
	}
	s.inflight.Add(1)
	return true
}

// Start subscribes to source. onMessage, if non-nil, receives the body of
// every message the server accepted.
func (l *SMSListener) Start(source SMSEventSource, onMessage func(body string)) *SMSSubscription {
	sub := &SMSSubscription{}
	l.logger.Info("setting up sms listener")

	remove := source.Subscribe(func(payload string) {
		if !sub.track() {
			return
		}
		l.handle(sub, payload, onMessage)
	})
	sub.remove = func() {
		l.logger.Info("cleaning up sms listener")
		remove()
	}
	return sub
}

// StartIfPermitted requests permission and starts only when granted. The
// subscription is nil otherwise.
func (l *SMSListener) StartIfPermitted(ctx context.Context, requester PermissionRequester, source SMSEventSource, onMessage func(body string)) (*SMSSubscription, models.PermissionResult) {
	result := requester.RequestSMSPermission(ctx)
	l.logger.InfoContext(ctx, "sms permission result", "result", string(result))
	if result != models.PermissionGranted {
		return nil, result
	}
	return l.Start(source, onMessage), result
}

func (l *SMSListener) handle(sub *SMSSubscription, payload string, onMessage func(string)) {
	var envelope dto.SMSEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		l.logger.Error("error processing sms", "error", err)
		l.metrics.IncrementCounter(metrics.SMSMessage, map[string]string{"result": "malformed"})
		sub.inflight.Done()
		return
	}

	go func() {
		defer sub.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), l.parseTimeout)
		defer cancel()

		result := l.parser.ParseSMSMessage(ctx, envelope.MessageBody)
		if !result.Success {
			l.logger.ErrorContext(ctx, "error sending message to api",
				"sender", envelope.SenderPhoneNumber,
				"error", result.Message,
			)
			l.metrics.IncrementCounter(metrics.SMSMessage, map[string]string{"result": "failed"})
			return
		}

		l.metrics.IncrementCounter(metrics.SMSMessage, map[string]string{"result": "parsed"})
		if onMessage != nil {
			onMessage(envelope.MessageBody)
		}
	}()
}

// PlatformPermissions answers permission requests for the configured
// platform. SMS access exists only on android.
type PlatformPermissions struct {
	Platform string
	// Ask is consulted on android; nil means the user grants access.
	Ask func(ctx context.Context) bool
}

func (p PlatformPermissions) RequestSMSPermission(ctx context.Context) models.PermissionResult {
	if p.Platform != "android" {
		return models.PermissionUnavailable
	}
	if p.Ask == nil || p.Ask(ctx) {
		return models.PermissionGranted
	}
	return models.PermissionDenied
}

// ChannelSource adapts a channel of raw payloads to SMSEventSource. It is
// used by the CLI to feed messages from stdin.
type ChannelSource struct {
	mu       sync.Mutex
	handlers map[int]func(string)
	next     int
}

func NewChannelSource() *ChannelSource {
	return &ChannelSource{handlers: make(map[int]func(string))}
}

func (c *ChannelSource) Subscribe(handler func(payload string)) func() {
	c.mu.Lock()
	id := c.next
	c.next++
	c.handlers[id] = handler
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.handlers, id)
		c.mu.Unlock()
	}
}

// Emit delivers payload to every current handler
func (c *ChannelSource) Emit(payload string) {
	c.mu.Lock()
	handlers := make([]func(string), 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(payload)
	}
}

// Pump emits every payload received on ch until ch closes or ctx ends
func (c *ChannelSource) Pump(ctx context.Context, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-ch:
			if !ok {
				return
			}
			c.Emit(payload)
		}
	}
}

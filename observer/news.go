package observer

import (
	"fmt"
	"io"
	"sync"
)

// NewsPublisher keeps the latest headline and publishes every new one.
// Headlines only go out through SetNews and Notify, so Latest always matches
// the last value subscribers received.
type NewsPublisher struct {
	pub Publisher[string]

	mu     sync.Mutex
	latest string
}

// NewNewsPublisher returns an empty publisher.
func NewNewsPublisher() *NewsPublisher { return &NewsPublisher{} }

// SetNews stores msg as the latest headline and publishes it.
func (n *NewsPublisher) SetNews(msg string) {
	n.mu.Lock()
	n.latest = msg
	n.mu.Unlock()
	n.pub.Publish(msg)
}

// Notify re-sends the latest headline to the current subscribers.
func (n *NewsPublisher) Notify() { n.pub.Publish(n.Latest()) }

// Attach registers l for future headlines.
func (n *NewsPublisher) Attach(l Listener[string]) { n.pub.Attach(l) }

// Detach removes every registration of l.
func (n *NewsPublisher) Detach(l Listener[string]) bool { return n.pub.Detach(l) }

// Subscribe registers fn and returns its cancel func.
func (n *NewsPublisher) Subscribe(fn func(string)) (cancel func()) { return n.pub.Subscribe(fn) }

// Len returns the number of subscribers.
func (n *NewsPublisher) Len() int { return n.pub.Len() }

// Latest returns the last headline set.
func (n *NewsPublisher) Latest() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.latest
}

// EmailSubscriber "sends" headlines to an address by writing to out.
type EmailSubscriber struct {
	Address string
	out     io.Writer
}

// NewEmailSubscriber returns a subscriber that writes deliveries to out.
func NewEmailSubscriber(address string, out io.Writer) *EmailSubscriber {
	return &EmailSubscriber{Address: address, out: out}
}

// Update implements Listener.
func (e *EmailSubscriber) Update(msg string) {
	_, _ = fmt.Fprintf(e.out, "Email sent to %s: %s\n", e.Address, msg)
}

// SMSSubscriber "texts" headlines to a phone number by writing to out.
type SMSSubscriber struct {
	Phone string
	out   io.Writer
}

// NewSMSSubscriber returns a subscriber that writes deliveries to out.
func NewSMSSubscriber(phone string, out io.Writer) *SMSSubscriber {
	return &SMSSubscriber{Phone: phone, out: out}
}

// Update implements Listener.
func (s *SMSSubscriber) Update(msg string) {
	_, _ = fmt.Fprintf(s.out, "SMS sent to %s: %s\n", s.Phone, msg)
}

var (
	_ Listener[string] = (*EmailSubscriber)(nil)
	_ Listener[string] = (*SMSSubscriber)(nil)
)

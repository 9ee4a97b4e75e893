package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"

	"roombook-backend/internal/booking"
	"roombook-backend/internal/watch"
)

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real Sender implementation using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// FreedSlot is one cancelled booking to notify watchers about.
type FreedSlot struct {
	Room watch.RoomKey
	Slot booking.Interval
}

// WorkerPool manages a pool of workers for sending freed-slot notifications.
type WorkerPool struct {
	size     int
	jobs     chan FreedSlot
	registry *watch.Registry
	webpush  *webpush.Options
	sender   Sender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, registry *watch.Registry, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:     size,
		jobs:     make(chan FreedSlot, size),
		registry: registry,
		webpush:  webpushOptions,
		sender:   &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Worker %d started", id)
	for {
		select {
		case job := <-wp.jobs:
			wp.sendNotificationsForSlot(job)
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		}
	}
}

// Dispatch sends a job to the worker pool.
func (wp *WorkerPool) Dispatch(job FreedSlot) {
	wp.jobs <- job
}

// SlotFreed implements the directory's notifier hook.
func (wp *WorkerPool) SlotFreed(room *booking.Room, slot booking.Interval) {
	wp.Dispatch(FreedSlot{
		Room: watch.RoomKey{Building: room.Building, Floor: room.Floor, Room: room.Name},
		Slot: slot,
	})
}

// sendNotificationsForSlot looks up watchers of the freed room and pushes to
// each of them.
func (wp *WorkerPool) sendNotificationsForSlot(job FreedSlot) {
	subscriptions := wp.registry.ForRoom(job.Room)
	if len(subscriptions) == 0 {
		return
	}

	log.Printf("Sending %d notifications for room %s", len(subscriptions), job.Room.Room)

	message := fmt.Sprintf("Room %s on floor %d of %s is free at %s",
		job.Room.Room, job.Room.Floor, job.Room.Building, job.Slot)
	for _, sub := range subscriptions {
		wp.sendNotification(sub, []byte(message))
	}
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(sub watch.Subscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Handle expired subscriptions
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		wp.registry.Delete(sub.Endpoint)
	}
}

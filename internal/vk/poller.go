package vk

import (
	"log"
	"time"
)

// Poller runs the long-poll loop and feeds the worker pool. Poll
// failures are logged and retried after a short backoff; the game
// engine never sees them.
type Poller struct {
	client *Client
	pool   *WorkerPool
	wait   int

	stopCh chan struct{}
	doneCh chan struct{}
}

func NewPoller(client *Client, pool *WorkerPool, wait int) *Poller {
	if wait <= 0 {
		wait = 25
	}
	return &Poller{
		client: client,
		pool:   pool,
		wait:   wait,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (p *Poller) Start() {
	go p.loop()
	log.Println("[Poller] started")
}

func (p *Poller) Stop() {
	close(p.stopCh)
	<-p.doneCh
	log.Println("[Poller] stopped")
}

func (p *Poller) loop() {
	defer close(p.doneCh)
	for {
		select {
		case <-p.stopCh:
			return
		default:
		}

		updates, err := p.client.Poll(p.wait)
		if err != nil {
			log.Printf("[Poller] poll: %v", err)
			select {
			case <-p.stopCh:
				return
			case <-time.After(3 * time.Second):
			}
			continue
		}
		for _, upd := range updates {
			p.pool.Enqueue(upd)
		}
	}
}

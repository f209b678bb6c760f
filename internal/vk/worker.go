package vk

import (
	"hash/fnv"
	"log"
	"sync"

	"github.com/Similization/kts-project/internal/bot"
)

const workerQueueSize = 64

// Sender is the outbound half of the transport, satisfied by Client.
type Sender interface {
	SendMessage(chatID, text, keyboard string) error
}

// WorkerPool fans inbound updates out to a fixed set of workers. Every
// update is sharded by chat id, so updates of one chat always land on
// the same worker and are applied in arrival order.
type WorkerPool struct {
	sender     Sender
	dispatcher *bot.Dispatcher
	queues     []chan bot.ChatUpdate
	wg         sync.WaitGroup
}

func NewWorkerPool(sender Sender, dispatcher *bot.Dispatcher, workers int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	p := &WorkerPool{
		sender:     sender,
		dispatcher: dispatcher,
		queues:     make([]chan bot.ChatUpdate, workers),
	}
	for i := range p.queues {
		p.queues[i] = make(chan bot.ChatUpdate, workerQueueSize)
	}
	return p
}

func (p *WorkerPool) Start() {
	for i, q := range p.queues {
		p.wg.Add(1)
		go p.worker(i, q)
	}
	log.Printf("[WorkerPool] started %d workers", len(p.queues))
}

// Stop closes the queues and waits for the in-flight updates to drain.
func (p *WorkerPool) Stop() {
	for _, q := range p.queues {
		close(q)
	}
	p.wg.Wait()
	log.Println("[WorkerPool] stopped")
}

// Enqueue routes the update to its chat's worker.
func (p *WorkerPool) Enqueue(upd bot.ChatUpdate) {
	h := fnv.New32a()
	h.Write([]byte(upd.ChatID))
	p.queues[int(h.Sum32())%len(p.queues)] <- upd
}

func (p *WorkerPool) worker(id int, queue <-chan bot.ChatUpdate) {
	defer p.wg.Done()
	for upd := range queue {
		for _, msg := range p.dispatcher.RouteUpdate(upd) {
			if err := p.sender.SendMessage(msg.ChatID, msg.Text, renderKeyboard(msg.Keyboard)); err != nil {
				log.Printf("[WorkerPool] worker %d: send to chat %s: %v", id, msg.ChatID, err)
			}
		}
	}
}

package rapporthttp

import (
	"context"
	"sync"
)

// Future is the read side of a pending reply. Then registers observers that
// fire once the future settles; Await blocks until settlement or context
// cancellation.
type Future interface {
	Then(onResolve func(Reply), onReject func(error))
	Await(ctx context.Context) (Reply, error)
}

// Promise is a settleable Future. The first Resolve or Reject wins; later
// calls are ignored.
type Promise interface {
	Future
	Resolve(reply Reply)
	Reject(err error)
}

// PromiseFactory produces promises for the reply-expecting dispatch path and
// pre-rejected futures for the fire-and-forget error path. Swap it via
// WithPromises to integrate another async primitive.
type PromiseFactory interface {
	New() Promise
	Reject(err error) Future
}

// ChannelPromises is the default PromiseFactory, producing done-channel
// backed promises.
type ChannelPromises struct{}

// New returns an unsettled promise.
func (ChannelPromises) New() Promise {
	return &channelPromise{done: make(chan struct{})}
}

// Reject returns a future already settled with err.
func (cp ChannelPromises) Reject(err error) Future {
	p := cp.New()
	p.Reject(err)
	return p
}

type channelPromise struct {
	done  chan struct{}
	once  sync.Once
	reply Reply
	err   error
}

func (p *channelPromise) Resolve(reply Reply) {
	p.once.Do(func() {
		p.reply = reply
		close(p.done)
	})
}

func (p *channelPromise) Reject(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Then spawns a goroutine that waits for settlement and invokes the matching
// observer. Nil observers are skipped.
func (p *channelPromise) Then(onResolve func(Reply), onReject func(error)) {
	go func() {
		<-p.done
		if p.err != nil {
			if onReject != nil {
				onReject(p.err)
			}
			return
		}
		if onResolve != nil {
			onResolve(p.reply)
		}
	}()
}

// Await blocks until the promise settles or ctx is done.
func (p *channelPromise) Await(ctx context.Context) (Reply, error) {
	select {
	case <-p.done:
		return p.reply, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

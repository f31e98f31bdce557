package observer_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/patterns/observer"
)

// recorder appends every update, tagged with its name, to a shared log.
type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Update(v string) { *r.log = append(*r.log, r.name+":"+v) }

// valueListener is comparable by value; Detach must still match by identity of the interface value.
type valueListener struct {
	id  int
	got *[]int
}

func (v valueListener) Update(n int) { *v.got = append(*v.got, v.id*100+n) }

type funcValue func(string)

func (f funcValue) Update(v string) { f(v) }

// boxed has a comparable type but holds whatever is put in h.
type boxed struct {
	h   any
	log *[]string
}

func (b boxed) Update(v string) { *b.log = append(*b.log, v) }

func TestPublisher_AttachPublishDetach(t *testing.T) {
	t.Parallel()

	var log []string
	a := &recorder{name: "A", log: &log}
	b := &recorder{name: "B", log: &log}

	var p observer.Publisher[string]
	p.Attach(a)
	p.Attach(b)

	p.Publish("X")
	assert.Equal(t, []string{"A:X", "B:X"}, log)

	require.True(t, p.Detach(b))
	p.Publish("Y")
	assert.Equal(t, []string{"A:X", "B:X", "A:Y"}, log)
	assert.Equal(t, 1, p.Len())
}

func TestPublisher_LateAttachSeesOnlyFuture(t *testing.T) {
	t.Parallel()

	var log []string
	var p observer.Publisher[string]
	p.Attach(&recorder{name: "A", log: &log})
	p.Publish("1")

	p.Attach(&recorder{name: "B", log: &log})
	p.Publish("2")

	assert.Equal(t, []string{"A:1", "A:2", "B:2"}, log)
}

func TestPublisher_DetachIsIdentityBased(t *testing.T) {
	t.Parallel()

	var log []string
	a1 := &recorder{name: "A", log: &log}
	a2 := &recorder{name: "A", log: &log}

	var p observer.Publisher[string]
	p.Attach(a1)
	p.Attach(a2)

	require.True(t, p.Detach(a1))
	p.Publish("Z")

	assert.Equal(t, []string{"A:Z"}, log)
	assert.Equal(t, 1, p.Len())
	assert.False(t, p.Detach(a1), "already removed")
}

func TestPublisher_DetachRemovesDuplicates(t *testing.T) {
	t.Parallel()

	var got []int
	l := valueListener{id: 1, got: &got}

	var p observer.Publisher[int]
	p.Attach(l)
	p.Attach(l)
	p.Publish(1)
	assert.Equal(t, []int{101, 101}, got)

	require.True(t, p.Detach(l))
	assert.Zero(t, p.Len())
}

func TestPublisher_NilAndNonComparable(t *testing.T) {
	t.Parallel()

	var p observer.Publisher[string]
	p.Attach(nil)
	assert.Zero(t, p.Len())
	assert.False(t, p.Detach(nil))

	var log []string
	f := funcValue(func(v string) { log = append(log, v) })
	p.Attach(f)
	assert.NotPanics(t, func() { assert.False(t, p.Detach(f)) })

	p.Publish("still here")
	assert.Equal(t, []string{"still here"}, log)
}

func TestPublisher_DetachStructHoldingFunc(t *testing.T) {
	t.Parallel()

	var log []string
	var p observer.Publisher[string]
	p.Attach(boxed{h: func() {}, log: &log})

	assert.NotPanics(t, func() {
		assert.False(t, p.Detach(boxed{h: func() {}, log: &log}))
	})
	require.Equal(t, 1, p.Len())

	// A comparable payload still matches by value.
	p.Attach(boxed{h: 7, log: &log})
	assert.True(t, p.Detach(boxed{h: 7, log: &log}))
	assert.Equal(t, 1, p.Len())

	p.Publish("kept")
	assert.Equal(t, []string{"kept"}, log)
}

func TestPublisher_Subscribe(t *testing.T) {
	t.Parallel()

	var got []string
	var p observer.Publisher[string]
	cancel := p.Subscribe(func(v string) { got = append(got, v) })

	p.Publish("a")
	cancel()
	cancel()
	p.Publish("b")

	assert.Equal(t, []string{"a"}, got)
	assert.Zero(t, p.Len())
}

func TestPublisher_DetachDuringPublish(t *testing.T) {
	t.Parallel()

	var p observer.Publisher[string]
	var log []string

	var cancelSelf func()
	cancelSelf = p.Subscribe(func(v string) {
		log = append(log, "self:"+v)
		cancelSelf()
	})
	p.Subscribe(func(v string) { log = append(log, "other:"+v) })

	// the snapshot still delivers to everyone registered at publish start
	p.Publish("1")
	assert.Equal(t, []string{"self:1", "other:1"}, log)

	p.Publish("2")
	assert.Equal(t, []string{"self:1", "other:1", "other:2"}, log)
}

func TestPublisher_AttachDuringPublish(t *testing.T) {
	t.Parallel()

	var p observer.Publisher[string]
	var log []string

	added := false
	p.Subscribe(func(v string) {
		log = append(log, "first:"+v)
		if !added {
			added = true
			p.Subscribe(func(v string) { log = append(log, "late:"+v) })
		}
	})

	p.Publish("1")
	p.Publish("2")
	assert.Equal(t, []string{"first:1", "first:2", "late:2"}, log)
}

func TestPublisher_ConcurrentUse(t *testing.T) {
	t.Parallel()

	var (
		p     observer.Publisher[int]
		mu    sync.Mutex
		total int
		wg    sync.WaitGroup
	)
	p.Subscribe(func(n int) {
		mu.Lock()
		total += n
		mu.Unlock()
	})

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.Publish(1)
		}()
		go func() {
			defer wg.Done()
			cancel := p.Subscribe(func(int) {})
			cancel()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, total)
	assert.Equal(t, 1, p.Len())
}

func TestNewsPublisher(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	news := observer.NewNewsPublisher()
	email := observer.NewEmailSubscriber("reader@example.com", &out)
	sms := observer.NewSMSSubscriber("+123456789", &out)

	news.Attach(email)
	news.Attach(sms)
	news.SetNews("Breaking")

	news.Detach(sms)
	news.SetNews("Update")

	assert.Equal(t, "Update", news.Latest())
	assert.Equal(t,
		"Email sent to reader@example.com: Breaking\n"+
			"SMS sent to +123456789: Breaking\n"+
			"Email sent to reader@example.com: Update\n",
		out.String())
}

func TestNewsPublisher_NotifyResendsLatest(t *testing.T) {
	t.Parallel()

	news := observer.NewNewsPublisher()
	var got []string
	news.SetNews("before anyone listened")

	cancel := news.Subscribe(func(v string) { got = append(got, v) })
	news.Notify()
	news.SetNews("fresh")
	cancel()
	news.Notify()

	assert.Equal(t, []string{"before anyone listened", "fresh"}, got)
	assert.Equal(t, "fresh", news.Latest())
	assert.Zero(t, news.Len())
}

package admin_test

import (
	"context"
	"strconv"
	"sync"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
)

type apiCall struct {
	Method   string
	Endpoint types.ResourceName
	Token    string
	ID       string
	Payload  model.Record
}

// fakeAPI keeps an in-memory collection per endpoint and records every call
type fakeAPI struct {
	mu      sync.Mutex
	calls   []apiCall
	data    map[types.ResourceName][]model.Record
	nextID  int
	failOn  map[string]error
	gate    chan struct{} // when set, mutations block until it is closed
	entered chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		data:   map[types.ResourceName][]model.Record{},
		failOn: map[string]error{},
	}
}

func (f *fakeAPI) seed(endpoint types.ResourceName, records ...model.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[endpoint] = append(f.data[endpoint], records...)
}

func (f *fakeAPI) record(call apiCall) error {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	err := f.failOn[call.Method]
	f.mu.Unlock()
	return err
}

func (f *fakeAPI) wait() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeAPI) Calls(method string) []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []apiCall
	for _, c := range f.calls {
		if method == "" || c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeAPI) List(ctx context.Context, endpoint types.ResourceName, token string) ([]model.Record, error) {
	if err := f.record(apiCall{Method: "GET", Endpoint: endpoint, Token: token}); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return model.CloneRecords(f.data[endpoint]), nil
}

func (f *fakeAPI) Create(ctx context.Context, endpoint types.ResourceName, token string, payload model.Record) error {
	f.wait()
	if err := f.record(apiCall{Method: "POST", Endpoint: endpoint, Token: token, Payload: payload.Clone()}); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	rec := payload.Clone()
	rec["id"] = "new-" + strconv.Itoa(f.nextID)
	f.data[endpoint] = append(f.data[endpoint], rec)
	return nil
}

func (f *fakeAPI) Update(ctx context.Context, endpoint types.ResourceName, token, id string, payload model.Record) error {
	f.wait()
	if err := f.record(apiCall{Method: "PUT", Endpoint: endpoint, Token: token, ID: id, Payload: payload.Clone()}); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.data[endpoint] {
		if r.ID() == id {
			for k, v := range payload {
				r[k] = v
			}
		}
	}
	return nil
}

func (f *fakeAPI) Delete(ctx context.Context, endpoint types.ResourceName, token, id string) error {
	if err := f.record(apiCall{Method: "DELETE", Endpoint: endpoint, Token: token, ID: id}); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.data[endpoint][:0]
	for _, r := range f.data[endpoint] {
		if r.ID() != id {
			kept = append(kept, r)
		}
	}
	f.data[endpoint] = kept
	return nil
}

type staticToken string

func (s staticToken) Token() string { return string(s) }

type notice struct {
	Message string
	Kind    types.NoticeKind
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *recordingNotifier) Notify(message string, kind types.NoticeKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{Message: message, Kind: kind})
}

func (n *recordingNotifier) All() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notice{}, n.notices...)
}

type fixedConfirmer struct {
	answer bool
	asked  int
}

func (c *fixedConfirmer) Confirm(ctx context.Context, message string) bool {
	c.asked++
	return c.answer
}

type fakeParser struct {
	task model.Record
	err  error
}

func (p *fakeParser) ParseTask(ctx context.Context, text string) (model.Record, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.task.Clone(), nil
}

package fakeapi

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ekey-bionyx/pkg/bionyx"
	"ekey-bionyx/pkg/response"
)

// Modification states reported by the service while a change waits for the
// account owner to confirm it in the app.
const (
	StateCreateRequested = "CreateRequested"
	StateUpdateRequested = bionyx.UpdateRequested
	StateDeleteRequested = bionyx.DeleteRequested
)

// SystemSeed describes a system the store starts with.
type SystemSeed struct {
	ID        string
	Name      string
	OwnSystem bool
	Quota     int
}

// Store keeps systems and their function webhooks in memory.
type Store struct {
	mu      sync.Mutex
	now     func() time.Time
	ttl     time.Duration
	systems []*systemRecord
}

type systemRecord struct {
	id       string
	name     string
	own      bool
	quota    int
	webhooks []*webhookRecord
}

type webhookRecord struct {
	id        string
	data      bionyx.WebhookData
	expiresAt time.Time
	state     string
	pending   *bionyx.WebhookData
}

// NewStore creates a store seeded with systems. Seeds without an id get a random one.
func NewStore(seeds []SystemSeed, ttl time.Duration) *Store {
	s := &Store{now: time.Now, ttl: ttl}
	for _, seed := range seeds {
		id := seed.ID
		if id == "" {
			id = uuid.NewString()
		}
		s.systems = append(s.systems, &systemRecord{
			id:    id,
			name:  seed.Name,
			own:   seed.OwnSystem,
			quota: seed.Quota,
		})
	}
	return s
}

// Systems returns every system in seed order.
func (s *Store) Systems() []bionyx.SystemResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]bionyx.SystemResponse, 0, len(s.systems))
	for _, sys := range s.systems {
		out = append(out, sys.response())
	}
	return out
}

// Webhooks lists the webhooks of a system in creation order.
func (s *Store) Webhooks(systemID string) ([]bionyx.WebhookResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sys, err := s.system(systemID)
	if err != nil {
		return nil, err
	}
	out := make([]bionyx.WebhookResponse, 0, len(sys.webhooks))
	for _, wh := range sys.webhooks {
		out = append(out, wh.response())
	}
	return out, nil
}

// Webhook returns one webhook.
func (s *Store) Webhook(systemID, webhookID string) (bionyx.WebhookResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, wh, err := s.webhook(systemID, webhookID)
	if err != nil {
		return bionyx.WebhookResponse{}, err
	}
	return wh.response(), nil
}

// Definition returns the stored webhook data including the definition,
// which the public API never sends back.
func (s *Store) Definition(systemID, webhookID string) (bionyx.WebhookData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, wh, err := s.webhook(systemID, webhookID)
	if err != nil {
		return bionyx.WebhookData{}, err
	}
	return wh.data, nil
}

// CreateWebhook adds a webhook in state CreateRequested. It takes a quota slot
// right away.
func (s *Store) CreateWebhook(systemID string, data bionyx.WebhookData) (bionyx.WebhookResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sys, err := s.system(systemID)
	if err != nil {
		return bionyx.WebhookResponse{}, err
	}
	if len(sys.webhooks) >= sys.quota {
		return bionyx.WebhookResponse{}, ErrQuotaExceeded
	}

	wh := &webhookRecord{
		id:        uuid.NewString(),
		data:      data,
		expiresAt: s.now().Add(s.ttl),
		state:     StateCreateRequested,
	}
	wh.data.FunctionWebhookID = wh.id
	sys.webhooks = append(sys.webhooks, wh)
	return wh.response(), nil
}

// UpdateWebhook stores data as a pending replacement. A second update before
// confirmation replaces the first one.
func (s *Store) UpdateWebhook(systemID, webhookID string, data bionyx.WebhookData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, wh, err := s.webhook(systemID, webhookID)
	if err != nil {
		return err
	}
	if wh.state == StateDeleteRequested {
		return ErrDeletePending
	}

	data.FunctionWebhookID = wh.id
	wh.pending = &data
	if wh.state != StateCreateRequested {
		wh.state = StateUpdateRequested
	}
	return nil
}

// DeleteWebhook marks a webhook for deletion. Repeating it is a no-op.
func (s *Store) DeleteWebhook(systemID, webhookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, wh, err := s.webhook(systemID, webhookID)
	if err != nil {
		return err
	}
	wh.state = StateDeleteRequested
	wh.pending = nil
	return nil
}

// RenameWebhook applies new names immediately, including to a pending update.
// Empty fields keep their value.
func (s *Store) RenameWebhook(systemID, webhookID string, rename bionyx.WebhookRename) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, wh, err := s.webhook(systemID, webhookID)
	if err != nil {
		return err
	}
	applyRename(&wh.data, rename)
	if wh.pending != nil {
		applyRename(wh.pending, rename)
	}
	return nil
}

func applyRename(data *bionyx.WebhookData, rename bionyx.WebhookRename) {
	if rename.FunctionName != "" {
		data.FunctionName = rename.FunctionName
	}
	if rename.LocationName != "" {
		data.LocationName = rename.LocationName
	}
}

// Confirm plays the account owner approving the pending change in the app.
func (s *Store) Confirm(systemID, webhookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sys, wh, err := s.webhook(systemID, webhookID)
	if err != nil {
		return err
	}

	switch wh.state {
	case StateCreateRequested:
		if wh.pending != nil {
			wh.data = *wh.pending
		}
	case StateUpdateRequested:
		wh.data = *wh.pending
		wh.expiresAt = s.now().Add(s.ttl)
	case StateDeleteRequested:
		sys.remove(wh.id)
		return nil
	default:
		return ErrNothingPending
	}

	wh.state = ""
	wh.pending = nil
	return nil
}

func (s *Store) system(systemID string) (*systemRecord, error) {
	for _, sys := range s.systems {
		if sys.id == systemID {
			return sys, nil
		}
	}
	return nil, ErrSystemNotFound
}

func (s *Store) webhook(systemID, webhookID string) (*systemRecord, *webhookRecord, error) {
	sys, err := s.system(systemID)
	if err != nil {
		return nil, nil, err
	}
	for _, wh := range sys.webhooks {
		if wh.id == webhookID {
			return sys, wh, nil
		}
	}
	return nil, nil, ErrWebhookNotFound
}

func (sys *systemRecord) response() bionyx.SystemResponse {
	used := len(sys.webhooks)
	free := sys.quota - used
	if free < 0 {
		free = 0
	}
	return bionyx.SystemResponse{
		SystemName:            sys.name,
		SystemID:              sys.id,
		OwnSystem:             sys.own,
		FunctionWebhookQuotas: bionyx.FunctionQuotas{Free: free, Used: used},
	}
}

func (sys *systemRecord) remove(webhookID string) {
	for i, wh := range sys.webhooks {
		if wh.id == webhookID {
			sys.webhooks = append(sys.webhooks[:i], sys.webhooks[i+1:]...)
			return
		}
	}
}

func (wh *webhookRecord) response() bionyx.WebhookResponse {
	out := bionyx.WebhookResponse{
		FunctionWebhookID: wh.id,
		IntegrationName:   wh.data.IntegrationName,
		LocationName:      wh.data.LocationName,
		FunctionName:      wh.data.FunctionName,
		ExpiresAt:         response.Timestamp(wh.expiresAt).String(),
	}
	if wh.state != "" {
		state := wh.state
		out.ModificationState = &state
	}
	return out
}

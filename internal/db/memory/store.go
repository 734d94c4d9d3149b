package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"Agora/internal/core/categories"
	"Agora/internal/core/ids"
	"Agora/internal/core/listings"
	"Agora/internal/core/replies"
	"Agora/internal/core/topics"
)

// Store is the in-memory entity store: one keyed map per entity kind plus
// insertion-ordered child indices (category → listings, category → topics,
// topic → replies). It backs all four repositories and is safe for
// concurrent use. Every create runs under one critical section covering
// identifier allocation, record insert, and parent-index append, so a
// concurrent reader never observes an index entry without its record.
//
// Records are treated as immutable after insert; list reads hand out the
// stored pointers in freshly built slices.
type Store struct {
	mu  sync.RWMutex
	gen ids.Generator

	// createdAt watermark: assigned timestamps never decrease even if the
	// wall clock steps backwards
	lastCreate time.Time

	catRecords map[string]*categories.Category
	catOrder   []string

	listingRecords     map[string]*listings.Listing
	listingsByCategory map[string][]string

	topicRecords     map[string]*topics.Topic
	topicsByCategory map[string][]string

	replyRecords   map[string]*replies.Reply
	repliesByTopic map[string][]string
}

// NewStore creates an empty in-memory store using gen for identifiers.
func NewStore(gen ids.Generator) *Store {
	return &Store{
		gen:                gen,
		catRecords:         make(map[string]*categories.Category),
		listingRecords:     make(map[string]*listings.Listing),
		listingsByCategory: make(map[string][]string),
		topicRecords:       make(map[string]*topics.Topic),
		topicsByCategory:   make(map[string][]string),
		replyRecords:       make(map[string]*replies.Reply),
		repliesByTopic:     make(map[string][]string),
	}
}

// CategoryRepository returns the categories.Repository view of the store.
func (s *Store) CategoryRepository() categories.Repository {
	return &categoryRepo{s}
}

// ListingRepository returns the listings.Repository view of the store.
func (s *Store) ListingRepository() listings.Repository {
	return &listingRepo{s}
}

// TopicRepository returns the topics.Repository view of the store.
func (s *Store) TopicRepository() topics.Repository {
	return &topicRepo{s}
}

// ReplyRepository returns the replies.Repository view of the store.
func (s *Store) ReplyRepository() replies.Repository {
	return &replyRepo{s}
}

// now returns a non-decreasing creation timestamp. Caller must hold mu.
func (s *Store) now() time.Time {
	t := time.Now().UTC()
	if t.Before(s.lastCreate) {
		t = s.lastCreate
	}
	s.lastCreate = t
	return t
}

type categoryRepo struct{ s *Store }

func (r *categoryRepo) Insert(ctx context.Context, category *categories.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Idempotent: seeding runs at every startup
	if _, ok := r.s.catRecords[category.ID]; ok {
		return nil
	}

	stored := *category
	r.s.catRecords[category.ID] = &stored
	r.s.catOrder = append(r.s.catOrder, category.ID)
	return nil
}

func (r *categoryRepo) List(ctx context.Context) ([]*categories.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*categories.Category, 0, len(r.s.catOrder))
	for _, id := range r.s.catOrder {
		out = append(out, r.s.catRecords[id])
	}
	return out, nil
}

type listingRepo struct{ s *Store }

func (r *listingRepo) Create(ctx context.Context, listing *listings.Listing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.catRecords[listing.CategoryID]; !ok {
		return listings.ErrCategoryNotFound
	}

	id, err := r.s.gen.Next(ids.KindListing)
	if err != nil {
		return fmt.Errorf("failed to allocate listing id: %w", err)
	}
	listing.ID = id

	stored := *listing
	r.s.listingRecords[id] = &stored
	r.s.listingsByCategory[listing.CategoryID] = append(r.s.listingsByCategory[listing.CategoryID], id)
	return nil
}

func (r *listingRepo) ListByCategory(ctx context.Context, categoryID string) ([]*listings.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	index := r.s.listingsByCategory[categoryID]
	out := make([]*listings.Listing, 0, len(index))
	for _, id := range index {
		out = append(out, r.s.listingRecords[id])
	}
	return out, nil
}

type topicRepo struct{ s *Store }

func (r *topicRepo) Create(ctx context.Context, topic *topics.Topic) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.catRecords[topic.CategoryID]; !ok {
		return topics.ErrCategoryNotFound
	}

	id, err := r.s.gen.Next(ids.KindTopic)
	if err != nil {
		return fmt.Errorf("failed to allocate topic id: %w", err)
	}
	topic.ID = id
	topic.CreatedAt = r.s.now()

	stored := *topic
	r.s.topicRecords[id] = &stored
	r.s.topicsByCategory[topic.CategoryID] = append(r.s.topicsByCategory[topic.CategoryID], id)
	return nil
}

func (r *topicRepo) ListByCategory(ctx context.Context, categoryID string) ([]*topics.Topic, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	index := r.s.topicsByCategory[categoryID]
	out := make([]*topics.Topic, 0, len(index))
	for _, id := range index {
		out = append(out, r.s.topicRecords[id])
	}
	return out, nil
}

type replyRepo struct{ s *Store }

func (r *replyRepo) Create(ctx context.Context, reply *replies.Reply) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.topicRecords[reply.TopicID]; !ok {
		return replies.ErrTopicNotFound
	}

	id, err := r.s.gen.Next(ids.KindReply)
	if err != nil {
		return fmt.Errorf("failed to allocate reply id: %w", err)
	}
	reply.ID = id
	reply.CreatedAt = r.s.now()

	stored := *reply
	r.s.replyRecords[id] = &stored
	r.s.repliesByTopic[reply.TopicID] = append(r.s.repliesByTopic[reply.TopicID], id)
	return nil
}

func (r *replyRepo) ListByTopic(ctx context.Context, topicID string) ([]*replies.Reply, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	index := r.s.repliesByTopic[topicID]
	out := make([]*replies.Reply, 0, len(index))
	for _, id := range index {
		out = append(out, r.s.replyRecords[id])
	}
	return out, nil
}

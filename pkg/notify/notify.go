package notify

import (
	"context"
	"sort"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"go.uber.org/zap"
)

const marqueeLimit = 10

// Eligible reports whether n may be displayed at the given time: it must
// be active and either carry no expiry or expire strictly in the future.
func Eligible(n models.Notification, now time.Time) bool {
	if !n.Active {
		return false
	}
	if n.ExpiresAt != nil && !n.ExpiresAt.After(now) {
		return false
	}
	return true
}

// Select filters to the eligible notifications and orders them
// deterministically: priority tier descending (urgent, high, normal, low),
// then creation time descending within a tier.
func Select(list []models.Notification, now time.Time) []models.Notification {
	out := make([]models.Notification, 0, len(list))
	for _, n := range list {
		if Eligible(n, now) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Priority.Rank(), out[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Marquee duplicates the ordered sequence once so the scrolling display
// loops seamlessly: the result is exactly twice as long, second half equal
// to the first.
func Marquee(list []models.Notification) []models.Notification {
	out := make([]models.Notification, 0, 2*len(list))
	out = append(out, list...)
	out = append(out, list...)
	return out
}

// Service fetches displayable notifications from the document store.
type Service struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger, now: time.Now}
}

// ActiveNotifications returns the eligible notifications in display order.
// The active/not-expired filter is pushed down to the store; tier ordering
// happens here because the store sorts the priority field lexically. Store
// errors degrade to an empty result.
func (s *Service) ActiveNotifications(ctx context.Context) []models.Notification {
	now := s.now()
	noExpiry := false
	where := store.Where{
		Fields: map[string]store.Condition{
			"active": {Equals: true},
		},
		Or: []store.Where{
			{Fields: map[string]store.Condition{"expiresAt": {GreaterThan: now}}},
			{Fields: map[string]store.Condition{"expiresAt": {Exists: &noExpiry}}},
		},
	}

	res, err := s.store.Find(ctx, store.Notifications, store.FindOptions{
		Where: &where,
		Sort:  "-createdAt",
		Limit: marqueeLimit,
	})
	if err != nil {
		s.logger.Error("failed to fetch notifications", zap.Error(err))
		return nil
	}

	list := make([]models.Notification, 0, len(res.Docs))
	for _, doc := range res.Docs {
		var n models.Notification
		if err := store.DecodeDoc(doc, &n); err != nil {
			s.logger.Error("failed to decode notification", zap.Error(err))
			continue
		}
		list = append(list, n)
	}

	return Select(list, now)
}

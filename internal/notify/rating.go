package notify

import (
	"context"

	"github.com/alanfo18/stcd/internal/domain/rating"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

func (n *Notifier) RatingHooks() []hooks.Hook[rating.Created] {
	return []hooks.Hook[rating.Created]{
		{Name: "notify_staff_rating", Fn: n.RatingStaff},
	}
}

func (n *Notifier) RatingStaff(ctx context.Context, ev rating.Created) error {
	if ev.Staff == nil || ev.Staff.Phone == "" {
		return nil
	}

	return n.fanOut(ctx, []whatsapp.Message{{
		To:       ev.Staff.Phone,
		Body:     ratingMessage(ev.Rating.Score, ev.Rating.Comment),
		Priority: whatsapp.PriorityNormal,
	}}, models.MessageLog{
		BookingID: ptr(ev.Rating.BookingID),
		StaffID:   ptr(ev.Staff.ID),
		Kind:      models.MessageKindNotice,
	})
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/entity"
	"chorechart/internal/domain/service"
)

// eventNotifier publishes ledger events once the surrounding transaction has committed.
// Publishing never fails the operation; errors are only logged.
type eventNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (n eventNotifier) publish(ctx context.Context, event *service.LedgerEvent) {
	if n.publisher == nil || event == nil || len(event.RecipientIDs) == 0 {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := n.publisher.PublishLedgerEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish ledger event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}

// parentRecipients addresses an event to the kid's linked parent, if any.
func parentRecipients(kid *entity.Profile) []string {
	if kid.ParentID == nil {
		return nil
	}

	return []string{kid.ParentID.String()}
}

func choreCompletedEvent(kid *entity.Profile, chore *entity.Chore, balance int) *service.LedgerEvent {
	return &service.LedgerEvent{
		Type:         service.EventChoreCompleted,
		RecipientIDs: parentRecipients(kid),
		Title:        "家事完成",
		Body:         fmt.Sprintf("%s 完成了「%s」，獲得 %d 點", kid.DisplayName(), chore.Title, chore.PointsValue),
		Data: map[string]string{
			"kid_id":   kid.UserID.String(),
			"chore_id": chore.ID.String(),
			"points":   strconv.Itoa(balance),
		},
	}
}

func redemptionRequestedEvent(kid *entity.Profile, redemption *entity.Redemption) *service.LedgerEvent {
	return &service.LedgerEvent{
		Type:         service.EventRedemptionRequested,
		RecipientIDs: parentRecipients(kid),
		Title:        "新的兌換申請",
		Body:         fmt.Sprintf("%s 想用 %d 點兌換「%s」", kid.DisplayName(), redemption.Cost, redemption.RewardTitle),
		Data: map[string]string{
			"kid_id":        kid.UserID.String(),
			"redemption_id": redemption.ID.String(),
		},
	}
}

func redemptionProcessedEvent(redemption *entity.Redemption) *service.LedgerEvent {
	body := fmt.Sprintf("「%s」的兌換已核准", redemption.RewardTitle)
	if redemption.Status == entity.RedemptionRejected {
		body = fmt.Sprintf("「%s」的兌換被拒絕，%d 點已退回", redemption.RewardTitle, redemption.Cost)
	}

	return &service.LedgerEvent{
		Type:         service.EventRedemptionProcessed,
		RecipientIDs: []string{redemption.UserID.String()},
		Title:        "兌換結果",
		Body:         body,
		Data: map[string]string{
			"redemption_id": redemption.ID.String(),
			"status":        string(redemption.Status),
		},
	}
}

func behaviorLoggedEvent(log *entity.BehaviorLog, balance int) *service.LedgerEvent {
	title := "表現良好 👍"
	if log.ActionType == entity.BehaviorBad {
		title = "需要改進 👎"
	}

	return &service.LedgerEvent{
		Type:         service.EventBehaviorLogged,
		RecipientIDs: []string{log.UserID.String()},
		Title:        title,
		Body:         fmt.Sprintf("點數變動 %+d，目前 %d 點", log.PointsChange, balance),
		Data: map[string]string{
			"action_type": string(log.ActionType),
			"points":      strconv.Itoa(balance),
		},
	}
}

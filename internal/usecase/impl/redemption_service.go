package impl

import (
	"context"
	"log/slog"

	"chorechart/config"
	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/policy"
	"chorechart/internal/domain/repository"
	"chorechart/internal/domain/service"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type redemptionService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	events    eventNotifier
	clock     clock
	logger    *slog.Logger
}

// RedemptionServiceParams holds dependencies for RedemptionService, injected by Fx.
type RedemptionServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewRedemptionService is the constructor for redemptionService.
func NewRedemptionService(params RedemptionServiceParams) (usecase.RedemptionUsecase, error) {
	clk, err := newClock(params.Config)
	if err != nil {
		return nil, err
	}

	return &redemptionService{
		txManager: params.TxManager,
		qrService: params.QRCodeService,
		events:    eventNotifier{publisher: params.Publisher, logger: params.Logger},
		clock:     clk,
		logger:    params.Logger,
	}, nil
}

func (srv *redemptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *redemptionService) ListRedemptions(ctx context.Context, actorID uuid.UUID, status entity.RedemptionStatus) ([]*entity.Redemption, error) {
	if status != "" && !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("status must be PENDING, APPROVED or REJECTED"))
	}

	var redemptions []*entity.Redemption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory.NewProfileRepository(), actorID)
		if err != nil {
			return err
		}

		redemptions, err = repoFactory.NewRedemptionRepository().List(ctx, repository.RedemptionFilter{
			UserID: policy.RedemptionScope(actor),
			Status: status,
		})

		return errors.Wrap(err, "failed to list redemptions")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	return redemptions, nil
}

func (srv *redemptionService) GetRedemption(ctx context.Context, actorID, redemptionID uuid.UUID) (*entity.Redemption, error) {
	var redemption *entity.Redemption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		redemption, err = srv.loadVisible(ctx, repoFactory, actorID, redemptionID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get redemption")
	}

	return redemption, nil
}

// ProcessRedemption approves or rejects a PENDING redemption. A rejection refunds
// the cost recorded at redeem time.
func (srv *redemptionService) ProcessRedemption(
	ctx context.Context,
	actorID, redemptionID uuid.UUID,
	input *usecase.ProcessRedemptionInput,
) (*entity.Redemption, error) {
	var redemption *entity.Redemption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		redemptionRepo := repoFactory.NewRedemptionRepository()

		actor, err := loadActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}

		current, err := findRedemption(ctx, redemptionRepo, redemptionID)
		if err != nil {
			return err
		}

		if err := policy.CheckProcessRedemption(actor); err != nil {
			return errors.WithStack(err)
		}

		action := ""
		if input != nil {
			action = input.Action
		}
		decision, ok := entity.ParseRedemptionDecision(action)
		if !ok {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("action must be approve or reject"))
		}

		processedAt := srv.clock.now()
		status := decision.Status()

		if err := redemptionRepo.MarkProcessed(ctx, current.ID, status, processedAt, actor.UserID); err != nil {
			switch {
			case errors.Is(err, repository.ErrRedemptionNotPending):
				return errors.WithStack(domainerrors.ErrAlreadyProcessed)
			case errors.Is(err, repository.ErrRedemptionNotFound):
				return errors.WithStack(domainerrors.ErrRedemptionNotFound)
			default:
				return errors.Wrap(err, "failed to process redemption")
			}
		}

		if status == entity.RedemptionRejected {
			kid, err := lockProfile(ctx, profileRepo, current.UserID)
			if err != nil {
				return err
			}
			if _, err := credit(ctx, profileRepo, kid, current.Cost); err != nil {
				return err
			}
		}

		current.Status = status
		current.ProcessedAt = &processedAt
		current.ProcessedBy = &actor.UserID
		redemption = current

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to process redemption")
	}

	srv.log(ctx).Info("Redemption processed",
		slog.Any("redemption_id", redemption.ID),
		slog.String("status", string(redemption.Status)),
	)
	srv.events.publish(ctx, redemptionProcessedEvent(redemption))

	return redemption, nil
}

// GetVoucher renders the QR voucher a kid shows when collecting an approved reward.
func (srv *redemptionService) GetVoucher(ctx context.Context, actorID, redemptionID uuid.UUID) ([]byte, error) {
	var redemption *entity.Redemption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		redemption, err = srv.loadVisible(ctx, repoFactory, actorID, redemptionID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get voucher")
	}

	if redemption.Status != entity.RedemptionApproved {
		return nil, errors.WithStack(domainerrors.ErrVoucherUnavailable)
	}

	png, err := srv.qrService.GenerateVoucherQR(service.VoucherData{
		RedemptionID: redemption.ID,
		UserID:       redemption.UserID,
		RewardTitle:  redemption.RewardTitle,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate voucher")
	}

	return png, nil
}

// loadVisible returns a redemption the actor may see. Others' redemptions look missing to kids.
func (srv *redemptionService) loadVisible(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	actorID, redemptionID uuid.UUID,
) (*entity.Redemption, error) {
	actor, err := loadActor(ctx, repoFactory.NewProfileRepository(), actorID)
	if err != nil {
		return nil, err
	}

	redemption, err := findRedemption(ctx, repoFactory.NewRedemptionRepository(), redemptionID)
	if err != nil {
		return nil, err
	}

	if !policy.CanViewRedemption(actor, redemption) {
		return nil, errors.WithStack(domainerrors.ErrRedemptionNotFound)
	}

	return redemption, nil
}

func findRedemption(ctx context.Context, redemptionRepo repository.RedemptionRepository, id uuid.UUID) (*entity.Redemption, error) {
	redemption, err := redemptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrRedemptionNotFound)
		}

		return nil, errors.Wrap(err, "failed to find redemption")
	}

	return redemption, nil
}

package queue

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

const (
	DefaultCapacityThreshold = 0.8
	DefaultPromoteMax        = 5
	DefaultUpcomingMax       = 10
	DefaultInvitationTTL     = 7 * 24 * time.Hour
	DefaultPromotionCooldown = 20 * time.Hour

	// доля квоты региона, открываемая за один запуск
	promoteQuotaDivisor = 10
	upcomingSlotFactor  = 2
)

type Config struct {
	CapacityThreshold float64
	PromoteMax        int
	UpcomingMax       int
	InvitationTTL     time.Duration
	PromotionCooldown time.Duration
}

func DefaultConfig() Config {
	return Config{
		CapacityThreshold: DefaultCapacityThreshold,
		PromoteMax:        DefaultPromoteMax,
		UpcomingMax:       DefaultUpcomingMax,
		InvitationTTL:     DefaultInvitationTTL,
		PromotionCooldown: DefaultPromotionCooldown,
	}
}

type MaintenanceReport struct {
	Skipped          bool
	ScoresUpdated    int
	Promoted         int
	UpcomingNotified int
	InvitationsReset int64
}

type upcomingNotice struct {
	entry      entities.WaitlistEntry
	regionName string
}

type Queue struct {
	waitlist     WaitlistRepository
	regions      RegionRepository
	locker       BatchLocker
	mailer       Mailer
	scoreFactory ScoreFactory
	txManager    TxManager
	log          serviceLogger
	config       Config
}

func New(
	waitlist WaitlistRepository,
	regions RegionRepository,
	locker BatchLocker,
	mailer Mailer,
	scoreFactory ScoreFactory,
	txManager TxManager,
	log serviceLogger,
	config Config,
) *Queue {
	if config.CapacityThreshold <= 0 {
		config.CapacityThreshold = DefaultCapacityThreshold
	}
	if config.PromoteMax <= 0 {
		config.PromoteMax = DefaultPromoteMax
	}
	if config.UpcomingMax <= 0 {
		config.UpcomingMax = DefaultUpcomingMax
	}
	if config.InvitationTTL <= 0 {
		config.InvitationTTL = DefaultInvitationTTL
	}
	if config.PromotionCooldown <= 0 {
		config.PromotionCooldown = DefaultPromotionCooldown
	}

	return &Queue{
		waitlist:     waitlist,
		regions:      regions,
		locker:       locker,
		mailer:       mailer,
		scoreFactory: scoreFactory,
		txManager:    txManager,
		log:          log,
		config:       config,
	}
}

// Apply ставит заявку в очередь активации региона.
func (s *Queue) Apply(ctx context.Context, entry entities.WaitlistEntry) (*entities.WaitlistEntry, error) {
	if entry.FirstName == "" || entry.LastName == "" || entry.Email == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(entry.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidID(entry.RegionID) {
		return nil, ErrInvalidRegionID
	}

	entry.Status = entities.WaitlistWaiting
	entry.PriorityScore = entry.Points
	if entry.EnrolledAt.IsZero() {
		entry.EnrolledAt = time.Now().UTC()
	}

	created, err := s.waitlist.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("enroll waitlist entry: %w", err)
	}
	return created, nil
}

// RunMaintenance выполняет четыре прохода обслуживания очереди в одной
// транзакции под advisory-блокировкой: пересчёт приоритетов, добор по
// квоте, уведомление ближайших кандидатов и сброс протухших
// приглашений. Повторный запуск сразу после успешного ничего не меняет.
func (s *Queue) RunMaintenance(ctx context.Context) (*MaintenanceReport, error) {
	report := &MaintenanceReport{}

	var promoted []entities.WaitlistEntry
	var upcoming []upcomingNotice

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.locker.TryLock(ctx)
		if err != nil {
			return fmt.Errorf("acquire maintenance lock: %w", err)
		}
		if !locked {
			report.Skipped = true
			return nil
		}

		now := time.Now().UTC()

		if err := s.recalculatePriorities(ctx, now, report); err != nil {
			return err
		}

		promoted, err = s.promoteByCapacity(ctx, now, report)
		if err != nil {
			return err
		}

		upcoming, err = s.collectUpcoming(ctx, report)
		if err != nil {
			return err
		}

		reset, err := s.waitlist.ResetExpiredInvitations(ctx, now.Add(-s.config.InvitationTTL))
		if err != nil {
			return fmt.Errorf("reset expired invitations: %w", err)
		}
		report.InvitationsReset = reset

		return nil
	})
	if err != nil {
		return nil, err
	}
	if report.Skipped {
		s.log.Warn("queue maintenance skipped, another runner holds the lock")
		return report, nil
	}

	// письма уходят после коммита: сбой доставки не откатывает статусы
	for _, entry := range promoted {
		if err := s.mailer.SendActivation(ctx, entry); err != nil {
			s.log.Warn("activation email failed",
				logger.NewField("entry", entry.ID),
				logger.NewField("error", err),
			)
		}
	}
	for _, notice := range upcoming {
		if err := s.mailer.SendUpcomingActivation(ctx, notice.entry, notice.regionName); err != nil {
			s.log.Warn("upcoming activation email failed",
				logger.NewField("entry", notice.entry.ID),
				logger.NewField("error", err),
			)
		}
	}

	return report, nil
}

func (s *Queue) recalculatePriorities(ctx context.Context, now time.Time, report *MaintenanceReport) error {
	entries, err := s.waitlist.ListWaiting(ctx)
	if err != nil {
		return fmt.Errorf("list waitlist entries: %w", err)
	}

	for _, entry := range entries {
		referralPoints, err := s.waitlist.SumCompletedReferralPoints(ctx, entry.ID)
		if err != nil {
			return fmt.Errorf("sum referral points for %s: %w", entry.ID, err)
		}

		score := s.scoreFactory.CalculateScore(entry.Points, entry.EnrolledAt, now, referralPoints)
		if score == entry.PriorityScore {
			continue
		}

		if err := s.waitlist.UpdatePriorityScore(ctx, entry.ID, score); err != nil {
			return fmt.Errorf("update priority score for %s: %w", entry.ID, err)
		}
		report.ScoresUpdated++
	}

	return nil
}

func (s *Queue) promoteByCapacity(ctx context.Context, now time.Time, report *MaintenanceReport) ([]entities.WaitlistEntry, error) {
	regions, err := s.regions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}

	var promoted []entities.WaitlistEntry
	for _, region := range regions {
		if region.Status != entities.RegionActive || region.ActiveQuota <= 0 {
			continue
		}
		if region.LastPromotedAt != nil && now.Sub(*region.LastPromotedAt) < s.config.PromotionCooldown {
			continue
		}

		occupied, err := s.waitlist.CountActiveByRegion(ctx, region.ID)
		if err != nil {
			return nil, fmt.Errorf("count active in region %s: %w", region.ID, err)
		}

		utilization := float64(occupied) / float64(region.ActiveQuota)
		if utilization >= s.config.CapacityThreshold {
			continue
		}

		slots := region.ActiveQuota / promoteQuotaDivisor
		if slots > s.config.PromoteMax {
			slots = s.config.PromoteMax
		}
		if slots == 0 {
			continue
		}

		top, err := s.waitlist.ListTopWaitingByRegion(ctx, region.ID, slots)
		if err != nil {
			return nil, fmt.Errorf("list top entries in region %s: %w", region.ID, err)
		}
		if len(top) == 0 {
			continue
		}

		ids := make([]string, len(top))
		for i, entry := range top {
			ids[i] = entry.ID
		}
		if _, err := s.waitlist.Approve(ctx, ids); err != nil {
			return nil, fmt.Errorf("approve entries in region %s: %w", region.ID, err)
		}
		if err := s.regions.SetLastPromotedAt(ctx, region.ID, now); err != nil {
			return nil, fmt.Errorf("stamp promotion time for region %s: %w", region.ID, err)
		}

		promoted = append(promoted, top...)
		report.Promoted += len(top)
	}

	return promoted, nil
}

func (s *Queue) collectUpcoming(ctx context.Context, report *MaintenanceReport) ([]upcomingNotice, error) {
	regions, err := s.regions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}

	var notices []upcomingNotice
	seen := make(map[string]struct{})

	for _, region := range regions {
		if region.Status != entities.RegionActive {
			continue
		}

		occupied, err := s.waitlist.CountActiveByRegion(ctx, region.ID)
		if err != nil {
			return nil, fmt.Errorf("count active in region %s: %w", region.ID, err)
		}

		openSlots := region.ActiveQuota - occupied
		if openSlots <= 0 {
			continue
		}

		limit := openSlots * upcomingSlotFactor
		if limit > s.config.UpcomingMax {
			limit = s.config.UpcomingMax
		}

		top, err := s.waitlist.ListTopWaitingByRegion(ctx, region.ID, limit)
		if err != nil {
			return nil, fmt.Errorf("list top entries in region %s: %w", region.ID, err)
		}

		for _, entry := range top {
			if _, ok := seen[entry.ID]; ok {
				continue
			}
			seen[entry.ID] = struct{}{}
			notices = append(notices, upcomingNotice{entry: entry, regionName: region.Name})
			report.UpcomingNotified++
		}
	}

	return notices, nil
}

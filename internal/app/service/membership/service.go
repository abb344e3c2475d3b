package membership

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	models "github.com/fatflowers/membership/internal/models"
	"github.com/fatflowers/membership/pkg/config"
	"github.com/fatflowers/membership/pkg/logctx"
	"github.com/fatflowers/membership/pkg/metrics"
	"github.com/fatflowers/membership/pkg/tool"
	types "github.com/fatflowers/membership/pkg/types"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	membershipSequenceName = "membership_number"
	// maxCreateAttempts bounds retries after a duplicate membership number.
	maxCreateAttempts = 3
)

type Service struct {
	cfg     *config.Config
	db      *gorm.DB
	log     *zap.SugaredLogger
	metrics *metrics.BusinessMetrics
	now     func() time.Time
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger, m *metrics.BusinessMetrics) *Service {
	return &Service{cfg: cfg, db: db, log: log, metrics: m, now: time.Now}
}

type CreateRequest struct {
	MemberName string         `json:"member_name" binding:"required,max=128"`
	Email      string         `json:"email" binding:"required,email,max=256"`
	Phone      string         `json:"phone" binding:"max=64"`
	Address    string         `json:"address" binding:"max=512"`
	Duration   types.Duration `json:"duration" binding:"required"`
	OperatorID string         `json:"-"`
}

type ExtendRequest struct {
	ID       string         `json:"id" binding:"required"`
	Duration types.Duration `json:"duration" binding:"required"`
	// ExpectedVersion, when set, must match the stored version.
	ExpectedVersion int64  `json:"expected_version"`
	OperatorID      string `json:"-"`
}

type CancelRequest struct {
	ID              string `json:"id" binding:"required"`
	ExpectedVersion int64  `json:"expected_version"`
	Reason          string `json:"reason" binding:"max=256"`
	OperatorID      string `json:"-"`
}

type UpdateProfileRequest struct {
	ID              string  `json:"id" binding:"required"`
	ExpectedVersion int64   `json:"expected_version"`
	MemberName      *string `json:"member_name" binding:"omitempty,min=1,max=128"`
	Email           *string `json:"email" binding:"omitempty,email,max=256"`
	Phone           *string `json:"phone" binding:"omitempty,max=64"`
	Address         *string `json:"address" binding:"omitempty,max=512"`
	OperatorID      string  `json:"-"`
}

// MembershipItem is a membership as readers see it: Status is the derived status.
type MembershipItem struct {
	*models.Membership
	Status       types.MembershipStatus `json:"status"`
	StoredStatus types.MembershipStatus `json:"stored_status"`
}

func (s *Service) today() time.Time {
	return tool.DateOf(s.now())
}

func (s *Service) toItem(m *models.Membership, today time.Time) *MembershipItem {
	return &MembershipItem{Membership: m, Status: m.EffectiveStatus(today), StoredStatus: m.Status}
}

// Create registers a new active membership starting today.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (item *MembershipItem, err error) {
	defer func(start time.Time) { s.metrics.ObserveAction(string(types.MembershipActionCreate), err, start) }(time.Now())

	if req == nil || strings.TrimSpace(req.MemberName) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: member_name and email required", ErrInvalidInput)
	}
	if !req.Duration.Valid() {
		return nil, fmt.Errorf("%w: unknown duration %q", ErrInvalidInput, req.Duration)
	}

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		var m *models.Membership
		m, err = s.create(ctx, req)
		if err == nil {
			logctx.FromCtx(ctx, s.log).Infow("membership created", "membership_id", m.ID, "membership_number", m.MembershipNumber, "end_date", m.EndDate.Format(time.DateOnly))
			return s.toItem(m, tool.DateOf(m.UpdatedAt)), nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		logctx.FromCtx(ctx, s.log).Warnw("duplicate membership number, resyncing sequence", "attempt", attempt)
		if rerr := s.resyncSequence(ctx); rerr != nil {
			return nil, fmt.Errorf("failed to resync membership sequence: %w", rerr)
		}
	}
	return nil, fmt.Errorf("%w: could not allocate a unique membership number", ErrConcurrencyConflict)
}

func (s *Service) create(ctx context.Context, req *CreateRequest) (*models.Membership, error) {
	var m *models.Membership
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := s.nextSequence(ctx, tx)
		if err != nil {
			return err
		}
		number, err := NextMembershipNumber(seq - 1)
		if err != nil {
			return err
		}
		m, err = newMembership(req, number, s.now())
		if err != nil {
			return err
		}
		if err := tx.WithContext(ctx).Create(m).Error; err != nil {
			return fmt.Errorf("failed to insert membership: %w", err)
		}
		return s.writeLog(ctx, tx, types.MembershipActionCreate, req.OperatorID, nil, m, datatypes.JSONMap{"duration": req.Duration})
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// nextSequence increments the membership number counter and returns the new value.
// The row is seeded from the current membership count the first time it is used.
func (s *Service) nextSequence(ctx context.Context, tx *gorm.DB) (int64, error) {
	increment := func() (int64, error) {
		res := tx.WithContext(ctx).Model(&models.MembershipSequence{}).
			Where("name = ?", membershipSequenceName).
			UpdateColumn("value", gorm.Expr("value + 1"))
		return res.RowsAffected, res.Error
	}

	n, err := increment()
	if err != nil {
		return 0, fmt.Errorf("failed to increment membership sequence: %w", err)
	}
	if n == 0 {
		var count int64
		if err := tx.WithContext(ctx).Model(&models.Membership{}).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to count memberships: %w", err)
		}
		seed := &models.MembershipSequence{Name: membershipSequenceName, Value: count}
		if err := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
			return 0, fmt.Errorf("failed to seed membership sequence: %w", err)
		}
		if n, err = increment(); err != nil {
			return 0, fmt.Errorf("failed to increment membership sequence: %w", err)
		}
		if n == 0 {
			return 0, fmt.Errorf("membership sequence %q missing after seed", membershipSequenceName)
		}
	}

	var seq models.MembershipSequence
	if err := tx.WithContext(ctx).Where("name = ?", membershipSequenceName).First(&seq).Error; err != nil {
		return 0, fmt.Errorf("failed to read membership sequence: %w", err)
	}
	return seq.Value, nil
}

// resyncSequence moves the counter past the highest number already stored, which
// recovers from rows written outside the sequence.
func (s *Service) resyncSequence(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last models.Membership
		err := tx.Where("membership_number LIKE ?", MembershipNumberPrefix+"%").
			Order("membership_number desc").Limit(1).Find(&last).Error
		if err != nil {
			return err
		}
		if last.ID == "" {
			return nil
		}
		highest, err := strconv.ParseInt(strings.TrimPrefix(last.MembershipNumber, MembershipNumberPrefix), 10, 64)
		if err != nil {
			return fmt.Errorf("unparsable membership number %q: %w", last.MembershipNumber, err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.MembershipSequence{Name: membershipSequenceName, Value: highest}).Error; err != nil {
			return err
		}
		return tx.Model(&models.MembershipSequence{}).
			Where("name = ? AND value < ?", membershipSequenceName, highest).
			UpdateColumn("value", highest).Error
	})
}

// Extend pushes an active membership's end date forward, or renews an expired one
// from today.
func (s *Service) Extend(ctx context.Context, req *ExtendRequest) (item *MembershipItem, err error) {
	action := types.MembershipActionExtend
	defer func(start time.Time) { s.metrics.ObserveAction(string(action), err, start) }(time.Now())

	if req == nil || req.ID == "" {
		return nil, fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	if !req.Duration.Valid() {
		return nil, fmt.Errorf("%w: unknown duration %q", ErrInvalidInput, req.Duration)
	}

	var next *models.Membership
	err = s.mutate(ctx, req.ID, req.ExpectedVersion, func(cur *models.Membership, now time.Time) (*models.Membership, types.MembershipAction, datatypes.JSONMap, error) {
		var err error
		next, action, err = Extend(cur, req.Duration, now)
		return next, action, datatypes.JSONMap{"duration": req.Duration}, err
	}, req.OperatorID)
	if err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, s.log).Infow("membership extended", "membership_id", next.ID, "action", action, "end_date", next.EndDate.Format(time.DateOnly))
	return s.toItem(next, tool.DateOf(next.UpdatedAt)), nil
}

// Cancel cancels an active membership.
func (s *Service) Cancel(ctx context.Context, req *CancelRequest) (item *MembershipItem, err error) {
	defer func(start time.Time) { s.metrics.ObserveAction(string(types.MembershipActionCancel), err, start) }(time.Now())

	if req == nil || req.ID == "" {
		return nil, fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	var next *models.Membership
	err = s.mutate(ctx, req.ID, req.ExpectedVersion, func(cur *models.Membership, now time.Time) (*models.Membership, types.MembershipAction, datatypes.JSONMap, error) {
		var err error
		next, err = Cancel(cur, now)
		return next, types.MembershipActionCancel, datatypes.JSONMap{"reason": req.Reason}, err
	}, req.OperatorID)
	if err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, s.log).Infow("membership cancelled", "membership_id", next.ID)
	return s.toItem(next, tool.DateOf(next.UpdatedAt)), nil
}

// UpdateProfile edits contact fields. Status and dates are untouched.
func (s *Service) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (item *MembershipItem, err error) {
	defer func(start time.Time) {
		s.metrics.ObserveAction(string(types.MembershipActionUpdateProfile), err, start)
	}(time.Now())

	if req == nil || req.ID == "" {
		return nil, fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	if req.MemberName == nil && req.Email == nil && req.Phone == nil && req.Address == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	var next *models.Membership
	err = s.mutate(ctx, req.ID, req.ExpectedVersion, func(cur *models.Membership, now time.Time) (*models.Membership, types.MembershipAction, datatypes.JSONMap, error) {
		cp := *cur
		if req.MemberName != nil {
			if strings.TrimSpace(*req.MemberName) == "" {
				return nil, "", nil, fmt.Errorf("%w: member_name cannot be blank", ErrInvalidInput)
			}
			cp.MemberName = *req.MemberName
		}
		if req.Email != nil {
			cp.Email = *req.Email
		}
		if req.Phone != nil {
			cp.Phone = *req.Phone
		}
		if req.Address != nil {
			cp.Address = *req.Address
		}
		cp.UpdatedAt = now
		next = &cp
		return next, types.MembershipActionUpdateProfile, datatypes.JSONMap{}, nil
	}, req.OperatorID)
	if err != nil {
		return nil, err
	}
	return s.toItem(next, tool.DateOf(next.UpdatedAt)), nil
}

type mutation func(cur *models.Membership, now time.Time) (*models.Membership, types.MembershipAction, datatypes.JSONMap, error)

// mutate loads a membership, applies fn and writes the result guarded by the
// version read (or the caller's expected version), logging the change in the same
// transaction.
func (s *Service) mutate(ctx context.Context, id string, expectedVersion int64, fn mutation, operatorID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.getWithTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if expectedVersion != 0 && cur.Version != expectedVersion {
			return fmt.Errorf("%w: membership %s is at version %d, expected %d", ErrConcurrencyConflict, id, cur.Version, expectedVersion)
		}
		next, action, extra, err := fn(cur, s.now())
		if err != nil {
			return err
		}
		if err := s.updateWithVersion(ctx, tx, cur.Version, next); err != nil {
			return err
		}
		return s.writeLog(ctx, tx, action, operatorID, cur, next, extra)
	})
}

func (s *Service) updateWithVersion(ctx context.Context, tx *gorm.DB, version int64, m *models.Membership) error {
	res := tx.WithContext(ctx).Model(&models.Membership{}).
		Where("id = ? AND version = ?", m.ID, version).
		Updates(map[string]any{
			"member_name": m.MemberName,
			"email":       m.Email,
			"phone":       m.Phone,
			"address":     m.Address,
			"duration":    m.Duration,
			"status":      m.Status,
			"end_date":    m.EndDate,
			"version":     version + 1,
			"updated_at":  m.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update membership: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: membership %s changed concurrently", ErrConcurrencyConflict, m.ID)
	}
	m.Version = version + 1
	return nil
}

func (s *Service) writeLog(ctx context.Context, tx *gorm.DB, action types.MembershipAction, operatorID string, before, after *models.Membership, extra datatypes.JSONMap) error {
	if extra == nil {
		extra = datatypes.JSONMap{}
	}
	entry := &models.MembershipLog{
		ID:               tool.GenerateUUIDV7(),
		MembershipID:     after.ID,
		MembershipNumber: after.MembershipNumber,
		Action:           action,
		OperatorID:       operatorID,
		Before:           datatypes.NewJSONType(before),
		After:            datatypes.NewJSONType(after),
		Extra:            extra,
		CreatedAt:        after.UpdatedAt,
	}
	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to save membership log: %w", err)
	}
	return nil
}

func (s *Service) getWithTx(ctx context.Context, tx *gorm.DB, id string) (*models.Membership, error) {
	if !tool.IsUUID(id) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var m models.Membership
	if err := tx.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	return &m, nil
}

func (s *Service) Get(ctx context.Context, id string) (*MembershipItem, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	m, err := s.getWithTx(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return s.toItem(m, s.today()), nil
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*MembershipItem, error) {
	if number == "" {
		return nil, fmt.Errorf("%w: membership number required", ErrInvalidInput)
	}
	var m models.Membership
	if err := s.db.WithContext(ctx).Where("membership_number = ?", number).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, number)
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	return s.toItem(&m, s.today()), nil
}

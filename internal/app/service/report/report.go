package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fatflowers/membership/internal/app/service/membership"
	models "github.com/fatflowers/membership/internal/models"
	"github.com/fatflowers/membership/pkg/config"
	"github.com/fatflowers/membership/pkg/logctx"
	"github.com/fatflowers/membership/pkg/tool"
	"github.com/fatflowers/membership/pkg/types"
)

var ErrInvalidRequest = errors.New("invalid report request")

type ReportType string

const (
	// Snapshot counts over the membership table
	ReportTypeStatusCount       ReportType = "status_count"
	ReportTypeDurationCount     ReportType = "duration_count"
	ReportTypeExpiringSoonCount ReportType = "expiring_soon_count"

	// Daily series
	ReportTypeDailyNewMembershipCount ReportType = "daily_new_membership_count"
	ReportTypeDailyTransactionCount   ReportType = "daily_transaction_count"
)

var reportTypes = []ReportType{
	ReportTypeStatusCount,
	ReportTypeDurationCount,
	ReportTypeExpiringSoonCount,
	ReportTypeDailyNewMembershipCount,
	ReportTypeDailyTransactionCount,
}

var (
	membershipFilterFields = []string{"duration", "created_by", "start_date", "end_date"}
	logFilterFields        = []string{"action", "operator_id", "created_at"}
)

// validFilters lists, per report, the filter fields that apply to it. Filters on
// other fields are dropped for that report.
var validFilters = map[ReportType][]string{
	ReportTypeStatusCount:             membershipFilterFields,
	ReportTypeDurationCount:           membershipFilterFields,
	ReportTypeExpiringSoonCount:       membershipFilterFields,
	ReportTypeDailyNewMembershipCount: membershipFilterFields,
	ReportTypeDailyTransactionCount:   logFilterFields,
}

type DataItem struct {
	ID ReportType `json:"id"`
}

type Request struct {
	Filters   []*types.CommonFilter `json:"filters"`
	DataItems []*DataItem           `json:"data_items"`
	// ExpiringWithinDays overrides report.expiring_within_days for expiring_soon_count.
	ExpiringWithinDays int `json:"expiring_within_days"`
}

func (r *Request) Validate() error {
	if r == nil || len(r.DataItems) == 0 {
		return fmt.Errorf("%w: at least one data item required", ErrInvalidRequest)
	}
	for _, di := range r.DataItems {
		if di == nil || !lo.Contains(reportTypes, di.ID) {
			return fmt.Errorf("%w: invalid data item id", ErrInvalidRequest)
		}
	}
	allFields := append(append([]string{}, membershipFilterFields...), logFilterFields...)
	for _, f := range r.Filters {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		if !lo.Contains(allFields, f.Field) {
			return fmt.Errorf("%w: field %q is not filterable", ErrInvalidRequest, f.Field)
		}
	}
	if r.ExpiringWithinDays < 0 {
		return fmt.Errorf("%w: expiring_within_days must not be negative", ErrInvalidRequest)
	}
	return nil
}

// filtersFor returns the filters that apply to the given report.
func (r *Request) filtersFor(rt ReportType) []clause.Expression {
	exprs := make([]clause.Expression, 0, len(r.Filters))
	for _, f := range r.Filters {
		if lo.Contains(validFilters[rt], f.Field) {
			exprs = append(exprs, f)
		}
	}
	return exprs
}

type ResponseDataItem struct {
	Date  string `json:"date,omitempty"`
	Label string `json:"label,omitempty"`
	Value int64  `json:"value"`
}

type Response struct {
	DataItems map[ReportType][]ResponseDataItem `json:"data_items"`
}

type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
	now func() time.Time
}

func New(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log, now: time.Now}
}

// dayOf renders a date or timestamp column as YYYY-MM-DD in the current dialect.
func (s *Service) dayOf(column string) string {
	if s.db.Dialector.Name() == "postgres" {
		return fmt.Sprintf("TO_CHAR(%s, 'YYYY-MM-DD')", column)
	}
	return fmt.Sprintf("substr(%s, 1, 10)", column)
}

func (s *Service) getStatusCount(ctx context.Context, request *Request) ([]ResponseDataItem, error) {
	today := tool.DateOf(s.now())
	statuses := []types.MembershipStatus{types.MembershipStatusActive, types.MembershipStatusExpired, types.MembershipStatusCancelled}
	results := make([]ResponseDataItem, 0, len(statuses))
	for _, st := range statuses {
		var n int64
		err := s.db.WithContext(ctx).Model(&models.Membership{}).
			Where(request.filtersFor(ReportTypeStatusCount)).
			Where(membership.StatusCondition(st, today)).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		results = append(results, ResponseDataItem{Label: string(st), Value: n})
	}
	return results, nil
}

func (s *Service) getDurationCount(ctx context.Context, request *Request) ([]ResponseDataItem, error) {
	var results []ResponseDataItem
	q := s.db.WithContext(ctx).Model(&models.Membership{}).
		Select("duration as label, count(*) as value").
		Where(request.filtersFor(ReportTypeDurationCount)).
		Group("duration").
		Order("label")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getExpiringSoonCount(ctx context.Context, request *Request) ([]ResponseDataItem, error) {
	within := request.ExpiringWithinDays
	if within == 0 {
		within = s.cfg.Report.ExpiringWithinDays
	}
	today := tool.DateOf(s.now())
	until := today.AddDate(0, 0, within)

	var results []ResponseDataItem
	day := s.dayOf("end_date")
	q := s.db.WithContext(ctx).Model(&models.Membership{}).
		Select(day+" as date, count(*) as value").
		Where(request.filtersFor(ReportTypeExpiringSoonCount)).
		Where("status = ?", types.MembershipStatusActive).
		Where("end_date >= ? AND end_date <= ?", today, until).
		Group(day).
		Order("date")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailyNewMembershipCount(ctx context.Context, request *Request) ([]ResponseDataItem, error) {
	var results []ResponseDataItem
	day := s.dayOf("start_date")
	q := s.db.WithContext(ctx).Model(&models.Membership{}).
		Select(day + " as date, count(*) as value").
		Where(request.filtersFor(ReportTypeDailyNewMembershipCount)).
		Group(day).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true})
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailyTransactionCount(ctx context.Context, request *Request) ([]ResponseDataItem, error) {
	var results []ResponseDataItem
	day := s.dayOf("created_at")
	q := s.db.WithContext(ctx).Model(&models.MembershipLog{}).
		Select(day + " as date, action as label, count(*) as value").
		Where(request.filtersFor(ReportTypeDailyTransactionCount)).
		Group(day).
		Group("action").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
		Order("label")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getReport(ctx context.Context, request *Request, dataItem *DataItem) ([]ResponseDataItem, error) {
	switch dataItem.ID {
	case ReportTypeStatusCount:
		return s.getStatusCount(ctx, request)
	case ReportTypeDurationCount:
		return s.getDurationCount(ctx, request)
	case ReportTypeExpiringSoonCount:
		return s.getExpiringSoonCount(ctx, request)
	case ReportTypeDailyNewMembershipCount:
		return s.getDailyNewMembershipCount(ctx, request)
	case ReportTypeDailyTransactionCount:
		return s.getDailyTransactionCount(ctx, request)
	default:
		return nil, fmt.Errorf("%w: invalid data item id: %s", ErrInvalidRequest, dataItem.ID)
	}
}

// GetReport computes every requested data item concurrently. The first failure
// cancels the rest.
func (s *Service) GetReport(ctx context.Context, request *Request) (*Response, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	entries := make([]lo.Entry[ReportType, []ResponseDataItem], len(request.DataItems))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range request.DataItems {
		g.Go(func() error {
			res, err := s.getReport(gctx, request, item)
			if err != nil {
				return fmt.Errorf("report %s: %w", item.ID, err)
			}
			entries[i] = lo.Entry[ReportType, []ResponseDataItem]{Key: item.ID, Value: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("failed to build report", "error", err)
		return nil, err
	}
	return &Response{DataItems: lo.FromEntries(entries)}, nil
}

var Module = fx.Options(
	fx.Provide(New),
)

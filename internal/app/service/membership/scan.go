package membership

import (
	"context"
	"fmt"
	"time"

	models "github.com/fatflowers/membership/internal/models"
	types "github.com/fatflowers/membership/pkg/types"

	"github.com/samber/lo"
	"gorm.io/gorm/clause"
)

const (
	defaultScanSize = 10
	maxScanSize     = 500
)

// filterableFields are the membership columns list clients may filter on.
var filterableFields = []string{
	"id", "membership_number", "member_name", "email", "phone", "address",
	"duration", "status", "start_date", "end_date", "created_by", "created_at", "updated_at",
}

var sortableFields = []string{
	"membership_number", "member_name", "email", "duration", "status",
	"start_date", "end_date", "created_at", "updated_at",
}

var logFilterableFields = []string{"membership_id", "membership_number", "action", "operator_id", "created_at"}

type ScanRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanResponse struct {
	Items []*MembershipItem `json:"items"`
	Total int64             `json:"total"`
}

type ScanLogsRequest struct {
	Filters []*types.CommonFilter `json:"filters"`
	From    int                   `json:"from"`
	Size    int                   `json:"size"`
}

type ScanLogsResponse struct {
	Items []*models.MembershipLog `json:"items"`
	Total int64                   `json:"total"`
}

// statusFilter matches the derived status, so "expired" includes active rows whose
// end date has passed.
type statusFilter struct {
	statuses []types.MembershipStatus
	today    time.Time
}

func (f statusFilter) Build(builder clause.Builder) {
	exprs := make([]clause.Expression, 0, len(f.statuses))
	for _, st := range f.statuses {
		exprs = append(exprs, StatusCondition(st, f.today))
	}
	clause.Or(exprs...).Build(builder)
}

// StatusCondition is the SQL form of models.Membership.EffectiveStatus.
func StatusCondition(status types.MembershipStatus, today time.Time) clause.Expression {
	switch status {
	case types.MembershipStatusActive:
		return clause.And(
			clause.Eq{Column: "status", Value: types.MembershipStatusActive},
			clause.Gte{Column: "end_date", Value: today},
		)
	case types.MembershipStatusExpired:
		return clause.Or(
			clause.Eq{Column: "status", Value: types.MembershipStatusExpired},
			clause.And(
				clause.Eq{Column: "status", Value: types.MembershipStatusActive},
				clause.Lt{Column: "end_date", Value: today},
			),
		)
	default:
		return clause.Eq{Column: "status", Value: status}
	}
}

// whereFilters validates filters against a column whitelist and converts them into
// expressions; status filters on memberships use the derived-status rule.
func whereFilters(filters []*types.CommonFilter, allowed []string, today time.Time, deriveStatus bool) ([]clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(filters))
	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !lo.Contains(allowed, f.Field) {
			return nil, fmt.Errorf("%w: field %q is not filterable", ErrInvalidInput, f.Field)
		}
		if deriveStatus && f.Field == "status" {
			sf, err := toStatusFilter(f, today)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, sf)
			continue
		}
		exprs = append(exprs, f)
	}
	return exprs, nil
}

func toStatusFilter(f *types.CommonFilter, today time.Time) (clause.Expression, error) {
	if f.Operator != types.CommonFilterOperatorEq && f.Operator != types.CommonFilterOperatorIn {
		return nil, fmt.Errorf("%w: status supports eq and in only", ErrInvalidInput)
	}
	statuses := make([]types.MembershipStatus, 0, len(f.Values))
	for _, v := range f.Values {
		st := types.MembershipStatus(fmt.Sprint(v))
		if !st.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, st)
		}
		statuses = append(statuses, st)
	}
	return statusFilter{statuses: statuses, today: today}, nil
}

func normalizePage(from, size *int) {
	if *size <= 0 {
		*size = defaultScanSize
	}
	if *size > maxScanSize {
		*size = maxScanSize
	}
	if *from < 0 {
		*from = 0
	}
}

// Scan implements the paginated, filterable membership list.
func (s *Service) Scan(ctx context.Context, req *ScanRequest) (*ScanResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidInput)
	}
	normalizePage(&req.From, &req.Size)
	today := s.today()

	exprs, err := whereFilters(req.Filters, filterableFields, today, true)
	if err != nil {
		return nil, err
	}
	if req.SortBy != "" && !lo.Contains(sortableFields, req.SortBy) {
		return nil, fmt.Errorf("%w: field %q is not sortable", ErrInvalidInput, req.SortBy)
	}

	tx := s.db.WithContext(ctx).Model(&models.Membership{})
	if len(exprs) > 0 {
		tx = tx.Where(clause.Where{Exprs: exprs})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count memberships: %w", err)
	}

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "membership_number"
	}
	q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: sortBy}, Desc: req.SortOrder != "asc"}}})

	var rows []*models.Membership
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	items := lo.Map(rows, func(m *models.Membership, _ int) *MembershipItem { return s.toItem(m, today) })
	return &ScanResponse{Items: items, Total: total}, nil
}

// ScanLogs lists the membership transaction history, newest first.
func (s *Service) ScanLogs(ctx context.Context, req *ScanLogsRequest) (*ScanLogsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidInput)
	}
	normalizePage(&req.From, &req.Size)

	exprs, err := whereFilters(req.Filters, logFilterableFields, s.today(), false)
	if err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx).Model(&models.MembershipLog{})
	if len(exprs) > 0 {
		tx = tx.Where(clause.Where{Exprs: exprs})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count membership logs: %w", err)
	}

	var rows []*models.MembershipLog
	q := tx.Order("created_at desc").Order("id desc").Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list membership logs: %w", err)
	}
	return &ScanLogsResponse{Items: rows, Total: total}, nil
}

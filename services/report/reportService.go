package report

import (
	"fmt"
	"time"

	"port-pass/services/storage"
	reportTypes "port-pass/types/report"
	"port-pass/utils"
)

// Service computes daily issuance/revenue summaries from the entity store.
type Service struct {
	store storage.Storage
}

func NewReportService(store storage.Storage) *Service {
	return &Service{store: store}
}

// DailyReport aggregates all passes created within the local calendar day of
// date. Revenue is summed in cents; per-type revenues reconcile exactly to the
// total because no floating point is involved anywhere.
func (s *Service) DailyReport(date time.Time) (*reportTypes.DailyReport, error) {
	passes, err := s.store.GetPassesByDate(date)
	if err != nil {
		return nil, fmt.Errorf("daily report: %w", err)
	}

	passNumbers := make([]string, 0, len(passes))
	byTypeCents := make(map[string]int64)
	byTypeCount := make(map[string]int)
	var totalCents int64

	for _, p := range passes {
		passNumbers = append(passNumbers, p.PassNumber)
		label := p.PassType.Label()
		byTypeCount[label]++
		byTypeCents[label] += p.AmountCents
		totalCents += p.AmountCents
	}

	passByType := make(map[string]reportTypes.PassTypeSummary, len(byTypeCount))
	for label, count := range byTypeCount {
		passByType[label] = reportTypes.PassTypeSummary{
			Count:   count,
			Revenue: utils.FormatCents(byTypeCents[label]),
		}
	}

	return &reportTypes.DailyReport{
		Date:         date.Format("2006-01-02"),
		TotalPasses:  len(passes),
		PassNumbers:  passNumbers,
		TotalRevenue: utils.FormatCents(totalCents),
		PassByType:   passByType,
	}, nil
}

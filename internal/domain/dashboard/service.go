// Package dashboard assembles the landing-page stat cards: one count per
// backend service plus the most recently registered patients.
package dashboard

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/medgate/medgate/internal/domain/patients"
)

const recentPatientLimit = 5

// Counter is the count slice of a domain service.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// PatientSource lists patients for the recent-patients card.
type PatientSource interface {
	List(ctx context.Context, f patients.Filter) ([]patients.Patient, error)
}

type Stats struct {
	TotalPatients  int                `json:"total_patients"`
	TotalStaff     int                `json:"total_staff"`
	InventoryItems int                `json:"inventory_items"`
	TotalVisits    int                `json:"total_visits"`
	RecentPatients []patients.Patient `json:"recent_patients"`
}

type Service struct {
	patients PatientSource
	patientC Counter
	staffC   Counter
	itemC    Counter
	visitC   Counter
}

func NewService(source PatientSource, patientC, staffC, itemC, visitC Counter) *Service {
	return &Service{
		patients: source,
		patientC: patientC,
		staffC:   staffC,
		itemC:    itemC,
		visitC:   visitC,
	}
}

// Stats fetches the four counts and the patient list in parallel. A single
// failure abandons the whole fetch: the error is logged and the cards fall
// back to zero values rather than surfacing a broken dashboard.
func (s *Service) Stats(ctx context.Context) Stats {
	var (
		stats Stats
		list  []patients.Patient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalPatients, err = s.patientC.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalStaff, err = s.staffC.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.InventoryItems, err = s.itemC.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalVisits, err = s.visitC.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		list, err = s.patients.List(gctx, patients.Filter{})
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("dashboard stats unavailable")
		return Stats{RecentPatients: []patients.Patient{}}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	if len(list) > recentPatientLimit {
		list = list[:recentPatientLimit]
	}
	if list == nil {
		list = []patients.Patient{}
	}
	stats.RecentPatients = list
	return stats
}

package numconv

import (
	"context"

	"github.com/kailas-cloud/numconv/internal/domain/geo"
	healthuc "github.com/kailas-cloud/numconv/internal/usecase/health"
)

// --- convertUseCase mock ---

type mockConvertUC struct {
	decodeFn        func(ctx context.Context, bits string) (int64, error)
	encodeFn        func(ctx context.Context, value int64, size int) (string, error)
	rangeFn         func(ctx context.Context, size int) (int64, int64, error)
	toCartesianFn   func(ctx context.Context, p geo.GeodeticPoint) (geo.CartesianPoint, error)
	fromCartesianFn func(ctx context.Context, c geo.CartesianPoint) (geo.GeodeticPoint, error)
	zoneFn          func(ctx context.Context, lat, lon float64, policy geo.ZonePolicy) (geo.Zone, error)
}

func (m *mockConvertUC) Decode(ctx context.Context, bits string) (int64, error) {
	return m.decodeFn(ctx, bits)
}

func (m *mockConvertUC) Encode(ctx context.Context, value int64, size int) (string, error) {
	return m.encodeFn(ctx, value, size)
}

func (m *mockConvertUC) Range(ctx context.Context, size int) (int64, int64, error) {
	return m.rangeFn(ctx, size)
}

func (m *mockConvertUC) ToCartesian(ctx context.Context, p geo.GeodeticPoint) (geo.CartesianPoint, error) {
	return m.toCartesianFn(ctx, p)
}

func (m *mockConvertUC) FromCartesian(ctx context.Context, c geo.CartesianPoint) (geo.GeodeticPoint, error) {
	return m.fromCartesianFn(ctx, c)
}

func (m *mockConvertUC) Zone(ctx context.Context, lat, lon float64, policy geo.ZonePolicy) (geo.Zone, error) {
	return m.zoneFn(ctx, lat, lon, policy)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }

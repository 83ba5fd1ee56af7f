package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianwx/climate-report/internal/domain"
	"github.com/meridianwx/climate-report/internal/observability"
	"github.com/meridianwx/climate-report/internal/pipeline"
)

// --- mocks ---

type mockLoader struct {
	ds  domain.Dataset
	err error
}

func (m *mockLoader) Load(context.Context) (domain.Dataset, error) {
	if m.err != nil {
		return domain.Dataset{}, m.err
	}
	return m.ds, nil
}

type mockAnalyzer struct {
	analysis  domain.Analysis
	err       error
	got       domain.Dataset
	onAnalyze func()
}

func (m *mockAnalyzer) Analyze(ds domain.Dataset) (domain.Analysis, error) {
	m.got = ds
	if m.onAnalyze != nil {
		m.onAnalyze()
	}
	if m.err != nil {
		return domain.Analysis{}, m.err
	}
	return m.analysis, nil
}

// mockReports records write order and can fail on one named report.
type mockReports struct {
	calls []string
	fail  string
}

func (m *mockReports) write(name string) error {
	m.calls = append(m.calls, name)
	if m.fail == name {
		return errors.New(name + " write failed")
	}
	return nil
}

func (m *mockReports) WriteSeasonalAverages(domain.Analysis) error { return m.write("seasonal") }

func (m *mockReports) WriteTemperatureRanges(domain.Analysis) error { return m.write("ranges") }

func (m *mockReports) WriteStabilityExtremes(domain.Analysis) error { return m.write("stability") }

type mockWorkbook struct {
	calls int
	err   error
}

func (m *mockWorkbook) WriteWorkbook(domain.Analysis) error {
	m.calls++
	return m.err
}

func newTestMetrics() *observability.Metrics {
	return observability.NewMetricsForTesting()
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	ds := domain.Dataset{Records: []domain.StationRecord{{Station: "StationA"}, {Station: "StationB"}}}
	loader := &mockLoader{ds: ds}
	analyzer := &mockAnalyzer{analysis: domain.Analysis{
		Stations: []domain.StationStats{{Station: "StationA"}, {Station: "StationB"}},
	}}
	reports := &mockReports{}
	metrics := newTestMetrics()

	p := pipeline.New(loader, analyzer, reports, nil, slog.Default(), metrics)
	require.NoError(t, p.Run(context.Background()))

	if diff := cmp.Diff(ds, analyzer.got); diff != "" {
		t.Errorf("analyzer input mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"seasonal", "ranges", "stability"}, reports.calls)
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.ReportsWritten))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Runs.WithLabelValues("success")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Runs.WithLabelValues("error")))
}

func TestPipeline_Run_LoadFailure(t *testing.T) {
	loader := &mockLoader{err: domain.ErrFolderNotFound}
	reports := &mockReports{}
	metrics := newTestMetrics()

	p := pipeline.New(loader, &mockAnalyzer{}, reports, nil, slog.Default(), metrics)
	err := p.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFolderNotFound)
	assert.Contains(t, err.Error(), "load stage")
	assert.Empty(t, reports.calls)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Runs.WithLabelValues("error")))
}

func TestPipeline_Run_AnalyzeFailure(t *testing.T) {
	analyzer := &mockAnalyzer{err: domain.ErrNoStationData}
	reports := &mockReports{}
	metrics := newTestMetrics()

	p := pipeline.New(&mockLoader{}, analyzer, reports, nil, slog.Default(), metrics)
	err := p.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoStationData)
	assert.Contains(t, err.Error(), "aggregate stage")
	assert.Empty(t, reports.calls)
}

func TestPipeline_Run_ReportFailure(t *testing.T) {
	reports := &mockReports{fail: "ranges"}
	metrics := newTestMetrics()

	p := pipeline.New(&mockLoader{}, &mockAnalyzer{}, reports, nil, slog.Default(), metrics)
	err := p.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "report stage")
	assert.Equal(t, []string{"seasonal", "ranges"}, reports.calls)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ReportsWritten))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Runs.WithLabelValues("error")))
}

func TestPipeline_Run_WritesWorkbookWhenConfigured(t *testing.T) {
	reports := &mockReports{}
	workbook := &mockWorkbook{}
	metrics := newTestMetrics()

	p := pipeline.New(&mockLoader{}, &mockAnalyzer{}, reports, workbook, slog.Default(), metrics)
	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 1, workbook.calls)
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.ReportsWritten))
}

func TestPipeline_Run_WorkbookFailure(t *testing.T) {
	workbook := &mockWorkbook{err: errors.New("disk full")}
	metrics := newTestMetrics()

	p := pipeline.New(&mockLoader{}, &mockAnalyzer{}, &mockReports{}, workbook, slog.Default(), metrics)
	err := p.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "report stage")
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.ReportsWritten))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Runs.WithLabelValues("error")))
}

func TestPipeline_Run_RecordsDuration(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))
	pipeline.SetClock(fakeClock)
	t.Cleanup(func() {
		pipeline.SetClock(nil)
	})

	analyzer := &mockAnalyzer{onAnalyze: func() {
		fakeClock.Advance(250 * time.Millisecond)
	}}
	metrics := newTestMetrics()

	p := pipeline.New(&mockLoader{}, analyzer, &mockReports{}, nil, slog.Default(), metrics)
	require.NoError(t, p.Run(context.Background()))

	var m dto.Metric
	require.NoError(t, metrics.RunDuration.Write(&m))
	assert.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
	assert.InDelta(t, 0.25, m.GetHistogram().GetSampleSum(), 1e-9)
}

func TestStatsAnalyzer_Analyze(t *testing.T) {
	first := domain.StationRecord{Station: "StationA"}
	first.SetReading(time.January, domain.NewReading(30))
	first.SetReading(time.July, domain.NewReading(10))
	second := domain.StationRecord{Station: "StationB"}
	second.SetReading(time.January, domain.NewReading(32))

	metrics := newTestMetrics()
	analyzer := pipeline.NewAnalyzer(slog.Default(), metrics)

	analysis, err := analyzer.Analyze(domain.Dataset{Records: []domain.StationRecord{first, second}})
	require.NoError(t, err)

	require.Len(t, analysis.Seasons, 4)
	assert.Equal(t, "Summer", analysis.Seasons[0].Season)
	assert.InDelta(t, 31.0, analysis.Seasons[0].Mean, 1e-9)
	require.Len(t, analysis.Stations, 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.StationsAnalyzed))
}

func TestStatsAnalyzer_Analyze_NoStationData(t *testing.T) {
	analyzer := pipeline.NewAnalyzer(slog.Default(), newTestMetrics())

	_, err := analyzer.Analyze(domain.Dataset{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoStationData)
}

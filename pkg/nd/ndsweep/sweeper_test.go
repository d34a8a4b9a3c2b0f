package ndsweep

import (
	"bytes"
	"context"
	"log/slog"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ndkit/pkg/nd/ndconf"
	"github.com/omeyang/ndkit/pkg/nd/ndstate"
	"github.com/omeyang/ndkit/pkg/store/macset"
	"github.com/omeyang/ndkit/pkg/util/xmac"
)

// newTestLogger 返回写入缓冲区的 slog logger。
func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// newHostSet 构建测试集合：两条记录 + 一条标记。
func newHostSet(t *testing.T) *macset.Set[ndstate.HostRecord] {
	t.Helper()
	set, err := ndstate.NewSet(0)
	require.NoError(t, err)
	t.Cleanup(set.Close)

	now := time.Now()
	recA := ndstate.New(xmac.MustParse("02:00:00:00:00:01"), netip.MustParseAddr("fd00::1"), now)
	recB := ndstate.New(xmac.MustParse("02:00:00:00:00:02"), netip.MustParseAddr("fd00::2"), now)
	require.NoError(t, set.AddHost(&recA))
	require.NoError(t, set.AddHost(&recB))
	require.NoError(t, set.AddString("02:00:00:00:00:03"))
	return set
}

func TestNew_NilSet(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilSet)
}

func TestSweep_ReportAndSummary(t *testing.T) {
	set := newHostSet(t)
	logger, logBuf := newTestLogger()
	var report bytes.Buffer

	s, err := New(set, WithLogger(logger), WithSink(&report), WithTitle("segment A"))
	require.NoError(t, err)

	s.Sweep()

	// 报告清单
	out := report.String()
	assert.Contains(t, out, "MAC set 'segment A' with 3 entries:")
	assert.Contains(t, out, "02:00:00:00:00:01")
	assert.Contains(t, out, "02:00:00:00:00:02")
	assert.Contains(t, out, "02:00:00:00:00:03")

	// 结构化摘要
	logs := logBuf.String()
	assert.Contains(t, logs, "sweep completed")
	assert.Contains(t, logs, "entries=3")
	assert.Contains(t, logs, "records=2")
	assert.Contains(t, logs, "duplicate_ips=0")
	assert.Contains(t, logs, "run_id=")
}

func TestSweep_SkipUnchanged(t *testing.T) {
	set := newHostSet(t)
	logger, logBuf := newTestLogger()
	var report bytes.Buffer

	s, err := New(set, WithLogger(logger), WithSink(&report))
	require.NoError(t, err)

	s.Sweep()
	first := report.Len()
	require.Greater(t, first, 0)

	// 成员未变化：第二轮跳过报告
	s.Sweep()
	assert.Equal(t, first, report.Len())
	assert.Contains(t, logBuf.String(), "sweep skipped")

	// 成员变化：恢复报告
	require.NoError(t, set.AddString("02:00:00:00:00:04"))
	s.Sweep()
	assert.Greater(t, report.Len(), first)
}

func TestSweep_AlwaysReport(t *testing.T) {
	set := newHostSet(t)
	logger, _ := newTestLogger()
	var report bytes.Buffer

	s, err := New(set, WithLogger(logger), WithSink(&report), WithAlwaysReport())
	require.NoError(t, err)

	s.Sweep()
	first := report.Len()
	s.Sweep()
	assert.Equal(t, 2*first, report.Len(), "identical membership reported twice")
}

func TestSweep_DuplicateIPs(t *testing.T) {
	set, err := ndstate.NewSet(0)
	require.NoError(t, err)
	defer set.Close()

	now := time.Now()
	ip := netip.MustParseAddr("fd00::42")
	recA := ndstate.New(xmac.MustParse("02:00:00:00:00:0a"), ip, now)
	recB := ndstate.New(xmac.MustParse("02:00:00:00:00:0b"), ip, now)
	require.NoError(t, set.AddHost(&recA))
	require.NoError(t, set.AddHost(&recB))

	logger, logBuf := newTestLogger()
	s, err := New(set, WithLogger(logger))
	require.NoError(t, err)

	s.Sweep()

	logs := logBuf.String()
	assert.Contains(t, logs, "ip claimed by multiple macs")
	assert.Contains(t, logs, "fd00::42")
	assert.Contains(t, logs, "duplicate_ips=1")
}

func TestSweep_OutOfPrefix(t *testing.T) {
	set, err := ndstate.NewSet(0)
	require.NoError(t, err)
	defer set.Close()

	now := time.Now()
	inside := ndstate.New(xmac.MustParse("02:00:00:00:00:0a"), netip.MustParseAddr("fd00::1"), now)
	outside := ndstate.New(xmac.MustParse("02:00:00:00:00:0b"), netip.MustParseAddr("2001:db8::1"), now)
	require.NoError(t, set.AddHost(&inside))
	require.NoError(t, set.AddHost(&outside))

	cfg, err := ndconf.LoadBytes([]byte(`net_prefix: ["fd00::/8"]`), ndconf.FormatYAML)
	require.NoError(t, err)

	logger, logBuf := newTestLogger()
	s, err := New(set, WithLogger(logger), WithPrefixes(cfg.Prefixes))
	require.NoError(t, err)

	s.Sweep()
	assert.Contains(t, logBuf.String(), "out_of_prefix=1")
}

func TestStartStop(t *testing.T) {
	set := newHostSet(t)
	logger, _ := newTestLogger()

	s, err := New(set, WithLogger(logger), WithSchedule("@every 1h"))
	require.NoError(t, err)

	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Start(), ErrAlreadyStarted)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	// Stop 幂等
	require.NoError(t, s.Stop(ctx))
}

func TestStart_BadSchedule(t *testing.T) {
	set := newHostSet(t)
	logger, _ := newTestLogger()

	s, err := New(set, WithLogger(logger), WithSchedule("not a cron spec"))
	require.NoError(t, err)
	assert.ErrorIs(t, s.Start(), ErrBadSchedule)
}

func TestFromConfig_SinkFile(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "nd-report.log")

	cfg, err := ndconf.LoadBytes([]byte(`
report:
  schedule: "@every 1h"
  title: "from config"
`), ndconf.FormatYAML)
	require.NoError(t, err)
	cfg.Report.File = reportPath

	set := newHostSet(t)
	logger, _ := newTestLogger()

	s, err := FromConfig(set, cfg, WithLogger(logger))
	require.NoError(t, err)

	s.Sweep()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "MAC set 'from config' with 3 entries:"))
}

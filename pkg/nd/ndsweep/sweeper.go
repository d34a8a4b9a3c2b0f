package ndsweep

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/netip"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go4.org/netipx"

	"github.com/omeyang/ndkit/pkg/nd/ndconf"
	"github.com/omeyang/ndkit/pkg/nd/ndstate"
	"github.com/omeyang/ndkit/pkg/store/macset"
	"github.com/omeyang/ndkit/pkg/util/xmac"
)

// DefaultSchedule 默认巡检周期。
const DefaultSchedule = "@every 60s"

// DefaultTitle 默认报告标题。
const DefaultTitle = "observed hosts"

// Sweeper 周期性巡检一个主机集合并输出诊断报告。
// 通过 [New] 或 [FromConfig] 创建。
type Sweeper struct {
	set      *macset.Set[ndstate.HostRecord]
	schedule string
	title    string
	logger   *slog.Logger
	sink     io.Writer
	closer   io.Closer // 仅 WithSinkFile 创建的 sink 归 Sweeper 关闭
	prefixes *netipx.IPSet
	always   bool

	cron    *cron.Cron
	started bool

	mu      sync.Mutex // 串行化巡检任务
	ranOnce bool
	last    uint64
}

// New 创建 Sweeper。set 不可为 nil。
func New(set *macset.Set[ndstate.HostRecord], opts ...Option) (*Sweeper, error) {
	if set == nil {
		return nil, ErrNilSet
	}

	o := &options{
		schedule: DefaultSchedule,
		title:    DefaultTitle,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	s := &Sweeper{
		set:      set,
		schedule: o.schedule,
		title:    o.title,
		logger:   o.logger,
		sink:     o.sink,
		prefixes: o.prefixes,
		always:   o.always,
	}
	if o.sinkFile != "" {
		rotating := newRotatingSink(o.sinkFile)
		s.sink = rotating
		s.closer = rotating
	}
	return s, nil
}

// FromConfig 按插件配置装配 Sweeper：
// 巡检周期、报告文件与标题取自 cfg.Report，前缀统计取自 cfg.Prefixes。
// 追加的 opts 可覆盖配置项。
func FromConfig(set *macset.Set[ndstate.HostRecord], cfg *ndconf.Config, opts ...Option) (*Sweeper, error) {
	base := []Option{
		WithSchedule(cfg.Report.Schedule),
		WithTitle(cfg.Report.Title),
		WithPrefixes(cfg.Prefixes),
	}
	if cfg.Report.File != "" {
		base = append(base, WithSinkFile(cfg.Report.File))
	}
	return New(set, append(base, opts...)...)
}

// Start 启动周期调度。
// 表达式无法解析返回 [ErrBadSchedule]；重复启动返回 [ErrAlreadyStarted]。
func (s *Sweeper) Start() error {
	if s.started {
		return ErrAlreadyStarted
	}

	c := cron.New()
	if _, err := c.AddFunc(s.schedule, s.Sweep); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrBadSchedule, s.schedule, err)
	}
	s.cron = c
	s.started = true
	c.Start()
	return nil
}

// Stop 停止调度，等待进行中的巡检完成，并关闭 Sweeper 持有的报告
// 文件。ctx 限定等待时长。未启动时仅关闭 sink。幂等。
func (s *Sweeper) Stop(ctx context.Context) error {
	if s.cron != nil {
		stopCtx := s.cron.Stop()
		s.cron = nil
		s.started = false
		select {
		case <-stopCtx.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.closer != nil {
		c := s.closer
		s.closer = nil
		if err := c.Close(); err != nil {
			return fmt.Errorf("ndsweep: close sink: %w", err)
		}
	}
	return nil
}

// Sweep 执行一轮巡检。由调度器周期触发，也可手动调用。
// 内部互斥，重叠触发串行执行。
func (s *Sweeper) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	runID := uuid.NewString()
	start := time.Now()

	digest := s.set.Digest()
	if !s.always && s.ranOnce && digest == s.last {
		s.logger.Debug("sweep skipped, membership unchanged",
			slog.String("run_id", runID),
			slog.String("digest", fmt.Sprintf("%016x", digest)),
		)
		return
	}
	s.ranOnce = true
	s.last = digest

	stats := s.collect(runID)

	if s.sink != nil {
		if err := s.set.Report(s.sink, s.title); err != nil {
			s.logger.Error("report write failed",
				slog.String("run_id", runID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("sweep completed",
		slog.String("run_id", runID),
		slog.Int("entries", stats.entries),
		slog.Int("records", stats.records),
		slog.Int("duplicate_ips", stats.duplicateIPs),
		slog.Int("out_of_prefix", stats.outOfPrefix),
		slog.String("digest", fmt.Sprintf("%016x", digest)),
		slog.Duration("duration", time.Since(start)),
	)
}

// sweepStats 是一轮巡检的统计结果。
type sweepStats struct {
	entries      int
	records      int
	duplicateIPs int
	outOfPrefix  int
}

// collect 遍历集合统计，并对重复 IP 声明逐条输出日志属性。
// 只统计与记录，不判定、不告警。
func (s *Sweeper) collect(runID string) sweepStats {
	var stats sweepStats
	claims := make(map[netip.Addr][]xmac.Addr)

	for addr, rec := range s.set.All() {
		stats.entries++
		if rec == nil {
			continue
		}
		stats.records++
		if !rec.IP.IsValid() {
			continue
		}
		claims[rec.IP] = append(claims[rec.IP], addr)
		if s.prefixes != nil && !s.prefixes.Contains(rec.IP) {
			stats.outOfPrefix++
		}
	}

	for ip, macs := range claims {
		if len(macs) < 2 {
			continue
		}
		stats.duplicateIPs++
		texts := make([]string, len(macs))
		for i, m := range macs {
			texts[i] = m.String()
		}
		s.logger.Warn("ip claimed by multiple macs",
			slog.String("run_id", runID),
			slog.String("ip", ip.String()),
			slog.Any("macs", texts),
		)
	}
	return stats
}

package ndconf

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go4.org/netipx"

	"github.com/omeyang/ndkit/pkg/nd/ndstate"
	"github.com/omeyang/ndkit/pkg/store/macset"
	"github.com/omeyang/ndkit/pkg/util/xmac"
)

// Format 定义配置文件格式。
type Format int

const (
	// FormatYAML YAML 格式（.yaml/.yml）。
	FormatYAML Format = iota
	// FormatJSON JSON 格式（.json）。
	FormatJSON
)

// 默认值。
const (
	// DefaultSchedule 默认巡检报告周期。
	DefaultSchedule = "@every 60s"

	// DefaultTitle 默认报告标题。
	DefaultTitle = "observed hosts"
)

// Report 是巡检报告的输出配置。
type Report struct {
	// Schedule 是 cron 表达式（robfig/cron 语法，支持 @every 简写）。
	Schedule string

	// File 是报告文件路径；为空则只经结构化日志输出。
	File string

	// Title 是报告标题。
	Title string
}

// Config 是已解析并通过校验的插件配置。
type Config struct {
	// RouterMACs 是合法路由器的 MAC 白名单。
	RouterMACs []xmac.Addr

	// HostMACs 是已知主机的 MAC 白名单。
	HostMACs []xmac.Addr

	// Prefixes 是受监测网段的前缀集合；未配置时为 nil（监测全部）。
	Prefixes *netipx.IPSet

	// Report 是巡检报告配置。
	Report Report

	path string
}

// Load 从文件加载配置，按扩展名检测格式。
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	cfg, err := LoadBytes(data, format)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// LoadBytes 从内存字节加载配置，需显式指定格式。
// 空数据产生全默认配置。
func LoadBytes(data []byte, format Format) (*Config, error) {
	k := koanf.New(".")
	if len(data) > 0 {
		var parser koanf.Parser
		switch format {
		case FormatYAML:
			parser = yaml.Parser()
		case FormatJSON:
			parser = json.Parser()
		default:
			return nil, ErrUnsupportedFormat
		}
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
	}

	cfg := &Config{
		Report: Report{
			Schedule: DefaultSchedule,
			Title:    DefaultTitle,
		},
	}

	var err error
	if cfg.RouterMACs, err = parseMACList(k.Strings("router_mac"), "router_mac"); err != nil {
		return nil, err
	}
	if cfg.HostMACs, err = parseMACList(k.Strings("host_mac"), "host_mac"); err != nil {
		return nil, err
	}
	if cfg.Prefixes, err = parsePrefixes(k.Strings("net_prefix")); err != nil {
		return nil, err
	}

	if v := k.String("report.schedule"); v != "" {
		cfg.Report.Schedule = v
	}
	if v := k.String("report.title"); v != "" {
		cfg.Report.Title = v
	}
	cfg.Report.File = k.String("report.file")

	return cfg, nil
}

// Path 返回配置来源文件路径；从字节加载时为空。
func (c *Config) Path() string { return c.path }

// IsRouterMAC 报告 addr 是否在路由器白名单中。
func (c *Config) IsRouterMAC(addr xmac.Addr) bool {
	return containsAddr(c.RouterMACs, addr)
}

// IsHostMAC 报告 addr 是否在主机白名单中。
func (c *Config) IsHostMAC(addr xmac.Addr) bool {
	return containsAddr(c.HostMACs, addr)
}

// ContainsIP 报告 ip 是否落在受监测前缀内。
// 未配置前缀时恒为 true（监测全部）。
func (c *Config) ContainsIP(ip netip.Addr) bool {
	if c.Prefixes == nil {
		return true
	}
	return c.Prefixes.Contains(ip)
}

// BuildRouterSet 把路由器白名单物化为一个仅标记的 macset 集合，
// 供逐包路径做 O(1) 成员判断（原插件的使用方式）。
// 返回的集合归调用方所有。
func (c *Config) BuildRouterSet() (*macset.Set[ndstate.HostRecord], error) {
	set, err := ndstate.NewSet(len(c.RouterMACs))
	if err != nil {
		return nil, err
	}
	for _, addr := range c.RouterMACs {
		if err := set.Add(addr); err != nil {
			set.Close()
			return nil, err
		}
	}
	return set, nil
}

// detectFormat 按文件扩展名检测格式。
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// parseMACList 解析并校验 MAC 白名单。
// 白名单描述合法主机身份：必须是单播非特殊地址。
func parseMACList(texts []string, key string) ([]xmac.Addr, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	addrs := make([]xmac.Addr, 0, len(texts))
	for _, text := range texts {
		addr, err := xmac.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, key, text, err)
		}
		if addr.IsSpecial() || !addr.IsUnicast() {
			return nil, fmt.Errorf("%w: %s %q: not a unicast host address", ErrInvalidConfig, key, text)
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// parsePrefixes 解析受监测前缀并构建 IPSet。
func parsePrefixes(texts []string) (*netipx.IPSet, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	var b netipx.IPSetBuilder
	for _, text := range texts {
		text = strings.TrimSpace(text)
		// zone 信息会在 IPSet 运算中被静默丢弃，导致匹配误判，直接拒绝
		if strings.Contains(text, "%") {
			return nil, fmt.Errorf("%w: net_prefix %q: IPv6 zone ID is not supported", ErrInvalidConfig, text)
		}
		prefix, err := netip.ParsePrefix(text)
		if err != nil {
			return nil, fmt.Errorf("%w: net_prefix %q: %w", ErrInvalidConfig, text, err)
		}
		b.AddPrefix(prefix)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("%w: net_prefix: %w", ErrInvalidConfig, err)
	}
	return set, nil
}

func containsAddr(addrs []xmac.Addr, addr xmac.Addr) bool {
	for _, a := range addrs {
		if a == addr {
			return true
		}
	}
	return false
}
